package mines

// The four transitions below are the whole gameplay surface. Each takes a
// snapshot plus coordinates and returns a new snapshot; abnormal input
// (out-of-bounds coordinates, actions invalid for the current cell state,
// a finished game) returns the input unchanged rather than erroring.

// Reveal opens the cell at (r, c). Opening a mine opens every mine on the
// board and loses the game. Opening a zero-count cell flood-fills its
// connected zero region plus the bordering numbered cells, stopping at
// flags. A successful reveal is followed by the win check.
func Reveal(s GameState, r, c int) GameState {
	if s.Status != StatusPlaying || !s.Board.InBounds(r, c) {
		return s
	}
	target := s.Board.At(r, c)
	if target.Open || target.Flagged {
		return s
	}

	next := s.clone()
	if target.Mine {
		return next.lose()
	}

	next.floodOpen(r, c)
	return next.checkWin()
}

// ToggleFlag flips the flag on a single closed cell.
func ToggleFlag(s GameState, r, c int) GameState {
	if s.Status != StatusPlaying || !s.Board.InBounds(r, c) {
		return s
	}
	if s.Board.At(r, c).Open {
		return s
	}

	next := s.clone()
	i := next.Board.index(r, c)
	next.Board.Cells[i].Flagged = !next.Board.Cells[i].Flagged
	return next
}

// Chord resolves the neighborhood of an open numbered cell using flag
// arithmetic. When the hidden neighbors are exactly the missing mines they
// are all flagged; when the flags already account for every mine the hidden
// neighbors are all opened. The two branches are mutually exclusive within
// one call: a chord either flags or reveals, never both.
func Chord(s GameState, r, c int) GameState {
	if s.Status != StatusPlaying || !s.Board.InBounds(r, c) {
		return s
	}
	target := s.Board.At(r, c)
	if !target.Open || target.Mine || target.Adjacent == 0 {
		return s
	}

	flagged := 0
	var hidden []int // closed, unflagged neighbors
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if !s.Board.InBounds(nr, nc) {
				continue
			}
			cell := s.Board.At(nr, nc)
			switch {
			case cell.Flagged:
				flagged++
			case !cell.Open:
				hidden = append(hidden, s.Board.index(nr, nc))
			}
		}
	}

	remaining := int(target.Adjacent) - flagged
	switch {
	case remaining == len(hidden) && remaining > 0:
		next := s.clone()
		for _, i := range hidden {
			next.Board.Cells[i].Flagged = true
		}
		return next

	case remaining == 0 && len(hidden) > 0:
		// Every hidden neighbor opens, even when one of them is a mine;
		// the loss is evaluated after the whole set is open.
		next := s.clone()
		mineHit := false
		for _, i := range hidden {
			next.Board.Cells[i].Open = true
			if next.Board.Cells[i].Mine {
				mineHit = true
			}
		}
		if mineHit {
			return next.lose()
		}
		return next.checkWin()
	}

	return s
}

// floodOpen opens (r, c) and cascades through zero-count regions using an
// explicit stack. Every pop re-checks bounds and open/flag state, which
// bounds the walk at one visit per cell regardless of board size.
func (s *GameState) floodOpen(r, c int) {
	type pos struct{ r, c int }
	stack := []pos{{r, c}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.Board.InBounds(p.r, p.c) {
			continue
		}
		i := s.Board.index(p.r, p.c)
		if s.Board.Cells[i].Open || s.Board.Cells[i].Flagged {
			continue
		}
		s.Board.Cells[i].Open = true

		if s.Board.Cells[i].Adjacent == 0 {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					stack = append(stack, pos{p.r + dr, p.c + dc})
				}
			}
		}
	}
}

// lose opens every mine for display and marks the game lost. Non-mine cells
// keep their open state.
func (s GameState) lose() GameState {
	for i := range s.Board.Cells {
		if s.Board.Cells[i].Mine {
			s.Board.Cells[i].Open = true
		}
	}
	s.Status = StatusLost
	return s
}

// checkWin marks the game won when every non-mine cell is open. Mines may
// stay closed or flagged; flag placement is irrelevant.
func (s GameState) checkWin() GameState {
	for _, cell := range s.Board.Cells {
		if !cell.Mine && !cell.Open {
			return s
		}
	}
	s.Status = StatusWon
	return s
}
