package mines

// Status is the aggregate game status. It is monotonic: once a game is won
// or lost every transition returns its input unchanged.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState is one immutable snapshot of a game. Transitions never mutate
// their receiver; they return a fresh snapshot with a deep-copied board, so
// a renderer holding the previous value always sees a fully-formed board.
type GameState struct {
	Board  Board
	Status Status
}

// clone returns a snapshot whose board cells are safe to mutate.
func (s GameState) clone() GameState {
	s.Board = s.Board.clone()
	return s
}

// FlaggedCount returns the number of flagged cells.
func (s GameState) FlaggedCount() int {
	n := 0
	for _, cell := range s.Board.Cells {
		if cell.Flagged {
			n++
		}
	}
	return n
}

// OpenCount returns the number of open cells.
func (s GameState) OpenCount() int {
	n := 0
	for _, cell := range s.Board.Cells {
		if cell.Open {
			n++
		}
	}
	return n
}

// MinesRemaining is the mine count minus placed flags, the counter a HUD
// shows next to the board. It may go negative when the player over-flags.
func (s GameState) MinesRemaining() int {
	return s.Board.MineCount - s.FlaggedCount()
}

// HiddenRemaining is the number of closed, unflagged cells.
func (s GameState) HiddenRemaining() int {
	return len(s.Board.Cells) - s.OpenCount() - s.FlaggedCount()
}
