package mines

import "testing"

// stateFromLayout builds a playing state from rows of '*' (mine) and '.'
// characters, with neighbor counts computed the normal way.
func stateFromLayout(t *testing.T, layout []string) GameState {
	t.Helper()
	rows, cols := len(layout), len(layout[0])
	b := Board{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
	for r, line := range layout {
		if len(line) != cols {
			t.Fatalf("Ragged layout row %d", r)
		}
		for c, ch := range line {
			if ch == '*' {
				b.Cells[r*cols+c].Mine = true
				b.MineCount++
			}
		}
	}
	b.countNeighbors()
	return GameState{Board: b, Status: StatusPlaying}
}

func statesEqual(a, b GameState) bool {
	if a.Status != b.Status || a.Board.Rows != b.Board.Rows || a.Board.Cols != b.Board.Cols {
		return false
	}
	for i := range a.Board.Cells {
		if a.Board.Cells[i] != b.Board.Cells[i] {
			return false
		}
	}
	return true
}

func TestRevealMineLosesAndShowsAllMines(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*..",
		".*.",
		"...",
	})

	next := Reveal(s, 0, 0)
	if next.Status != StatusLost {
		t.Fatalf("Expected lost status, got %v", next.Status)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := next.Board.At(r, c)
			if cell.Mine && !cell.Open {
				t.Errorf("Mine (%d,%d) not opened on loss", r, c)
			}
			if !cell.Mine && cell.Open {
				t.Errorf("Non-mine (%d,%d) opened by losing reveal", r, c)
			}
		}
	}
}

func TestRevealFloodFillOpensZeroRegionAndBorder(t *testing.T) {
	// Mine confined to the top-left corner; the far side is a zero region.
	s := stateFromLayout(t, []string{
		"*....",
		".....",
		".....",
	})

	next := Reveal(s, 2, 4)
	if next.Status != StatusWon {
		t.Fatalf("Flood fill from far corner should win, got %v", next.Status)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			cell := next.Board.At(r, c)
			if !cell.Mine && !cell.Open {
				t.Errorf("Non-mine (%d,%d) left closed after cascade", r, c)
			}
		}
	}
	if next.Board.At(0, 0).Open {
		t.Error("Mine opened by cascade")
	}
}

func TestRevealFloodFillStopsAtFlags(t *testing.T) {
	s := stateFromLayout(t, []string{
		"....",
		"....",
		"....",
	})

	// A flag across the middle column blocks the cascade from crossing it.
	s = ToggleFlag(s, 0, 1)
	s = ToggleFlag(s, 1, 1)
	s = ToggleFlag(s, 2, 1)

	next := Reveal(s, 1, 3)
	for r := 0; r < 3; r++ {
		if next.Board.At(r, 1).Open {
			t.Errorf("Flagged cell (%d,1) was opened", r)
		}
		if !next.Board.At(r, 0).Open {
			// Column 0 is only reachable through the flagged column; on a
			// mine-free board the cascade still flows around via nothing,
			// so it must stay closed.
			continue
		}
		t.Errorf("Cell (%d,0) opened across the flag barrier", r)
	}
	if next.Status == StatusWon {
		t.Error("Game won while flagged cells remain closed")
	}
}

func TestRevealGuards(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*.",
		"..",
	})

	if next := Reveal(s, -1, 0); !statesEqual(s, next) {
		t.Error("Out-of-bounds reveal changed state")
	}
	if next := Reveal(s, 0, 5); !statesEqual(s, next) {
		t.Error("Out-of-bounds reveal changed state")
	}

	flagged := ToggleFlag(s, 0, 0)
	if next := Reveal(flagged, 0, 0); !statesEqual(flagged, next) {
		t.Error("Revealing a flagged mine changed state")
	}

	opened := Reveal(s, 1, 1)
	if next := Reveal(opened, 1, 1); !statesEqual(opened, next) {
		t.Error("Re-revealing an open cell changed state")
	}
}

func TestToggleFlagInvolution(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*..",
		"...",
	})

	once := ToggleFlag(s, 1, 2)
	if !once.Board.At(1, 2).Flagged {
		t.Fatal("Flag not set")
	}
	twice := ToggleFlag(once, 1, 2)
	if !statesEqual(s, twice) {
		t.Error("Double toggle did not restore the original state")
	}

	// No other cell is affected by a toggle.
	for i := range once.Board.Cells {
		if i == once.Board.index(1, 2) {
			continue
		}
		if once.Board.Cells[i] != s.Board.Cells[i] {
			t.Errorf("Toggle changed unrelated cell %d", i)
		}
	}
}

func TestToggleFlagOnOpenCellNoop(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*.",
		"..",
	})
	s = Reveal(s, 1, 1)

	next := ToggleFlag(s, 1, 1)
	if !statesEqual(s, next) {
		t.Error("Flagging an open cell changed state")
	}
}

func TestWinIgnoresFlagPlacement(t *testing.T) {
	// 2x1 board, one mine: opening the sole non-mine cell wins without
	// touching the mine.
	s, err := Generate(7, 2, 1, 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if got := countMines(s.Board); got != 1 {
		t.Fatalf("Expected 1 mine, got %d", got)
	}

	for r := 0; r < 2; r++ {
		if !s.Board.At(r, 0).Mine {
			s = Reveal(s, r, 0)
		}
	}
	if s.Status != StatusWon {
		t.Errorf("Expected won, got %v", s.Status)
	}
}

func TestWinAfterIndividualReveals(t *testing.T) {
	// 3x3 board, single center mine, every other cell opened one by one.
	s := stateFromLayout(t, []string{
		"...",
		".*.",
		"...",
	})

	order := [][2]int{{2, 2}, {0, 0}, {1, 0}, {0, 1}, {2, 0}, {0, 2}, {1, 2}, {2, 1}}
	for i, p := range order {
		s = Reveal(s, p[0], p[1])
		if i < len(order)-1 && s.Status != StatusPlaying {
			t.Fatalf("Premature status %v after %d reveals", s.Status, i+1)
		}
	}
	if s.Status != StatusWon {
		t.Errorf("Expected won after final reveal, got %v", s.Status)
	}
	if s.Board.At(1, 1).Open {
		t.Error("Mine should remain closed on win")
	}
}

func TestSingleCellWin(t *testing.T) {
	s, err := Generate(123, 1, 1, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	s = Reveal(s, 0, 0)
	if s.Status != StatusWon {
		t.Errorf("Expected won, got %v", s.Status)
	}
}

func TestTerminalStatesAreFrozen(t *testing.T) {
	lost := stateFromLayout(t, []string{
		"*.",
		"..",
	})
	lost = Reveal(lost, 0, 0)
	if lost.Status != StatusLost {
		t.Fatalf("Setup failed: expected lost, got %v", lost.Status)
	}

	won, err := Generate(3, 1, 2, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	won = Reveal(won, 0, 0)
	won = Reveal(won, 0, 1)
	if won.Status != StatusWon {
		t.Fatalf("Setup failed: expected won, got %v", won.Status)
	}

	for _, terminal := range []GameState{lost, won} {
		if next := Reveal(terminal, 1, 0); !statesEqual(terminal, next) {
			t.Errorf("Reveal mutated a %v game", terminal.Status)
		}
		if next := ToggleFlag(terminal, 1, 0); !statesEqual(terminal, next) {
			t.Errorf("ToggleFlag mutated a %v game", terminal.Status)
		}
		if next := Chord(terminal, 0, 0); !statesEqual(terminal, next) {
			t.Errorf("Chord mutated a %v game", terminal.Status)
		}
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*..",
		"...",
		"...",
	})
	before := s.clone()

	Reveal(s, 2, 2)
	ToggleFlag(s, 0, 0)
	Reveal(s, 0, 0)
	if !statesEqual(before, s) {
		t.Error("A transition mutated its input snapshot")
	}
}

func TestChordAutoFlag(t *testing.T) {
	// Center mine; open every border cell except (2,1) so that (0,1) has
	// exactly one hidden neighbor, the mine itself.
	s := stateFromLayout(t, []string{
		"...",
		".*.",
		"...",
	})
	for _, p := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 2}} {
		s = Reveal(s, p[0], p[1])
	}
	if s.Status != StatusPlaying {
		t.Fatalf("Setup failed: status %v", s.Status)
	}

	next := Chord(s, 0, 1)
	if !next.Board.At(1, 1).Flagged {
		t.Error("Auto-flag did not flag the remaining hidden mine")
	}
	if next.Board.At(1, 1).Open {
		t.Error("Auto-flag opened the mine")
	}
	if next.Board.At(2, 1).Open || next.Board.At(2, 1).Flagged {
		t.Error("Chord touched a cell outside the target neighborhood")
	}
	if next.Status != StatusPlaying {
		t.Errorf("Status changed to %v by auto-flag", next.Status)
	}
}

func TestChordAutoReveal(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*.",
		"..",
	})
	s = ToggleFlag(s, 0, 0)
	s = Reveal(s, 1, 1) // opens the '1' at (1,1)

	next := Chord(s, 1, 1)
	if next.Status != StatusWon {
		t.Fatalf("Chord should open remaining safe cells and win, got %v", next.Status)
	}
	if !next.Board.At(0, 1).Open || !next.Board.At(1, 0).Open {
		t.Error("Auto-reveal left safe neighbors closed")
	}
	if next.Board.At(0, 0).Open {
		t.Error("Flagged mine opened by chord")
	}
}

func TestChordMisflagLoses(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*.",
		"..",
	})
	// Wrong flag: the safe corner is flagged, the mine is not.
	s = ToggleFlag(s, 1, 0)
	s = Reveal(s, 1, 1)

	next := Chord(s, 1, 1)
	if next.Status != StatusLost {
		t.Fatalf("Chord over a misflag should lose, got %v", next.Status)
	}
	if !next.Board.At(0, 0).Open {
		t.Error("Mine not shown after chord loss")
	}
}

func TestChordLossOpensWholeNeighborhood(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*..",
		"...",
	})
	// Wrong flag next to the mine; chording (1,1) opens every hidden
	// neighbor, including the ones ordered after the mine at (0,0).
	s = ToggleFlag(s, 0, 1)
	s = Reveal(s, 1, 1)

	next := Chord(s, 1, 1)
	if next.Status != StatusLost {
		t.Fatalf("Chord over a misflag should lose, got %v", next.Status)
	}
	for _, c := range [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 2}} {
		if !next.Board.At(c[0], c[1]).Open {
			t.Errorf("Hidden neighbor (%d,%d) left closed after chord loss", c[0], c[1])
		}
	}
	if next.Board.At(0, 1).Open {
		t.Error("Flagged cell opened by chord loss")
	}
}

func TestChordBranchesAreExclusive(t *testing.T) {
	// (1,1) is a '1' with two hidden neighbors and no flags: remaining(1)
	// != hidden(2) and remaining != 0, so neither branch fires.
	s := stateFromLayout(t, []string{
		"*..",
		"...",
	})
	s = Reveal(s, 1, 2)
	s = Reveal(s, 0, 2)
	target := s
	if !target.Board.At(1, 1).Open {
		t.Fatal("Setup failed: (1,1) not open")
	}

	next := Chord(target, 1, 1)
	if !statesEqual(target, next) {
		t.Error("Chord acted although neither branch precondition held")
	}
}

func TestChordGuards(t *testing.T) {
	s := stateFromLayout(t, []string{
		"*..",
		"...",
		"...",
	})

	if next := Chord(s, 2, 2); !statesEqual(s, next) {
		t.Error("Chord on a closed cell changed state")
	}

	opened := Reveal(s, 2, 2)
	if next := Chord(opened, 2, 2); !statesEqual(opened, next) {
		t.Error("Chord on a zero-count cell changed state")
	}
	if next := Chord(opened, 5, 5); !statesEqual(opened, next) {
		t.Error("Out-of-bounds chord changed state")
	}
}

func TestDerivedStats(t *testing.T) {
	s, err := Generate(11, 9, 9, 10)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if got := s.MinesRemaining(); got != 10 {
		t.Errorf("Fresh board MinesRemaining = %d, want 10", got)
	}
	if got := s.HiddenRemaining(); got != 81 {
		t.Errorf("Fresh board HiddenRemaining = %d, want 81", got)
	}

	s = ToggleFlag(s, 0, 0)
	if got := s.MinesRemaining(); got != 9 {
		t.Errorf("After one flag MinesRemaining = %d, want 9", got)
	}
	if got := s.HiddenRemaining(); got != 80 {
		t.Errorf("After one flag HiddenRemaining = %d, want 80", got)
	}
}
