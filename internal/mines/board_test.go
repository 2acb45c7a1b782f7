package mines

import "testing"

func countMines(b Board) int {
	n := 0
	for _, cell := range b.Cells {
		if cell.Mine {
			n++
		}
	}
	return n
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(1337, 16, 30, 99)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(1337, 16, 30, 99)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for i := range a.Board.Cells {
		if a.Board.Cells[i] != b.Board.Cells[i] {
			t.Fatalf("Boards differ at index %d: %+v vs %+v", i, a.Board.Cells[i], b.Board.Cells[i])
		}
	}
}

func TestGenerateMineCount(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -5, 1 << 40} {
		s, err := Generate(seed, 9, 9, 10)
		if err != nil {
			t.Fatalf("Generate(seed=%d) failed: %v", seed, err)
		}
		if got := countMines(s.Board); got != 10 {
			t.Errorf("seed %d: expected 10 mines, got %d", seed, got)
		}
	}
}

func TestGenerateAllCellsClosed(t *testing.T) {
	s, err := Generate(5, 8, 8, 12)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if s.Status != StatusPlaying {
		t.Errorf("Expected playing status, got %v", s.Status)
	}
	for i, cell := range s.Board.Cells {
		if cell.Open || cell.Flagged {
			t.Errorf("Cell %d not closed and unflagged: %+v", i, cell)
		}
	}
}

func TestNeighborCountsBruteForce(t *testing.T) {
	s, err := Generate(2024, 12, 17, 40)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b := s.Board

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.At(r, c).Mine {
				continue
			}
			// Independent recount of the Moore neighborhood.
			want := uint8(0)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if b.InBounds(r+dr, c+dc) && b.At(r+dr, c+dc).Mine {
						want++
					}
				}
			}
			if got := b.At(r, c).Adjacent; got != want {
				t.Errorf("Cell (%d,%d): stored count %d, recomputed %d", r, c, got, want)
			}
		}
	}
}

func TestGenerateFullAndEmptyBoards(t *testing.T) {
	empty, err := Generate(1, 4, 4, 0)
	if err != nil {
		t.Fatalf("Generate() with 0 mines failed: %v", err)
	}
	if countMines(empty.Board) != 0 {
		t.Error("Expected no mines")
	}

	full, err := Generate(1, 4, 4, 16)
	if err != nil {
		t.Fatalf("Generate() with full board failed: %v", err)
	}
	if countMines(full.Board) != 16 {
		t.Error("Expected every cell mined")
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	cases := []struct {
		name              string
		rows, cols, mines int
	}{
		{"zero rows", 0, 5, 1},
		{"negative cols", 5, -1, 1},
		{"negative mines", 5, 5, -1},
		{"too many mines", 5, 5, 26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(0, tc.rows, tc.cols, tc.mines); err == nil {
				t.Errorf("Generate(%d, %d, %d) should fail", tc.rows, tc.cols, tc.mines)
			}
		})
	}
}

func TestSingleCellBoard(t *testing.T) {
	s, err := Generate(999, 1, 1, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	cell := s.Board.At(0, 0)
	if cell.Mine {
		t.Error("1x1 board with 0 mines has a mine")
	}
	if cell.Adjacent != 0 {
		t.Errorf("Expected neighbor count 0, got %d", cell.Adjacent)
	}
}
