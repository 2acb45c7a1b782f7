// Package mines implements the minesweeper board generator and state
// machine. The package is UI-agnostic and deterministic: a seed fully
// determines the generated board, and every transition is a pure function
// from one immutable snapshot to the next.
package mines

import "fmt"

// Cell is one grid position. Open, flag, mine and count are independent
// axes, not a single closed state enumeration. Adjacent is meaningful only
// for non-mine cells; a mine's count is never computed or read.
type Cell struct {
	Mine     bool
	Open     bool
	Flagged  bool
	Adjacent uint8 // 0..8, surrounding mine count
}

// Board is a fixed-size rectangular grid of cells stored row-major:
// index = r*Cols + c. Exactly MineCount cells carry a mine, placed once at
// generation and never relocated.
type Board struct {
	Rows      int
	Cols      int
	MineCount int
	Cells     []Cell
}

// InBounds returns true if (r, c) lies on the board.
func (b Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// At returns the cell at (r, c). Callers must check bounds first.
func (b Board) At(r, c int) Cell {
	return b.Cells[r*b.Cols+c]
}

// index converts coordinates to a flat cell index.
func (b Board) index(r, c int) int {
	return r*b.Cols + c
}

// clone returns a deep copy of the board.
func (b Board) clone() Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	b.Cells = cells
	return b
}

// ParamsError reports invalid board construction parameters. This is the
// engine's only loud failure: everything after generation degrades to
// identity transitions instead of erroring.
type ParamsError struct {
	Rows, Cols, Mines int
}

func (e ParamsError) Error() string {
	switch {
	case e.Rows < 1:
		return fmt.Sprintf("mines: invalid row count %d", e.Rows)
	case e.Cols < 1:
		return fmt.Sprintf("mines: invalid column count %d", e.Cols)
	case e.Mines < 0:
		return fmt.Sprintf("mines: negative mine count %d", e.Mines)
	default:
		return fmt.Sprintf("mines: %d mines do not fit on a %dx%d board", e.Mines, e.Rows, e.Cols)
	}
}

// Generate builds the initial snapshot for a fresh game: mines placed by a
// seeded Fisher-Yates shuffle of all positions, neighbor counts computed,
// every cell closed and unflagged.
//
// The first reveal is not guaranteed safe; mine layout depends only on the
// seed, never on where the player clicks.
func Generate(seed int64, rows, cols, mineCount int) (GameState, error) {
	if rows < 1 || cols < 1 || mineCount < 0 || mineCount > rows*cols {
		return GameState{}, ParamsError{Rows: rows, Cols: cols, Mines: mineCount}
	}

	b := Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
		Cells:     make([]Cell, rows*cols),
	}

	// Shuffle all positions and mine the first mineCount of them.
	positions := make([]int, rows*cols)
	for i := range positions {
		positions[i] = i
	}
	rng := NewSequence(seed)
	for i := len(positions) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
	for _, p := range positions[:mineCount] {
		b.Cells[p].Mine = true
	}

	b.countNeighbors()

	return GameState{Board: b, Status: StatusPlaying}, nil
}

// countNeighbors stores the Moore-neighborhood mine count on every non-mine
// cell, clipped at the grid boundary.
func (b *Board) countNeighbors() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[b.index(r, c)].Mine {
				continue
			}
			var n uint8
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if b.InBounds(r+dr, c+dc) && b.Cells[b.index(r+dr, c+dc)].Mine {
						n++
					}
				}
			}
			b.Cells[b.index(r, c)].Adjacent = n
		}
	}
}
