package sweeper

import "github.com/aluzhin/tui-sweeper/internal/mines"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Preset         string
	Rows           int
	Cols           int
	Mines          int
	Seed           int64
	CursorR        int
	CursorC        int
	Opened         int
	Flagged        int
	MinesRemaining int
	Status         string
	BoardHash      uint64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Preset:         g.preset,
		Rows:           g.rows,
		Cols:           g.cols,
		Mines:          g.mineN,
		Seed:           g.seed,
		CursorR:        g.cursorR,
		CursorC:        g.cursorC,
		Opened:         g.safeOpened(),
		Flagged:        g.state.FlaggedCount(),
		MinesRemaining: g.state.MinesRemaining(),
		Status:         g.state.Status.String(),
		BoardHash:      boardHash(g.state.Board),
	}
}

// boardHash folds every cell into an FNV-1a style hash so two boards
// compare equal only when every cell matches.
func boardHash(b mines.Board) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	mix := func(v uint64) {
		h ^= v
		h *= prime
	}
	mix(uint64(b.Rows))
	mix(uint64(b.Cols))
	for _, cell := range b.Cells {
		var v uint64
		if cell.Mine {
			v |= 1
		}
		if cell.Open {
			v |= 2
		}
		if cell.Flagged {
			v |= 4
		}
		v |= uint64(cell.Adjacent) << 3
		mix(v)
	}
	return h
}
