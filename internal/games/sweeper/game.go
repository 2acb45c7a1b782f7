// Package sweeper adapts the mines engine to the platform Game interface:
// cursor handling, timing, rendering, and round results. All board logic
// lives in internal/mines; this package only holds the current snapshot and
// replaces it on each accepted transition.
package sweeper

import (
	"math/rand"

	"github.com/aluzhin/tui-sweeper/internal/config"
	"github.com/aluzhin/tui-sweeper/internal/core"
	"github.com/aluzhin/tui-sweeper/internal/mines"
	"github.com/aluzhin/tui-sweeper/internal/registry"
)

// Game is the single state holder for a round: it exclusively owns the
// current mines.GameState and reassigns it whenever a transition is
// accepted. Nothing else mutates the snapshot.
type Game struct {
	state  mines.GameState
	preset string
	rows   int
	cols   int
	mineN  int
	seed   int64
	rng    *rand.Rand // restart seeds only; board randomness is the engine's

	cursorR int
	cursorC int

	tick         uint64
	tickRate     int
	elapsedTicks uint64

	display    config.DisplayConfig
	lastResult *core.GameResult

	screenW  int
	screenH  int
	tooSmall bool

	// Board layout of the last Render, used to map pointer positions
	// back to grid coordinates.
	boardX, boardY, cellW int
}

// Package-level selection applied on the next Reset, set by the CLI or the
// menu before the game is created.
var (
	configPath   string
	presetName   = config.PresetNormal
	customRows   int
	customCols   int
	customMines  int
	customActive bool
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the board preset used on the next Reset.
func SetPreset(name string) {
	if name != "" {
		presetName = name
	}
	customActive = false
}

// SetCustomBoard overrides the preset with explicit dimensions.
func SetCustomBoard(rows, cols, mineCount int) {
	customRows, customCols, customMines = rows, cols, mineCount
	customActive = true
}

// New creates a new sweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("sweeper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sweeper"
}

// Reset starts a fresh round: resolves the board parameters, generates a
// new board from the seed, and centers the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc, err := config.Load(configPath)
	if err != nil {
		sc = config.DefaultSweeperConfig()
	}
	g.display = sc.Display

	g.preset = presetName
	if customActive {
		g.preset = "custom"
		g.rows, g.cols, g.mineN = customRows, customCols, customMines
	} else {
		p, perr := sc.Preset(presetName)
		if perr != nil {
			p, _ = config.DefaultSweeperConfig().Preset(config.PresetNormal)
			g.preset = config.PresetNormal
		}
		g.rows, g.cols, g.mineN = p.Rows, p.Cols, p.Mines
	}

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsedTicks = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.lastResult = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	state, err := mines.Generate(g.seed, g.rows, g.cols, g.mineN)
	if err != nil {
		// Unreachable with validated presets; custom boards are validated
		// by the CLI. Fall back to the built-in default rather than crash.
		p, _ := config.DefaultSweeperConfig().Preset(config.PresetNormal)
		g.preset = config.PresetNormal
		g.rows, g.cols, g.mineN = p.Rows, p.Cols, p.Mines
		state, _ = mines.Generate(g.seed, g.rows, g.cols, g.mineN)
	}
	g.state = state

	g.cursorR = g.rows / 2
	g.cursorC = g.cols / 2
	g.checkScreenSize()
}

// checkScreenSize flags boards that cannot fit on the current screen.
func (g *Game) checkScreenSize() {
	g.cellW = 1
	if g.display.WideCells {
		g.cellW = 2
	}
	requiredW := g.cols*g.cellW + 2
	requiredH := g.rows + hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.state.Status != mines.StatusPlaying {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.state.Status != mines.StatusPlaying || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.elapsedTicks++
	g.processInput(input)

	return core.StepResult{State: g.State()}
}

// processInput moves the cursor and applies board transitions. A pointer
// target from the platform overrides the cursor position for this frame.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursorR = core.Clamp(g.cursorR-1, 0, g.rows-1)
	case input.Has(core.ActionDown):
		g.cursorR = core.Clamp(g.cursorR+1, 0, g.rows-1)
	case input.Has(core.ActionLeft):
		g.cursorC = core.Clamp(g.cursorC-1, 0, g.cols-1)
	case input.Has(core.ActionRight):
		g.cursorC = core.Clamp(g.cursorC+1, 0, g.cols-1)
	}

	if input.HasPointer && g.state.Board.InBounds(input.PointerRow, input.PointerCol) {
		g.cursorR, g.cursorC = input.PointerRow, input.PointerCol
	}

	switch {
	case input.Has(core.ActionReveal):
		g.apply(mines.Reveal(g.state, g.cursorR, g.cursorC))
	case input.Has(core.ActionFlag):
		g.apply(mines.ToggleFlag(g.state, g.cursorR, g.cursorC))
	case input.Has(core.ActionChord):
		g.apply(mines.Chord(g.state, g.cursorR, g.cursorC))
	}
}

// apply replaces the owned snapshot and captures the round result when the
// transition ended the game.
func (g *Game) apply(next mines.GameState) {
	g.state = next
	if g.state.Status == mines.StatusPlaying || g.lastResult != nil {
		return
	}
	g.lastResult = &core.GameResult{
		Preset:       g.preset,
		Rows:         g.rows,
		Cols:         g.cols,
		Mines:        g.mineN,
		Seed:         g.seed,
		Won:          g.state.Status == mines.StatusWon,
		DurationSecs: int(g.elapsedTicks) / g.tickRate,
		CellsOpened:  g.safeOpened(),
	}
}

// safeOpened counts open non-mine cells. On a loss the engine opens every
// mine for display; those must not count as progress.
func (g *Game) safeOpened() int {
	n := 0
	for _, cell := range g.state.Board.Cells {
		if cell.Open && !cell.Mine {
			n++
		}
	}
	return n
}

// State returns the current platform-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.safeOpened(),
		GameOver: g.state.Status != mines.StatusPlaying,
		Won:      g.state.Status == mines.StatusWon,
	}
}

// LastResult returns the finished round's summary, if the round is over.
func (g *Game) LastResult() (core.GameResult, bool) {
	if g.lastResult == nil {
		return core.GameResult{}, false
	}
	return *g.lastResult, true
}

// CellAt maps a screen position to board coordinates using the layout of
// the last Render. The platform uses this to resolve mouse clicks.
func (g *Game) CellAt(x, y int) (row, col int, ok bool) {
	if g.cellW == 0 {
		return 0, 0, false
	}
	row = y - g.boardY
	col = (x - g.boardX) / g.cellW
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, 0, false
	}
	return row, col, true
}

// Elapsed returns the round duration in whole seconds.
func (g *Game) Elapsed() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int(g.elapsedTicks) / g.tickRate
}
