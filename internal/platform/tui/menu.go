package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aluzhin/tui-sweeper/internal/config"
	"github.com/aluzhin/tui-sweeper/internal/core"
	"github.com/aluzhin/tui-sweeper/internal/storage"
)

// MenuItem is a selectable board preset.
type MenuItem struct {
	Preset   string
	Rows     int
	Cols     int
	Mines    int
	BestSecs int // -1 when no win is recorded
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	store    *storage.Store
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a menu over the presets of the given sweeper config.
func NewMenuModel(sc config.SweeperConfig, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(sc.Presets))
	for _, name := range sc.PresetNames() {
		p, err := sc.Preset(name)
		if err != nil {
			continue
		}
		item := MenuItem{
			Preset:   name,
			Rows:     p.Rows,
			Cols:     p.Cols,
			Mines:    p.Mines,
			BestSecs: -1,
		}
		if store != nil {
			if stats, serr := store.Stats(name); serr == nil && stats.Won > 0 {
				item.BestSecs = stats.BestTimeSecs
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapMenuKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S W E E P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if item.BestSecs >= 0 {
			best = fmt.Sprintf("  best %ds", item.BestSecs)
		}

		line := fmt.Sprintf("%s%-8s %2dx%-2d %3d mines%s",
			cursor, item.Preset, item.Rows, item.Cols, item.Mines, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected preset, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
