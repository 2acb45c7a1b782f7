package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aluzhin/tui-sweeper/internal/core"
)

// KeyMap defines the key bindings for in-game controls. The bindings drive
// both input mapping and the help bar.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Chord   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default in-game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "reveal"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		Chord: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chord"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the single-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Chord, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Chord},
		{k.Restart, k.Back, k.Quit},
	}
}

// MapKeyToFrame updates an input frame from a key message. Returns the
// matched game action, ActionNone when the key is unbound.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	var action core.Action
	switch {
	case key.Matches(msg, k.Up):
		action = core.ActionUp
	case key.Matches(msg, k.Down):
		action = core.ActionDown
	case key.Matches(msg, k.Left):
		action = core.ActionLeft
	case key.Matches(msg, k.Right):
		action = core.ActionRight
	case key.Matches(msg, k.Reveal):
		action = core.ActionReveal
	case key.Matches(msg, k.Flag):
		action = core.ActionFlag
	case key.Matches(msg, k.Chord):
		action = core.ActionChord
	case key.Matches(msg, k.Restart):
		action = core.ActionRestart
	case key.Matches(msg, k.Back):
		action = core.ActionBack
	case key.Matches(msg, k.Quit):
		action = core.ActionQuit
	default:
		return core.ActionNone
	}
	frame.Set(action)
	return action
}

// MapMenuKey translates a key message to a menu navigation action.
func MapMenuKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMouseToFrame resolves a mouse press to a board action with a pointer
// target. The resolver maps screen coordinates to grid coordinates; presses
// outside the board are dropped.
func MapMouseToFrame(msg tea.MouseMsg, resolver PointerResolver, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || resolver == nil {
		return false
	}

	var action core.Action
	switch msg.Button {
	case tea.MouseButtonLeft:
		action = core.ActionReveal
	case tea.MouseButtonRight:
		action = core.ActionFlag
	case tea.MouseButtonMiddle:
		action = core.ActionChord
	default:
		return false
	}

	row, col, ok := resolver.CellAt(msg.X, msg.Y)
	if !ok {
		return false
	}
	frame.Set(action)
	frame.SetPointer(row, col)
	return true
}
