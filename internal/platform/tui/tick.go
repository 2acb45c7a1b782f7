// Package tui provides the Bubble Tea integration for the sweeper platform.
// It handles the terminal UI loop, key and mouse mapping, and the menu to
// game flow for both local and SSH play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aluzhin/tui-sweeper/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Non-positive rates fall back to the default so a bad --fps value cannot
// stall or crash the loop.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
