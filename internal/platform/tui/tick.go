// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// gameOverMsg is sent once the post-game pause has elapsed.
type gameOverMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd waits for delay, then reports that the game over screen is done.
func gameOverCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return gameOverMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}
