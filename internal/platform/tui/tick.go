// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, the level picker and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FileChangedMsg reports that a watched level file changed on disk.
type FileChangedMsg struct {
	Path string
}

// waitForChange blocks on the change feed and turns the next path into a
// FileChangedMsg. A closed feed ends the wait.
func waitForChange(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		return FileChangedMsg{Path: path}
	}
}
