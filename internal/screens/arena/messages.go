package arena

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerTickMsg is one second of the question clock. It carries the run and
// question it was scheduled for so stale ticks can be dropped.
type timerTickMsg struct {
	runID string
	index int
}

// tickCmd schedules the next clock tick for question index of run runID.
func tickCmd(runID string, index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{runID: runID, index: index}
	})
}
