package sensei

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// revealMsg shows transcript lines up to upto once the reply delay passed.
type revealMsg struct {
	sessionID string
	upto      int
}

// nudgeMsg delivers a deferred re-ask of the opening question. count is the
// session's message count when the nudge was scheduled.
type nudgeMsg struct {
	sessionID string
	count     int
	text      string
}

// completeMsg closes a completed session after the final reply had time to
// be read.
type completeMsg struct {
	sessionID string
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
