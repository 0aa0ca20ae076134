package arena

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	ar "github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/diagnosis"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
)

// RunScreen plays one arena run. Leaving with Esc abandons the run: nothing
// is paid out and a wager is lost.
type RunScreen struct {
	coach   *coach.Coach
	run     *ar.Run
	options components.OptionList
	last    *ar.AnswerResult
	notice  string

	// finishing is set once the run has been handed to the coach.
	finishing bool
}

var _ screen.Screen = (*RunScreen)(nil)
var _ screen.KeyHintProvider = (*RunScreen)(nil)

// NewRun creates the screen for a started run.
func NewRun(c *coach.Coach, run *ar.Run) *RunScreen {
	s := &RunScreen{coach: c, run: run}
	s.loadQuestion()
	return s
}

func (s *RunScreen) loadQuestion() {
	q := s.run.Current()
	s.options = components.NewOptionList(q.Options)
	s.options.Correct = q.Correct
	s.last = nil
	s.notice = ""
	if s.run.WagerDeclined && s.run.Index == 0 {
		s.notice = "Not enough brain cells to wager. Playing for standard rewards."
	}
}

func (s *RunScreen) Init() tea.Cmd {
	return tickCmd(s.run.ID, s.run.Index)
}

func (s *RunScreen) Title() string { return "Arena" }

func (s *RunScreen) KeyHints() []layout.KeyHint {
	if s.run.Answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Choose"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.runID != s.run.ID || msg.index != s.run.Index || s.run.Answered || s.run.Done() {
			return s, nil
		}
		if res, expired := s.run.Tick(); expired {
			s.reveal(*res)
			return s, nil
		}
		return s, tickCmd(s.run.ID, s.run.Index)

	case tea.KeyMsg:
		key := msg.String()
		if s.run.Answered {
			switch key {
			case "enter", "space", "n":
				return s, s.advance()
			}
			return s, nil
		}
		switch key {
		case "h":
			s.hint()
		case "enter", "space":
			s.submit()
		case "up", "down", "j", "k":
			s.options, _ = s.options.Update(msg)
		default:
			if i := s.options.LetterIndex(key); i >= 0 {
				s.choose(i)
			}
		}
	}
	return s, nil
}

func (s *RunScreen) choose(i int) {
	if err := s.run.Select(i); err != nil {
		s.notice = "That option is out."
		return
	}
	s.notice = ""
	s.options.Selected = i
	s.options.Cursor = i
}

func (s *RunScreen) submit() {
	if s.run.Selected == diagnosis.NoAnswer {
		s.choose(s.options.Cursor)
	}
	res, err := s.run.Submit()
	if err != nil {
		return
	}
	s.reveal(res)
}

func (s *RunScreen) reveal(res ar.AnswerResult) {
	s.last = &res
	s.notice = ""
	s.options.Revealed = true
	s.options.Selected = res.Selected
}

func (s *RunScreen) hint() {
	removed, err := s.run.UseHint(s.coach)
	switch {
	case errors.Is(err, progression.ErrInsufficientFunds):
		s.notice = "Not enough brain cells for a hint."
		return
	case errors.Is(err, ar.ErrHintUsed):
		s.notice = "Hint already used on this question."
		return
	case err != nil:
		return
	}
	for _, i := range removed {
		s.options.Eliminated[i] = true
		if s.options.Selected == i {
			s.options.Selected = -1
		}
	}
	if s.options.Eliminated[s.options.Cursor] {
		for i := range s.options.Options {
			if !s.options.Eliminated[i] {
				s.options.Cursor = i
				break
			}
		}
	}
	s.notice = "Two wrong answers eliminated."
}

// advance moves to the next question, or settles the run and shows the
// results when it was the last one.
func (s *RunScreen) advance() tea.Cmd {
	if s.finishing {
		return nil
	}
	more, err := s.run.Next()
	if err != nil {
		return nil
	}
	if !more {
		s.finishing = true
		outcome := s.coach.FinishArena(context.Background(), s.run)
		results := NewResults(s.run, outcome)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	}
	s.loadQuestion()
	return tickCmd(s.run.ID, s.run.Index)
}
