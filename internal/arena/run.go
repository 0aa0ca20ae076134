// Package arena runs timed multiple-choice practice rounds.
package arena

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/synapse/internal/diagnosis"
	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/abhisek/synapse/internal/questionbank"
)

var (
	ErrNoQuestions     = errors.New("no questions available")
	ErrNoSelection     = errors.New("no answer selected")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question not answered")
	ErrInvalidOption   = errors.New("invalid option")
	ErrHintUsed        = errors.New("hint already used for this question")
	ErrRunOver         = errors.New("run is over")
)

// Wallet pays for wagers and hints.
type Wallet interface {
	SpendBrainCells(n int) error
}

// Options configures a run.
type Options struct {
	Wager              bool
	Questions          int
	SecondsPerQuestion int
	WagerCost          int
	HintCost           int
}

// DefaultOptions returns the standard five-question, 90-second run.
func DefaultOptions() Options {
	return Options{
		Questions:          5,
		SecondsPerQuestion: 90,
		WagerCost:          25,
		HintCost:           10,
	}
}

// AnswerResult is the outcome of one submitted question.
type AnswerResult struct {
	Question      questionbank.Question
	Selected      int // diagnosis.NoAnswer on timeout
	Correct       bool
	TimeRemaining int
	Reply         feedback.ArenaReply
}

// Run is a single arena round. It is not safe for concurrent use.
type Run struct {
	ID       string
	Category questionbank.Category

	// Questions are the sampled questions in serving order.
	Questions []questionbank.Question

	// Index points at the current question.
	Index int

	// Selected is the chosen option, diagnosis.NoAnswer until one is picked.
	Selected int

	// Answered is set once the current question has been submitted.
	Answered bool

	Correct int
	Wrong   int

	// TimeRemaining counts down for the current question.
	TimeRemaining int

	// TotalTime counts seconds ticked across the whole run.
	TotalTime int

	Wager         bool
	WagerDeclined bool

	// HintUsed applies to the current question; HintsUsed counts the run.
	HintUsed  bool
	HintsUsed int

	// Eliminated holds options removed by a hint on the current question.
	Eliminated map[int]bool

	// Answers logs every submitted question in order.
	Answers []AnswerResult

	StartedAt time.Time

	done   bool
	opts   Options
	engine *feedback.Engine
}

// Start samples questions and opens a run. If a wager was requested but the
// wallet cannot cover it, the run proceeds without the wager and
// WagerDeclined is set.
func Start(bank *questionbank.Bank, wallet Wallet, category questionbank.Category, engine *feedback.Engine, opts Options) (*Run, error) {
	qs := bank.Sample(category, opts.Questions, engine.Source())
	if len(qs) == 0 {
		return nil, fmt.Errorf("start %s run: %w", category, ErrNoQuestions)
	}

	r := &Run{
		ID:        uuid.NewString(),
		Category:  category,
		Questions: qs,
		StartedAt: time.Now(),
		opts:      opts,
		engine:    engine,
	}
	if opts.Wager {
		if err := wallet.SpendBrainCells(opts.WagerCost); err != nil {
			r.WagerDeclined = true
		} else {
			r.Wager = true
		}
	}
	r.load(0)
	return r, nil
}

func (r *Run) load(i int) {
	r.Index = i
	r.Selected = diagnosis.NoAnswer
	r.Answered = false
	r.HintUsed = false
	r.Eliminated = make(map[int]bool)
	r.TimeRemaining = r.opts.SecondsPerQuestion
}

// Current returns the question being served.
func (r *Run) Current() questionbank.Question {
	return r.Questions[r.Index]
}

// Done reports whether the run has moved past its last question.
func (r *Run) Done() bool { return r.done }

// Select picks an option for the current question.
func (r *Run) Select(i int) error {
	switch {
	case r.done:
		return ErrRunOver
	case r.Answered:
		return ErrAlreadyAnswered
	case i < 0 || i >= len(r.Current().Options) || r.Eliminated[i]:
		return fmt.Errorf("option %d: %w", i, ErrInvalidOption)
	}
	r.Selected = i
	return nil
}

// Submit grades the selected option.
func (r *Run) Submit() (AnswerResult, error) {
	switch {
	case r.done:
		return AnswerResult{}, ErrRunOver
	case r.Answered:
		return AnswerResult{}, ErrAlreadyAnswered
	case r.Selected == diagnosis.NoAnswer:
		return AnswerResult{}, ErrNoSelection
	}
	return r.submit(r.Selected), nil
}

func (r *Run) submit(selected int) AnswerResult {
	q := r.Current()
	r.Answered = true
	r.Selected = selected

	res := AnswerResult{
		Question:      q,
		Selected:      selected,
		Correct:       selected == q.Correct,
		TimeRemaining: r.TimeRemaining,
		Reply:         r.engine.Arena(q, selected, r.TimeRemaining),
	}
	if res.Correct {
		r.Correct++
	} else {
		r.Wrong++
	}
	r.Answers = append(r.Answers, res)
	return res
}

// Tick advances the clock by one second. When time runs out the current
// selection, or NoAnswer if there is none, is submitted and returned.
func (r *Run) Tick() (*AnswerResult, bool) {
	if r.done || r.Answered {
		return nil, false
	}
	r.TimeRemaining--
	r.TotalTime++
	if r.TimeRemaining > 0 {
		return nil, false
	}
	res := r.submit(r.Selected)
	return &res, true
}

// UseHint spends HintCost to eliminate two wrong options on the current
// question and returns their indices. Nothing is spent on failure.
func (r *Run) UseHint(wallet Wallet) ([]int, error) {
	switch {
	case r.done:
		return nil, ErrRunOver
	case r.Answered:
		return nil, ErrAlreadyAnswered
	case r.HintUsed:
		return nil, ErrHintUsed
	}
	if err := wallet.SpendBrainCells(r.opts.HintCost); err != nil {
		return nil, fmt.Errorf("hint: %w", err)
	}
	r.HintUsed = true
	r.HintsUsed++

	q := r.Current()
	var wrong []int
	for i := range q.Options {
		if i != q.Correct {
			wrong = append(wrong, i)
		}
	}
	wrong = pick.Shuffle(r.engine.Source(), wrong)
	if len(wrong) > 2 {
		wrong = wrong[:2]
	}
	for _, i := range wrong {
		r.Eliminated[i] = true
		if r.Selected == i {
			r.Selected = diagnosis.NoAnswer
		}
	}
	return wrong, nil
}

// Next moves to the following question. It returns false once the run is
// over.
func (r *Run) Next() (bool, error) {
	if r.done {
		return false, nil
	}
	if !r.Answered {
		return true, ErrNotAnswered
	}
	if r.Index >= len(r.Questions)-1 {
		r.done = true
		return false, nil
	}
	r.load(r.Index + 1)
	return true, nil
}

// Finish closes the run and computes rewards.
func (r *Run) Finish() Results {
	r.done = true
	res := ResultsFor(r.Correct, len(r.Questions), r.Wager)
	res.Duration = FormatDuration(r.TotalTime)
	res.Hints = r.HintsUsed
	return res
}
