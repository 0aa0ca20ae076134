package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/synapse/internal/diagnosis"
	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/questionbank"
)

func startRun(t *testing.T, wallet Wallet, opts Options) *Run {
	t.Helper()
	engine := feedback.NewEngine(pick.Seeded(7))
	r, err := Start(questionbank.New(), wallet, questionbank.CategoryMath, engine, opts)
	require.NoError(t, err)
	return r
}

func wrongOption(q questionbank.Question) int {
	return (q.Correct + 2) % len(q.Options)
}

func TestStart_NoQuestions(t *testing.T) {
	p := progression.DefaultProgress()
	engine := feedback.NewEngine(pick.Seeded(1))
	_, err := Start(questionbank.New(), &p, questionbank.Category("history"), engine, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestStart_Wager(t *testing.T) {
	p := progression.DefaultProgress()
	opts := DefaultOptions()
	opts.Wager = true

	r := startRun(t, &p, opts)
	assert.True(t, r.Wager)
	assert.Equal(t, progression.StarterBrainCells-25, p.BrainCells)
	assert.Len(t, r.Questions, 5)
	assert.Equal(t, 90, r.TimeRemaining)
}

func TestStart_WagerDeclined(t *testing.T) {
	p := progression.DefaultProgress()
	p.BrainCells = 20
	opts := DefaultOptions()
	opts.Wager = true

	r := startRun(t, &p, opts)
	assert.False(t, r.Wager)
	assert.True(t, r.WagerDeclined)
	assert.Equal(t, 20, p.BrainCells)
}

func TestSubmit_Errors(t *testing.T) {
	p := progression.DefaultProgress()
	r := startRun(t, &p, DefaultOptions())

	_, err := r.Submit()
	assert.ErrorIs(t, err, ErrNoSelection)

	assert.ErrorIs(t, r.Select(9), ErrInvalidOption)

	require.NoError(t, r.Select(r.Current().Correct))
	res, err := r.Submit()
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Nil(t, res.Reply.Diagnosis)

	_, err = r.Submit()
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.ErrorIs(t, r.Select(0), ErrAlreadyAnswered)
}

func TestSubmit_WrongAnswerIsDiagnosed(t *testing.T) {
	p := progression.DefaultProgress()
	r := startRun(t, &p, DefaultOptions())

	q := r.Current()
	require.NoError(t, r.Select(wrongOption(q)))
	res, err := r.Submit()
	require.NoError(t, err)
	assert.False(t, res.Correct)
	require.NotNil(t, res.Reply.Diagnosis)
	assert.Contains(t, res.Reply.Text, q.Explanation)
	assert.Equal(t, 1, r.Wrong)
}

func TestTick_TimeoutSubmitsNoAnswer(t *testing.T) {
	p := progression.DefaultProgress()
	opts := DefaultOptions()
	opts.SecondsPerQuestion = 3
	r := startRun(t, &p, opts)

	for i := 0; i < 2; i++ {
		res, fired := r.Tick()
		assert.False(t, fired)
		assert.Nil(t, res)
	}
	res, fired := r.Tick()
	require.True(t, fired)
	assert.Equal(t, diagnosis.NoAnswer, res.Selected)
	assert.True(t, res.Reply.Timeout)
	assert.Equal(t, 3, r.TotalTime)

	_, fired = r.Tick()
	assert.False(t, fired, "clock stops once answered")
	assert.Equal(t, 3, r.TotalTime)
}

func TestTick_TimeoutKeepsSelection(t *testing.T) {
	p := progression.DefaultProgress()
	opts := DefaultOptions()
	opts.SecondsPerQuestion = 1
	r := startRun(t, &p, opts)

	require.NoError(t, r.Select(r.Current().Correct))
	res, fired := r.Tick()
	require.True(t, fired)
	assert.True(t, res.Correct)
}

func TestUseHint(t *testing.T) {
	p := progression.DefaultProgress()
	r := startRun(t, &p, DefaultOptions())
	q := r.Current()

	eliminated, err := r.UseHint(&p)
	require.NoError(t, err)
	require.Len(t, eliminated, 2)
	for _, i := range eliminated {
		assert.NotEqual(t, q.Correct, i)
		assert.ErrorIs(t, r.Select(i), ErrInvalidOption)
	}
	assert.Equal(t, progression.StarterBrainCells-10, p.BrainCells)

	_, err = r.UseHint(&p)
	assert.ErrorIs(t, err, ErrHintUsed)
	assert.Equal(t, progression.StarterBrainCells-10, p.BrainCells)
}

func TestUseHint_InsufficientFunds(t *testing.T) {
	p := progression.DefaultProgress()
	p.BrainCells = 5
	r := startRun(t, &p, DefaultOptions())

	_, err := r.UseHint(&p)
	assert.True(t, errors.Is(err, progression.ErrInsufficientFunds))
	assert.False(t, r.HintUsed)
	assert.Empty(t, r.Eliminated)
	assert.Equal(t, 5, p.BrainCells)
}

func TestFullRun(t *testing.T) {
	p := progression.DefaultProgress()
	opts := DefaultOptions()
	opts.Wager = true
	r := startRun(t, &p, opts)

	seen := make(map[string]bool)
	for i := 0; ; i++ {
		q := r.Current()
		assert.False(t, seen[q.ID], "question served twice")
		seen[q.ID] = true

		_, err := r.Next()
		assert.ErrorIs(t, err, ErrNotAnswered)

		answer := q.Correct
		if i == 4 {
			answer = wrongOption(q)
		}
		r.Tick()
		require.NoError(t, r.Select(answer))
		_, err = r.Submit()
		require.NoError(t, err)

		more, err := r.Next()
		require.NoError(t, err)
		if !more {
			break
		}
	}
	assert.True(t, r.Done())
	assert.Len(t, r.Answers, 5)

	res := r.Finish()
	assert.Equal(t, 4, res.Correct)
	assert.Equal(t, 80, res.Accuracy)
	assert.Equal(t, (4*15+25)*2, res.XP)
	assert.Equal(t, (4*10+15)*2, res.BrainCells)
	assert.Equal(t, "0:05", res.Duration)
	assert.Equal(t, "Excellent Work!", res.Title)
}
