package coach

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/sensei"
	"github.com/abhisek/synapse/internal/store"
)

// SenseiOutcome is the graded result of a dialogue and what it paid.
type SenseiOutcome struct {
	Evaluation sensei.Evaluation
	Level      progression.LevelChange

	// Repeat is set when the session had already been rewarded.
	Repeat bool
}

// StartSensei opens a dialogue on topicID and returns it started.
func (c *Coach) StartSensei(topicID string) (*sensei.Session, error) {
	topic, err := sensei.LookupTopic(topicID)
	if err != nil {
		return nil, err
	}
	s := sensei.NewSession(topic, c.engine.Source())
	s.Start()
	c.logger.Debug("sensei session started", zap.String("session", s.ID), zap.String("topic", topic.ID))
	return s, nil
}

// FinishSensei ends s if still running, grades it and pays the tier
// rewards. A session is rewarded once; later calls return the same
// evaluation with Repeat set.
func (c *Coach) FinishSensei(ctx context.Context, s *sensei.Session) SenseiOutcome {
	s.End()
	out := SenseiOutcome{Evaluation: sensei.Evaluate(s)}
	eval := out.Evaluation

	c.mu.Lock()
	if c.finished[s.ID] {
		c.mu.Unlock()
		out.Repeat = true
		return out
	}
	c.finished[s.ID] = true
	c.mu.Unlock()

	c.update(ctx, func(p *progression.Progress) error {
		out.Level = p.AddXP(eval.XP)
		p.AddDarkMatter(eval.DarkMatter)
		p.RecordActivity(c.now(), s.Duration())
		return nil
	})

	err := c.events.AppendSensei(ctx, store.SenseiEventData{
		SessionID:    s.ID,
		TopicID:      s.Topic.ID,
		Grade:        string(eval.Grade),
		Percentage:   eval.Percentage,
		Clarity:      eval.Scores.Clarity,
		Depth:        eval.Scores.Depth,
		Engagement:   eval.Scores.Engagement,
		Steps:        s.Step,
		Satisfied:    eval.Satisfied,
		Messages:     s.MessageCount,
		XP:           eval.XP,
		DarkMatter:   eval.DarkMatter,
		DurationSecs: int(s.Duration().Seconds()),
	})
	if err != nil {
		c.logger.Warn("record sensei event", zap.Error(err))
	}

	c.logger.Info("sensei session finished",
		zap.String("session", s.ID),
		zap.String("topic", s.Topic.ID),
		zap.String("grade", string(eval.Grade)),
		zap.Float64("percentage", eval.Percentage),
	)
	return out
}
