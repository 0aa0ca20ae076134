package feedback

import (
	"github.com/abhisek/synapse/internal/diagnosis"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/abhisek/synapse/internal/questionbank"
)

// QuickAnswerSeconds is the remaining time above which a correct answer earns
// the speed remark.
const QuickAnswerSeconds = 60

const quickRemark = " Quick and accurate - that's mastery in action."

// ArenaReply is the coach's reaction to one answered arena question.
type ArenaReply struct {
	Text      string
	Timeout   bool
	Diagnosis *diagnosis.Result // nil unless the answer was wrong
}

// Insight returns a remark for a correct answer on topic.
func (e *Engine) Insight(topic string) string {
	pool, ok := topicInsights[topic]
	if !ok {
		pool = defaultInsights
	}
	return pick.One(e.src, pool)
}

// Arena renders feedback for an answered question. selected is
// diagnosis.NoAnswer when the clock ran out.
func (e *Engine) Arena(q questionbank.Question, selected int, timeRemaining int) ArenaReply {
	switch {
	case selected == q.Correct:
		text := e.mustRender(PoolArenaCorrect, map[string]string{"insight": e.Insight(q.Topic)})
		if timeRemaining > QuickAnswerSeconds {
			text += quickRemark
		}
		return ArenaReply{Text: text}

	case selected == diagnosis.NoAnswer:
		return ArenaReply{
			Text:    e.mustRender(PoolArenaTimeout, map[string]string{"explanation": q.Explanation}),
			Timeout: true,
		}
	}

	d := diagnosis.NewDiagnoser(e.src).Diagnose(q.Correct, selected)
	text := e.mustRender(PoolArenaIncorrect, map[string]string{
		"diagnosis":   d.Response,
		"explanation": q.Explanation,
	})
	return ArenaReply{Text: text, Diagnosis: d}
}
