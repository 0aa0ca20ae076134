package sensei

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/synapse/internal/pick"
)

var (
	// ErrEmptyMessage is returned for blank learner messages. The session is
	// not touched.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSessionInactive is returned when sending to a session that has not
	// started or has already finished.
	ErrSessionInactive = errors.New("session is not in progress")
)

// Presentation pacing. The session advances synchronously; callers use these
// to schedule when replies appear.
const (
	ReplyDelay    = 800 * time.Millisecond
	NudgeDelay    = time.Second
	CompleteDelay = 2 * time.Second
)

// NudgeAfterMessages is the learner message count after which a stalled
// session (no step completed) re-asks the opening question.
const NudgeAfterMessages = 6

const nudgePrefix = "Let me ask more specifically: "

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted // every follow-up satisfied
	StateEnded     // stopped by the learner before completion
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	case StateEnded:
		return "ended"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Sender identifies who wrote a transcript line.
type Sender string

const (
	SenderLearner Sender = "user"
	SenderSensei  Sender = "ai"
)

// Message is one transcript line.
type Message struct {
	Sender Sender
	Text   string
}

// Reply is the sensei's answer to a learner message.
type Reply struct {
	Text      string
	Advanced  bool   // the message satisfied the current step
	Completed bool   // the message satisfied the final step
	Nudge     string // optional follow-up line; deliver with DeliverNudge
}

// Session is one teach-back dialogue. It is not safe for concurrent use.
type Session struct {
	ID           string
	Topic        *Topic
	State        State
	Step         int
	Scores       Scores
	MessageCount int
	Satisfied    bool
	Transcript   []Message
	StartedAt    time.Time
	EndedAt      time.Time

	src pick.Source
	now func() time.Time
}

// NewSession creates a session for topic. Resistance lines are drawn from src.
func NewSession(topic *Topic, src pick.Source) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Topic: topic,
		src:   src,
		now:   time.Now,
	}
}

// Start opens the dialogue and returns the opening line. Calling Start on a
// session that already started returns the opening without side effects.
func (s *Session) Start() string {
	if s.State == StateNotStarted {
		s.State = StateInProgress
		s.StartedAt = s.now()
		s.say(SenderSensei, s.Topic.Opening)
	}
	return s.Topic.Opening
}

// Active reports whether the session accepts messages. Deferred callbacks
// should check it before acting.
func (s *Session) Active() bool { return s.State == StateInProgress }

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool {
	return s.State == StateCompleted || s.State == StateEnded
}

// Send processes one learner message. The step advances at most once per
// message, and only when the message contains a trigger of the current step.
func (s *Session) Send(text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}
	if !s.Active() {
		return Reply{}, fmt.Errorf("send to %s session: %w", s.State, ErrSessionInactive)
	}

	s.say(SenderLearner, text)
	s.MessageCount++
	s.Scores = s.Scores.Add(Analyze(s.Topic.Criteria, text))

	if s.Step < s.Topic.Steps() && containsAny(text, s.Topic.FollowUps[s.Step].Triggers) {
		reply := Reply{Text: s.Topic.FollowUps[s.Step].Response, Advanced: true}
		s.Step++
		s.say(SenderSensei, reply.Text)
		if s.Step == s.Topic.Steps() {
			s.Satisfied = true
			s.finish(StateCompleted)
			reply.Completed = true
		}
		return reply, nil
	}

	reply := Reply{Text: pick.One(s.src, s.Topic.Resistance)}
	s.say(SenderSensei, reply.Text)
	if s.MessageCount > NudgeAfterMessages && s.Step == 0 {
		reply.Nudge = nudgePrefix + s.Topic.Opening
	}
	return reply, nil
}

// DeliverNudge appends a nudge returned by Send once the caller shows it.
// It reports false and does nothing if the session is no longer active.
func (s *Session) DeliverNudge(nudge string) bool {
	if !s.Active() || nudge == "" {
		return false
	}
	s.say(SenderSensei, nudge)
	return true
}

// End stops an in-progress session. It is a no-op in any other state.
func (s *Session) End() {
	if s.State == StateInProgress {
		s.finish(StateEnded)
	}
}

// Duration returns how long the session ran, or has run so far.
func (s *Session) Duration() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if s.EndedAt.IsZero() {
		return s.now().Sub(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// LearnerMessages returns the learner's lines in order.
func (s *Session) LearnerMessages() []string {
	var out []string
	for _, m := range s.Transcript {
		if m.Sender == SenderLearner {
			out = append(out, m.Text)
		}
	}
	return out
}

func (s *Session) finish(state State) {
	s.State = state
	s.EndedAt = s.now()
}

func (s *Session) say(sender Sender, text string) {
	s.Transcript = append(s.Transcript, Message{Sender: sender, Text: text})
}
