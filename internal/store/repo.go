package store

import (
	"context"
	"time"

	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/questionbank"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is written into every new snapshot.
const SnapshotVersion = 1

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int                  `json:"version"`
	Progress progression.Progress `json:"progress"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData records one arena answer.
type AnswerEventData struct {
	RunID         string
	QuestionID    string
	Category      string
	Topic         string
	CorrectIndex  int
	SelectedIndex int
	Correct       bool
	TimeRemaining int
	Diagnosis     string
}

// ArenaEventData records a finished arena run.
type ArenaEventData struct {
	RunID        string
	Category     string
	Total        int
	Correct      int
	Wagered      bool
	Hints        int
	XP           int
	BrainCells   int
	DurationSecs int
}

// SenseiEventData records a completed or abandoned Sensei dialogue.
type SenseiEventData struct {
	SessionID    string
	TopicID      string
	Grade        string
	Percentage   float64
	Clarity      int
	Depth        int
	Engagement   int
	Steps        int
	Satisfied    bool
	Messages     int
	XP           int
	DarkMatter   int
	DurationSecs int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AnswerEvent is a stored answer with its ordering metadata.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// SenseiEvent is a stored dialogue outcome.
type SenseiEvent struct {
	Sequence  int64
	Timestamp time.Time
	SenseiEventData
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// TopicAccuracy aggregates answer events for one topic.
type TopicAccuracy struct {
	Topic   string
	Total   int
	Correct int
}

// Percent returns Correct/Total as a percentage, 0 when empty.
func (a TopicAccuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendArenaRun(ctx context.Context, data ArenaEventData) error
	AppendSensei(ctx context.Context, data SenseiEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)
	QuerySensei(ctx context.Context, opts QueryOpts) ([]SenseiEvent, error)
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// TopicAccuracy groups all answer events by topic, sorted by topic.
	TopicAccuracy(ctx context.Context) ([]TopicAccuracy, error)
}

// VaultItem is a missed question kept for review.
type VaultItem struct {
	Question        questionbank.Question
	UserAnswer      int
	SavedAt         time.Time
	Attempts        int
	CorrectAttempts int
	LastAttempt     time.Time
	Mastered        bool
	MasteredAt      time.Time
}

// VaultRepo persists vault items keyed by question ID.
type VaultRepo interface {
	// Insert adds item unless its question is already stored and reports
	// whether a row was written.
	Insert(ctx context.Context, item VaultItem) (bool, error)

	Get(ctx context.Context, questionID string) (*VaultItem, error)

	// List returns items newest first. Mastered items are skipped unless
	// includeMastered is set.
	List(ctx context.Context, includeMastered bool) ([]VaultItem, error)

	Update(ctx context.Context, item VaultItem) error
	Delete(ctx context.Context, questionID string) (bool, error)
}

// QuestionRepo persists LLM-generated questions.
type QuestionRepo interface {
	Save(ctx context.Context, q questionbank.Question) (bool, error)
	All(ctx context.Context) ([]questionbank.Question, error)
	Count(ctx context.Context) (int, error)
}
