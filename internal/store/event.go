package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own table, so per-table
// auto-increment IDs can't establish cross-type ordering. The shared counter
// gives every event one increasing sequence regardless of type, so a
// snapshot can be compared against any table.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// Current returns the last sequence handed out, 0 if none.
func (sc *sequenceCounter) Current(ctx context.Context) (int64, error) {
	var next int64
	if err := sc.db.QueryRowContext(ctx, `SELECT next_val FROM global_sequence WHERE id = 1`).Scan(&next); err != nil {
		return 0, fmt.Errorf("current sequence: %w", err)
	}
	return next - 1, nil
}

// eventRepo implements EventRepo on top of the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// appendEvent inserts one row into table, prefixing the sequence and
// timestamp columns.
func (r *eventRepo) appendEvent(ctx context.Context, table string, cols []string, vals ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = exec(ctx, r.db, builder.Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, cols...)...).
		Values(append([]any{seqNum, time.Now().UTC()}, vals...)...))
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, d AnswerEventData) error {
	err := r.appendEvent(ctx, answerEventsTable,
		[]string{"run_id", "question_id", "category", "topic", "correct_index", "selected_index", "correct", "time_remaining", "diagnosis"},
		d.RunID, d.QuestionID, d.Category, d.Topic, d.CorrectIndex, d.SelectedIndex, d.Correct, d.TimeRemaining, d.Diagnosis)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendArenaRun(ctx context.Context, d ArenaEventData) error {
	err := r.appendEvent(ctx, arenaEventsTable,
		[]string{"run_id", "category", "total", "correct", "wagered", "hints", "xp", "braincells", "duration_secs"},
		d.RunID, d.Category, d.Total, d.Correct, d.Wagered, d.Hints, d.XP, d.BrainCells, d.DurationSecs)
	if err != nil {
		return fmt.Errorf("save arena event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSensei(ctx context.Context, d SenseiEventData) error {
	err := r.appendEvent(ctx, senseiEventsTable,
		[]string{"session_id", "topic_id", "grade", "percentage", "clarity", "depth", "engagement", "steps", "satisfied", "messages", "xp", "darkmatter", "duration_secs"},
		d.SessionID, d.TopicID, d.Grade, d.Percentage, d.Clarity, d.Depth, d.Engagement, d.Steps, d.Satisfied, d.Messages, d.XP, d.DarkMatter, d.DurationSecs)
	if err != nil {
		return fmt.Errorf("save sensei event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, d LLMRequestEventData) error {
	err := r.appendEvent(ctx, llmRequestEventsTable,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message"},
		d.Provider, d.Model, d.Purpose, d.InputTokens, d.OutputTokens, d.LatencyMs, d.Success, d.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// selectEvents builds a newest-first query over table honoring opts.
func selectEvents(table string, opts QueryOpts, cols ...string) *entsql.Selector {
	sel := builder.Select(append([]string{"sequence", "timestamp"}, cols...)...).
		From(entsql.Table(table)).
		OrderBy(entsql.Desc("sequence"))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	return sel
}

func (r *eventRepo) QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	rows, err := query(ctx, r.db, selectEvents(answerEventsTable, opts,
		"run_id", "question_id", "category", "topic", "correct_index", "selected_index", "correct", "time_remaining", "diagnosis"))
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.RunID, &e.QuestionID, &e.Category, &e.Topic,
			&e.CorrectIndex, &e.SelectedIndex, &e.Correct, &e.TimeRemaining, &e.Diagnosis); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QuerySensei(ctx context.Context, opts QueryOpts) ([]SenseiEvent, error) {
	rows, err := query(ctx, r.db, selectEvents(senseiEventsTable, opts,
		"session_id", "topic_id", "grade", "percentage", "clarity", "depth", "engagement", "steps", "satisfied", "messages", "xp", "darkmatter", "duration_secs"))
	if err != nil {
		return nil, fmt.Errorf("query sensei events: %w", err)
	}
	defer rows.Close()

	var out []SenseiEvent
	for rows.Next() {
		var e SenseiEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.TopicID, &e.Grade, &e.Percentage,
			&e.Clarity, &e.Depth, &e.Engagement, &e.Steps, &e.Satisfied, &e.Messages, &e.XP, &e.DarkMatter, &e.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan sensei event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	rows, err := query(ctx, r.db, selectEvents(llmRequestEventsTable, opts,
		"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message"))
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) TopicAccuracy(ctx context.Context) ([]TopicAccuracy, error) {
	rows, err := query(ctx, r.db, builder.Select("topic", "correct").From(entsql.Table(answerEventsTable)))
	if err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	byTopic := make(map[string]*TopicAccuracy)
	for rows.Next() {
		var (
			topic   string
			correct bool
		)
		if err := rows.Scan(&topic, &correct); err != nil {
			return nil, fmt.Errorf("scan topic accuracy: %w", err)
		}
		acc, ok := byTopic[topic]
		if !ok {
			acc = &TopicAccuracy{Topic: topic}
			byTopic[topic] = acc
		}
		acc.Total++
		if correct {
			acc.Correct++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]TopicAccuracy, 0, len(byTopic))
	for _, acc := range byTopic {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out, nil
}
