package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repos.
const (
	snapshotsTable          = "snapshots"
	answerEventsTable       = "answer_events"
	arenaEventsTable        = "arena_events"
	senseiEventsTable       = "sensei_events"
	llmRequestEventsTable   = "llm_request_events"
	vaultItemsTable         = "vault_items"
	generatedQuestionsTable = "generated_questions"
)

// eventColumns are carried by every append-only event table.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
}

func eventTable(name string, cols ...*schema.Column) *schema.Table {
	all := append(eventColumns(), cols...)
	return &schema.Table{
		Name:       name,
		Columns:    all,
		PrimaryKey: []*schema.Column{all[0]},
	}
}

var (
	snapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	snapshotsSchema = &schema.Table{
		Name:       snapshotsTable,
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
	}

	answerEventsSchema = eventTable(answerEventsTable,
		&schema.Column{Name: "run_id", Type: field.TypeString},
		&schema.Column{Name: "question_id", Type: field.TypeString},
		&schema.Column{Name: "category", Type: field.TypeString},
		&schema.Column{Name: "topic", Type: field.TypeString},
		&schema.Column{Name: "correct_index", Type: field.TypeInt},
		&schema.Column{Name: "selected_index", Type: field.TypeInt},
		&schema.Column{Name: "correct", Type: field.TypeBool},
		&schema.Column{Name: "time_remaining", Type: field.TypeInt},
		&schema.Column{Name: "diagnosis", Type: field.TypeString, Default: ""},
	)

	arenaEventsSchema = eventTable(arenaEventsTable,
		&schema.Column{Name: "run_id", Type: field.TypeString},
		&schema.Column{Name: "category", Type: field.TypeString},
		&schema.Column{Name: "total", Type: field.TypeInt},
		&schema.Column{Name: "correct", Type: field.TypeInt},
		&schema.Column{Name: "wagered", Type: field.TypeBool},
		&schema.Column{Name: "hints", Type: field.TypeInt},
		&schema.Column{Name: "xp", Type: field.TypeInt},
		&schema.Column{Name: "braincells", Type: field.TypeInt},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt},
	)

	senseiEventsSchema = eventTable(senseiEventsTable,
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "topic_id", Type: field.TypeString},
		&schema.Column{Name: "grade", Type: field.TypeString},
		&schema.Column{Name: "percentage", Type: field.TypeFloat64},
		&schema.Column{Name: "clarity", Type: field.TypeInt},
		&schema.Column{Name: "depth", Type: field.TypeInt},
		&schema.Column{Name: "engagement", Type: field.TypeInt},
		&schema.Column{Name: "steps", Type: field.TypeInt},
		&schema.Column{Name: "satisfied", Type: field.TypeBool},
		&schema.Column{Name: "messages", Type: field.TypeInt},
		&schema.Column{Name: "xp", Type: field.TypeInt},
		&schema.Column{Name: "darkmatter", Type: field.TypeInt},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt},
	)

	llmRequestEventsSchema = eventTable(llmRequestEventsTable,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
	)

	vaultItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "question", Type: field.TypeJSON},
		{Name: "user_answer", Type: field.TypeInt},
		{Name: "saved_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt", Type: field.TypeTime, Nullable: true},
		{Name: "mastered", Type: field.TypeBool, Default: false},
		{Name: "mastered_at", Type: field.TypeTime, Nullable: true},
	}
	vaultItemsSchema = &schema.Table{
		Name:       vaultItemsTable,
		Columns:    vaultItemsColumns,
		PrimaryKey: []*schema.Column{vaultItemsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "vaultitem_topic", Columns: []*schema.Column{vaultItemsColumns[2]}},
		},
	}

	generatedQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	generatedQuestionsSchema = &schema.Table{
		Name:       generatedQuestionsTable,
		Columns:    generatedQuestionsColumns,
		PrimaryKey: []*schema.Column{generatedQuestionsColumns[0]},
	}

	// tables lists everything created by auto-migration.
	tables = []*schema.Table{
		snapshotsSchema,
		answerEventsSchema,
		arenaEventsSchema,
		senseiEventsSchema,
		llmRequestEventsSchema,
		vaultItemsSchema,
		generatedQuestionsSchema,
	}
)
