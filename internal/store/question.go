package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/synapse/internal/questionbank"
)

type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) Save(ctx context.Context, q questionbank.Question) (bool, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return false, fmt.Errorf("marshal question: %w", err)
	}
	res, err := exec(ctx, r.db, builder.Insert(generatedQuestionsTable).
		Columns("question_id", "category", "data", "created_at").
		Values(q.ID, string(q.Category), data, time.Now().UTC()).
		OnConflict(entsql.ConflictColumns("question_id"), entsql.DoNothing()))
	if err != nil {
		return false, fmt.Errorf("save question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save question: %w", err)
	}
	return n > 0, nil
}

func (r *questionRepo) All(ctx context.Context) ([]questionbank.Question, error) {
	rows, err := query(ctx, r.db, builder.Select("data").
		From(entsql.Table(generatedQuestionsTable)).
		OrderBy(entsql.Asc("id")))
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []questionbank.Question
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var q questionbank.Question
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, generatedQuestionsTable, nil)
}
