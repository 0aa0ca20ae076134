package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrVaultItemNotFound is returned when no item exists for a question ID.
var ErrVaultItemNotFound = errors.New("vault item not found")

var vaultSelectColumns = []string{
	"question", "user_answer", "saved_at", "attempts", "correct_attempts",
	"last_attempt", "mastered", "mastered_at",
}

type vaultRepo struct {
	db *sql.DB
}

func (r *vaultRepo) Insert(ctx context.Context, item VaultItem) (bool, error) {
	data, err := json.Marshal(item.Question)
	if err != nil {
		return false, fmt.Errorf("marshal vault question: %w", err)
	}
	res, err := exec(ctx, r.db, builder.Insert(vaultItemsTable).
		Columns("question_id", "topic", "question", "user_answer", "saved_at", "attempts", "correct_attempts", "mastered").
		Values(item.Question.ID, item.Question.Topic, data, item.UserAnswer, item.SavedAt, item.Attempts, item.CorrectAttempts, item.Mastered).
		OnConflict(entsql.ConflictColumns("question_id"), entsql.DoNothing()))
	if err != nil {
		return false, fmt.Errorf("insert vault item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert vault item: %w", err)
	}
	return n > 0, nil
}

func (r *vaultRepo) Get(ctx context.Context, questionID string) (*VaultItem, error) {
	row := queryRow(ctx, r.db, builder.Select(vaultSelectColumns...).
		From(entsql.Table(vaultItemsTable)).
		Where(entsql.EQ("question_id", questionID)))
	item, err := scanVaultItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", questionID, ErrVaultItemNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *vaultRepo) List(ctx context.Context, includeMastered bool) ([]VaultItem, error) {
	sel := builder.Select(vaultSelectColumns...).
		From(entsql.Table(vaultItemsTable)).
		OrderBy(entsql.Desc("saved_at"), entsql.Desc("id"))
	if !includeMastered {
		sel = sel.Where(entsql.EQ("mastered", false))
	}
	rows, err := query(ctx, r.db, sel)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}
	defer rows.Close()

	var out []VaultItem
	for rows.Next() {
		item, err := scanVaultItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

func (r *vaultRepo) Update(ctx context.Context, item VaultItem) error {
	upd := builder.Update(vaultItemsTable).
		Set("attempts", item.Attempts).
		Set("correct_attempts", item.CorrectAttempts).
		Set("mastered", item.Mastered).
		Where(entsql.EQ("question_id", item.Question.ID))
	if item.LastAttempt.IsZero() {
		upd.SetNull("last_attempt")
	} else {
		upd.Set("last_attempt", item.LastAttempt)
	}
	if item.MasteredAt.IsZero() {
		upd.SetNull("mastered_at")
	} else {
		upd.Set("mastered_at", item.MasteredAt)
	}

	res, err := exec(ctx, r.db, upd)
	if err != nil {
		return fmt.Errorf("update vault item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", item.Question.ID, ErrVaultItemNotFound)
	}
	return nil
}

func (r *vaultRepo) Delete(ctx context.Context, questionID string) (bool, error) {
	res, err := exec(ctx, r.db, builder.Delete(vaultItemsTable).Where(entsql.EQ("question_id", questionID)))
	if err != nil {
		return false, fmt.Errorf("delete vault item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete vault item: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(s rowScanner) (*VaultItem, error) {
	var (
		item        VaultItem
		raw         []byte
		lastAttempt sql.NullTime
		masteredAt  sql.NullTime
	)
	err := s.Scan(&raw, &item.UserAnswer, &item.SavedAt, &item.Attempts, &item.CorrectAttempts,
		&lastAttempt, &item.Mastered, &masteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan vault item: %w", err)
	}
	if err := json.Unmarshal(raw, &item.Question); err != nil {
		return nil, fmt.Errorf("unmarshal vault question: %w", err)
	}
	item.LastAttempt = timeOrZero(lastAttempt)
	item.MasteredAt = timeOrZero(masteredAt)
	return &item, nil
}

func timeOrZero(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
