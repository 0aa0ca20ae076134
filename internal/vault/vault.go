// Package vault keeps missed arena questions for later review until the
// learner answers them correctly enough times.
package vault

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/store"
)

// MasteryThreshold is the number of correct attempts that retires an item.
const MasteryThreshold = 3

// DefaultRecent is the number of items shown on the dashboard.
const DefaultRecent = 3

// Item is a vaulted question.
type Item = store.VaultItem

// Stats summarizes the vault.
type Stats struct {
	Active       int
	Mastered     int
	Total        int
	TopicCounts  map[string]int
	WeakestTopic string // empty when nothing is active
}

// Vault is the weakness vault service.
type Vault struct {
	repo store.VaultRepo
	now  func() time.Time
}

// New returns a Vault over repo.
func New(repo store.VaultRepo) *Vault {
	return &Vault{repo: repo, now: time.Now}
}

// Save stores a missed question. It reports false when the question is
// already vaulted.
func (v *Vault) Save(ctx context.Context, q questionbank.Question, userAnswer int) (bool, error) {
	ok, err := v.repo.Insert(ctx, Item{
		Question:   q,
		UserAnswer: userAnswer,
		SavedAt:    v.now(),
		Attempts:   1,
	})
	if err != nil {
		return false, fmt.Errorf("save %s to vault: %w", q.ID, err)
	}
	return ok, nil
}

// Active returns unmastered items, newest first.
func (v *Vault) Active(ctx context.Context) ([]Item, error) {
	return v.repo.List(ctx, false)
}

// Count returns the number of unmastered items.
func (v *Vault) Count(ctx context.Context) (int, error) {
	items, err := v.Active(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Recent returns up to n unmastered items, newest first.
func (v *Vault) Recent(ctx context.Context, n int) ([]Item, error) {
	items, err := v.Active(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	return items, nil
}

// ByTopic returns unmastered items whose topic contains topic, ignoring case.
func (v *Vault) ByTopic(ctx context.Context, topic string) ([]Item, error) {
	items, err := v.Active(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(topic)
	return lo.Filter(items, func(it Item, _ int) bool {
		return strings.Contains(strings.ToLower(it.Question.Topic), needle)
	}), nil
}

// MarkMastered retires an item. It reports false when the ID is unknown.
func (v *Vault) MarkMastered(ctx context.Context, questionID string) (bool, error) {
	item, err := v.Get(ctx, questionID)
	if err != nil || item == nil {
		return false, err
	}
	item.Mastered = true
	item.MasteredAt = v.now()
	if err := v.repo.Update(ctx, *item); err != nil {
		return false, fmt.Errorf("mark %s mastered: %w", questionID, err)
	}
	return true, nil
}

// Remove deletes an item outright.
func (v *Vault) Remove(ctx context.Context, questionID string) (bool, error) {
	return v.repo.Delete(ctx, questionID)
}

// RecordAttempt logs a review attempt. The item is mastered once it
// reaches MasteryThreshold correct attempts. Unknown IDs are ignored.
func (v *Vault) RecordAttempt(ctx context.Context, questionID string, correct bool) (*Item, error) {
	item, err := v.Get(ctx, questionID)
	if err != nil || item == nil {
		return nil, err
	}
	now := v.now()
	item.Attempts++
	item.LastAttempt = now
	if correct {
		item.CorrectAttempts++
		if item.CorrectAttempts >= MasteryThreshold && !item.Mastered {
			item.Mastered = true
			item.MasteredAt = now
		}
	}
	if err := v.repo.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("record attempt on %s: %w", questionID, err)
	}
	return item, nil
}

// Stats counts items and finds the topic with the most active items. Ties
// go to the alphabetically first topic.
func (v *Vault) Stats(ctx context.Context) (Stats, error) {
	all, err := v.repo.List(ctx, true)
	if err != nil {
		return Stats{}, err
	}
	active := lo.Filter(all, func(it Item, _ int) bool { return !it.Mastered })
	s := Stats{
		Active:   len(active),
		Mastered: len(all) - len(active),
		Total:    len(all),
		TopicCounts: lo.CountValuesBy(active, func(it Item) string {
			return it.Question.Topic
		}),
	}

	topics := lo.Keys(s.TopicCounts)
	sort.Strings(topics)
	best := 0
	for _, t := range topics {
		if c := s.TopicCounts[t]; c > best {
			best = c
			s.WeakestTopic = t
		}
	}
	return s, nil
}

// Get returns the item for questionID, or nil when it is not vaulted.
func (v *Vault) Get(ctx context.Context, questionID string) (*Item, error) {
	item, err := v.repo.Get(ctx, questionID)
	if errors.Is(err, store.ErrVaultItemNotFound) {
		return nil, nil
	}
	return item, err
}

// RelativeTime renders t relative to now the way the dashboard shows it.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
	return t.Format("Jan 2, 2006")
}

// Truncate shortens text to max runes, adding an ellipsis.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
