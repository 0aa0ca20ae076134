package questionbank

import (
	"fmt"
	"sync"

	"github.com/abhisek/synapse/internal/pick"
)

// Bank is an in-memory question index. Safe for concurrent use.
type Bank struct {
	mu     sync.RWMutex
	byID   map[string]*Question
	byCat  map[Category][]*Question
	texts  map[string]string // normalized text -> id
	custom int
}

// New returns a bank seeded with the built-in questions.
func New() *Bank {
	b := &Bank{
		byID:  make(map[string]*Question),
		byCat: make(map[Category][]*Question),
		texts: make(map[string]string),
	}
	for i := range builtin {
		q := builtin[i]
		b.insert(&q)
	}
	return b
}

func (b *Bank) insert(q *Question) {
	b.byID[q.ID] = q
	b.byCat[q.Category] = append(b.byCat[q.Category], q)
	b.texts[normalizeText(q.Text)] = q.ID
}

// Add validates q and appends it. Questions whose ID or normalized text is
// already present are rejected with ErrDuplicateQuestion.
func (b *Bank) Add(q Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("add question: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.byID[q.ID]; ok {
		return fmt.Errorf("add question %s: %w", q.ID, ErrDuplicateQuestion)
	}
	if id, ok := b.texts[normalizeText(q.Text)]; ok {
		return fmt.Errorf("add question %s: same text as %s: %w", q.ID, id, ErrDuplicateQuestion)
	}
	b.insert(&q)
	b.custom++
	return nil
}

// Contains reports whether a question with the same normalized text exists.
func (b *Bank) Contains(text string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.texts[normalizeText(text)]
	return ok
}

// ByID returns the question with the given ID.
func (b *Bank) ByID(id string) (Question, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	q, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("lookup %q: %w", id, ErrQuestionNotFound)
	}
	return *q, nil
}

// Sample returns up to n questions from category in random order. An unknown
// or empty category yields an empty slice.
func (b *Bank) Sample(category Category, n int, src pick.Source) []Question {
	b.mu.RLock()
	pool := make([]Question, 0, len(b.byCat[category]))
	for _, q := range b.byCat[category] {
		pool = append(pool, *q)
	}
	b.mu.RUnlock()

	shuffled := pick.Shuffle(src, pool)
	if n < len(shuffled) {
		shuffled = shuffled[:max(n, 0)]
	}
	return shuffled
}

// ByDifficulty returns the questions in category at the given difficulty.
func (b *Bank) ByDifficulty(category Category, difficulty int) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Question
	for _, q := range b.byCat[category] {
		if q.Difficulty == difficulty {
			out = append(out, *q)
		}
	}
	return out
}

// All returns every question in category in insertion order.
func (b *Bank) All(category Category) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Question, 0, len(b.byCat[category]))
	for _, q := range b.byCat[category] {
		out = append(out, *q)
	}
	return out
}

// Count returns the number of questions in category.
func (b *Bank) Count(category Category) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byCat[category])
}

// CustomCount returns how many questions were added beyond the built-ins.
func (b *Bank) CustomCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.custom
}

// Topics returns the distinct topics in category in first-seen order.
func (b *Bank) Topics(category Category) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.byCat[category] {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			out = append(out, q.Topic)
		}
	}
	return out
}
