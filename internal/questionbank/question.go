// Package questionbank holds the multiple-choice SAT questions served by the
// arena, the built-in set plus any stored generated ones.
package questionbank

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a question section.
type Category string

const (
	CategoryMath    Category = "math"
	CategoryReading Category = "reading"
	CategoryWriting Category = "writing"
)

// Categories lists every section in display order.
func Categories() []Category {
	return []Category{CategoryMath, CategoryReading, CategoryWriting}
}

// DisplayName returns the arena label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMath:
		return "Math: Mixed"
	case CategoryReading:
		return "Reading Comprehension"
	case CategoryWriting:
		return "Writing & Grammar"
	}
	return string(c)
}

// ParseCategory accepts a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Question is a single multiple-choice item.
type Question struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Topic       string   `json:"topic"`
	Difficulty  int      `json:"difficulty"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Passage     string   `json:"passage,omitempty"`
}

// Letter returns the A/B/C/D label for an option index.
func Letter(i int) string {
	if i < 0 || i > 25 {
		return "?"
	}
	return string(rune('A' + i))
}

var (
	// ErrQuestionNotFound is returned when an ID has no matching question.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrDuplicateQuestion is returned when adding a question already in the bank.
	ErrDuplicateQuestion = errors.New("duplicate question")
)

// Validate checks that the question can be served.
func (q *Question) Validate() error {
	switch {
	case q.ID == "":
		return errors.New("question id is empty")
	case strings.TrimSpace(q.Text) == "":
		return errors.New("question text is empty")
	case len(q.Options) < 2:
		return fmt.Errorf("question %s: need at least 2 options, got %d", q.ID, len(q.Options))
	case q.Correct < 0 || q.Correct >= len(q.Options):
		return fmt.Errorf("question %s: correct index %d out of range", q.ID, q.Correct)
	case q.Difficulty < 1 || q.Difficulty > 5:
		return fmt.Errorf("question %s: difficulty %d not in 1-5", q.ID, q.Difficulty)
	}
	return nil
}

// normalizeText folds case and whitespace for duplicate detection.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
