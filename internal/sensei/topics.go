// Package sensei runs the teach-back dialogue: the learner explains a topic
// to a skeptical student who only advances when the explanation hits the
// next scripted idea.
package sensei

import (
	"errors"
	"fmt"
)

// ErrUnknownTopic is returned when a topic ID is not registered.
var ErrUnknownTopic = errors.New("unknown sensei topic")

// FollowUp is one scripted step. Any trigger appearing in the learner's
// message (case-insensitive substring) satisfies the step.
type FollowUp struct {
	Triggers []string
	Response string
}

// Criteria holds the keyword sets for each scoring dimension.
type Criteria struct {
	Clarity    []string
	Depth      []string
	Engagement []string
}

// Size returns the combined number of keywords across dimensions.
func (c Criteria) Size() int {
	return len(c.Clarity) + len(c.Depth) + len(c.Engagement)
}

// Dimensions returns the keyword sets keyed by dimension name.
func (c Criteria) Dimensions() map[string][]string {
	return map[string][]string{
		DimensionClarity:    c.Clarity,
		DimensionDepth:      c.Depth,
		DimensionEngagement: c.Engagement,
	}
}

// Topic is a scripted dialogue.
type Topic struct {
	ID         string
	Title      string
	Icon       string
	Opening    string
	FollowUps  []FollowUp
	Resistance []string
	Criteria   Criteria
}

// Steps returns the number of follow-up steps.
func (t *Topic) Steps() int { return len(t.FollowUps) }

// Topics returns all built-in topics in menu order.
func Topics() []Topic {
	out := make([]Topic, len(builtinTopics))
	copy(out, builtinTopics)
	return out
}

// LookupTopic returns the topic with the given ID.
func LookupTopic(id string) (*Topic, error) {
	for i := range builtinTopics {
		if builtinTopics[i].ID == id {
			t := builtinTopics[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("topic %q: %w", id, ErrUnknownTopic)
}
