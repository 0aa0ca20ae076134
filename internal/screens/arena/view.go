package arena

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	ar "github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/theme"
)

func (s *RunScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.run.Current()

	var b strings.Builder
	b.WriteString(s.renderStatusBar(cw))
	b.WriteString("\n\n")

	if q.Passage != "" {
		passage := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw - 6).Render(q.Passage)
		b.WriteString(components.Card(passage, cw))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(cw))

	if s.last != nil {
		b.WriteString("\n")
		b.WriteString(renderFeedback(*s.last, cw))
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Padding(1, 3).Render(b.String())
}

// renderStatusBar shows progress, topic, difficulty, the clock and the
// wager badge on one line.
func (s *RunScreen) renderStatusBar(cw int) string {
	q := s.run.Current()
	left := fmt.Sprintf("Q %d/%d  ·  %s  ·  %s  %s",
		s.run.Index+1, len(s.run.Questions),
		s.run.Category.DisplayName(), q.Topic, difficultyDots(q.Difficulty))

	clock := clockStyle(ar.UrgencyFor(s.run.TimeRemaining)).Render("⏱ " + ar.FormatClock(s.run.TimeRemaining))
	right := clock
	if s.run.Wager {
		right = lipgloss.NewStyle().Foreground(theme.BrainCell).Bold(true).Render("×2 WAGER") + "   " + clock
	}
	score := theme.Hint.Render(fmt.Sprintf("   ✓%d ✗%d", s.run.Correct, s.run.Wrong))

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(score)-lipgloss.Width(right), 1)
	return theme.Body.Render(left) + score + strings.Repeat(" ", gap) + right
}

func clockStyle(u ar.Urgency) lipgloss.Style {
	switch u {
	case ar.UrgencyDanger:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Underline(true)
	case ar.UrgencyWarning:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Primary)
}

func difficultyDots(d int) string {
	return strings.Repeat("●", d) + strings.Repeat("○", max(5-d, 0))
}

// renderFeedback shows the coach's reply and, for a wrong answer, the named
// mistake.
func renderFeedback(res ar.AnswerResult, cw int) string {
	var head string
	switch {
	case res.Correct:
		head = theme.Correct.Render("✓ Correct")
	case res.Reply.Timeout:
		head = theme.Incorrect.Render("⏱ Time's up")
	default:
		head = theme.Incorrect.Render("✗ Not quite")
		if d := res.Reply.Diagnosis; d != nil {
			if mt := d.Type(); mt != nil {
				head += theme.Hint.Render("  " + mt.Name)
			}
		}
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(res.Reply.Text)
	return components.Card(head+"\n"+body, cw)
}
