// Package stats shows lifetime progress, per-topic accuracy, the mistake
// profile and recent sensei sessions.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/diagnosis"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/screen"
	"github.com/abhisek/synapse/internal/store"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// RecentSessions is how many sensei sessions are listed.
const RecentSessions = 5

// mistakeWindow is how many recent answers feed the mistake profile.
const mistakeWindow = 200

type statsLoadedMsg struct {
	topics   []store.TopicAccuracy
	sessions []store.SenseiEvent
	mistakes map[diagnosis.Category]int
	err      error
}

// StatsScreen is the read-only progress report.
type StatsScreen struct {
	coach    *coach.Coach
	topics   []store.TopicAccuracy
	sessions []store.SenseiEvent
	mistakes map[diagnosis.Category]int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen.
func New(c *coach.Coach) *StatsScreen {
	return &StatsScreen{coach: c}
}

func (s *StatsScreen) Init() tea.Cmd {
	events := s.coach.Events()
	return func() tea.Msg { return load(context.Background(), events) }
}

func load(ctx context.Context, events store.EventRepo) statsLoadedMsg {
	topics, err := events.TopicAccuracy(ctx)
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	// Weakest first; ties by name.
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Percent() != topics[j].Percent() {
			return topics[i].Percent() < topics[j].Percent()
		}
		return topics[i].Topic < topics[j].Topic
	})

	sessions, err := events.QuerySensei(ctx, store.QueryOpts{Limit: RecentSessions})
	if err != nil {
		return statsLoadedMsg{err: err}
	}

	answers, err := events.QueryAnswers(ctx, store.QueryOpts{Limit: mistakeWindow})
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	mistakes := make(map[diagnosis.Category]int)
	for _, a := range answers {
		if a.Diagnosis != "" {
			mistakes[diagnosis.Category(a.Diagnosis)]++
		}
	}
	return statsLoadedMsg{topics: topics, sessions: sessions, mistakes: mistakes}
}

func (s *StatsScreen) Title() string { return "Stats" }

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		s.loaded = true
		if m.err != nil {
			s.errMsg = m.err.Error()
			return s, nil
		}
		s.topics, s.sessions, s.mistakes = m.topics, m.sessions, m.mistakes
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Crunching numbers...")
	}

	colWidth := max((width-10)/2, 30)
	p := s.coach.Progress()

	left := lipgloss.JoinVertical(lipgloss.Left,
		components.TitledCard("Progress", renderProgress(p, colWidth-8), colWidth),
		components.TitledCard("Oracle", renderOracle(p.Oracle), colWidth),
		components.TitledCard("Mistake profile", s.renderMistakes(), colWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.TitledCard("Topic accuracy", s.renderTopics(colWidth-8), colWidth),
		components.TitledCard("Recent sensei sessions", s.renderSessions(), colWidth),
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func renderProgress(p progression.Progress, width int) string {
	bar := components.NewProgressBar(fmt.Sprintf("LV %d", p.Level), progression.LevelProgress(p.XP), true, width)
	bar.Fill = theme.XP
	lines := []string{
		bar.View(),
		fmt.Sprintf("%d XP  ·  %d to next level", p.XP, progression.XPToNextLevel(p.XP)),
		fmt.Sprintf("🧠 %d brain cells  ·  🌌 %d dark matter", p.BrainCells, p.DarkMatter),
		fmt.Sprintf("🔥 %d day streak  ·  %d hours studied", p.Stats.Streak, p.Stats.HoursStudied()),
		fmt.Sprintf("%d questions  ·  %d correct  ·  %d%% accuracy",
			p.Stats.TotalQuestions, p.Stats.CorrectAnswers, p.Stats.Accuracy),
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func renderOracle(o progression.Oracle) string {
	return theme.Body.Render(fmt.Sprintf("Predicted %d  ·  Target %d\n%d%% on track  ·  %d days left",
		o.PredictedScore, o.TargetScore, o.Probability, o.DaysLeft))
}

func (s *StatsScreen) renderTopics(width int) string {
	if len(s.topics) == 0 {
		return theme.Hint.Render("No arena answers yet.")
	}
	var lines []string
	for _, t := range s.topics {
		label := fmt.Sprintf("%-16s", t.Topic)
		bar := components.NewProgressBar(label, t.Percent()/100, true, width)
		switch {
		case t.Percent() >= 80:
			bar.Fill = theme.Success
		case t.Percent() >= 60:
			bar.Fill = theme.Warning
		default:
			bar.Fill = theme.Error
		}
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderMistakes() string {
	total := 0
	for _, n := range s.mistakes {
		total += n
	}
	if total == 0 {
		return theme.Hint.Render("No mistakes on record.")
	}
	var lines []string
	for _, mt := range diagnosis.AllMistakeTypes() {
		n := s.mistakes[mt.Category]
		if n == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-18s %3d  %s", mt.Name, n,
			theme.Hint.Render(fmt.Sprintf("%.0f%%", float64(n)/float64(total)*100))))
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func (s *StatsScreen) renderSessions() string {
	if len(s.sessions) == 0 {
		return theme.Hint.Render("No sessions yet. Teach the Sensei!")
	}
	var lines []string
	for _, ev := range s.sessions {
		grade := theme.GradeColor(gradeClass(ev.Grade)).Render(ev.Grade)
		lines = append(lines, fmt.Sprintf("%s  %s  %-12s %3.0f%%  +%d XP",
			ev.Timestamp.Format("Jan 02"), grade, ev.TopicID, ev.Percentage, ev.XP))
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func gradeClass(grade string) string {
	switch grade {
	case "A":
		return "excellent"
	case "B":
		return "good"
	}
	return "needs-work"
}
