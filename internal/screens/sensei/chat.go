package sensei

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	sen "github.com/abhisek/synapse/internal/sensei"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// ChatScreen runs one dialogue. The session advances as soon as a message
// is sent; the screen holds the sensei's lines back for the reply delay.
type ChatScreen struct {
	coach   *coach.Coach
	session *sen.Session
	input   components.ChatInput

	shown   int // transcript lines on screen
	waiting bool
	read    *sen.Assessment
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.BackHandler = (*ChatScreen)(nil)

// NewChat creates the dialogue screen for a started session.
func NewChat(c *coach.Coach, s *sen.Session) *ChatScreen {
	return &ChatScreen{
		coach:   c,
		session: s,
		input:   components.NewChatInput("Explain it in your own words...", 60),
		shown:   len(s.Transcript),
	}
}

func (c *ChatScreen) Init() tea.Cmd { return c.input.Init() }

func (c *ChatScreen) Title() string { return "Sensei · " + c.session.Topic.Title }

func (c *ChatScreen) HandlesBack() bool { return true }

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "End session"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.sessionID == c.session.ID {
			c.shown = max(c.shown, min(msg.upto, len(c.session.Transcript)))
			c.waiting = false
		}
		return c, nil

	case nudgeMsg:
		// A nudge is stale once the learner has spoken again.
		if msg.sessionID != c.session.ID || c.waiting || msg.count != c.session.MessageCount {
			return c, nil
		}
		if c.session.DeliverNudge(msg.text) {
			c.shown = len(c.session.Transcript)
		}
		return c, nil

	case completeMsg:
		if msg.sessionID != c.session.ID {
			return c, nil
		}
		return c, c.finish()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, c.finish()
		case "enter":
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send hands the input to the session and schedules the reveal of the
// reply, any nudge and the close of a completed session.
func (c *ChatScreen) send() tea.Cmd {
	if c.waiting || !c.session.Active() {
		return nil
	}
	text := c.input.Value()
	stage := c.session.MessageCount
	reply, err := c.session.Send(text)
	if errors.Is(err, sen.ErrEmptyMessage) {
		return nil
	}
	if err != nil {
		c.errMsg = err.Error()
		return nil
	}
	c.input.Reset()
	c.errMsg = ""

	read := sen.Assess(c.coach.Engine(), text, stage)
	c.read = &read

	// The learner line shows now; the reply after ReplyDelay.
	c.shown = len(c.session.Transcript) - 1
	c.waiting = true
	id := c.session.ID
	cmds := []tea.Cmd{after(sen.ReplyDelay, revealMsg{sessionID: id, upto: len(c.session.Transcript)})}
	if reply.Nudge != "" {
		cmds = append(cmds, after(sen.ReplyDelay+sen.NudgeDelay, nudgeMsg{sessionID: id, count: c.session.MessageCount, text: reply.Nudge}))
	}
	if reply.Completed {
		cmds = append(cmds, after(sen.ReplyDelay+sen.CompleteDelay, completeMsg{sessionID: id}))
	}
	return tea.Batch(cmds...)
}

func (c *ChatScreen) finish() tea.Cmd {
	outcome := c.coach.FinishSensei(context.Background(), c.session)
	eval := NewEvaluation(c.session, outcome)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: eval} }
}

func (c *ChatScreen) View(width, height int) string {
	sideWidth := 28
	chatWidth := max(width-sideWidth-8, 30)

	input := c.input.View(chatWidth - 2)
	status := ""
	if c.waiting {
		status = theme.Hint.Render("Sensei is thinking...")
	}
	if c.errMsg != "" {
		status = lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg)
	}

	avail := max(height-lipgloss.Height(input)-3, 1)
	log := c.renderTranscript(chatWidth, avail)
	chat := lipgloss.JoinVertical(lipgloss.Left, log, status, input)

	side := c.renderSidebar(sideWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top, chat, "  ", side)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// renderTranscript renders the visible lines, keeping the newest ones when
// they do not fit.
func (c *ChatScreen) renderTranscript(width, height int) string {
	var lines []string
	for _, m := range c.session.Transcript[:c.shown] {
		var who string
		var style lipgloss.Style
		if m.Sender == sen.SenderSensei {
			who, style = c.session.Topic.Icon+" Sensei", theme.SenseiLine
		} else {
			who, style = "You", theme.LearnerLine
		}
		block := style.Width(width).Render(lipgloss.NewStyle().Bold(true).Render(who+": ") + m.Text)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines, "\n"))
}

func (c *ChatScreen) renderSidebar(width int) string {
	s := c.session
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Understanding"))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(s.Step)/float64(max(s.Topic.Steps(), 1)), false, width-4)
	bar.Fill = theme.Success
	b.WriteString(bar.View())
	b.WriteString(theme.Hint.Render(fmt.Sprintf("\nstep %d of %d", s.Step, s.Topic.Steps())))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Clarity     %d\nDepth       %d\nEngagement  %d",
		s.Scores.Clarity, s.Scores.Depth, s.Scores.Engagement)))

	if c.read != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Last explanation"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s · quality %d", c.read.Kind, c.read.Quality)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width - 4).Render(c.read.Response))
	}
	return components.Card(b.String(), width)
}
