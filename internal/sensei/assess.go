package sensei

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/synapse/internal/feedback"
)

// AssessmentKind is how the sensei reacts to a free-form explanation.
type AssessmentKind string

const (
	AssessAccept AssessmentKind = "accept"
	AssessProbe  AssessmentKind = "probe"
	AssessResist AssessmentKind = "resist"
)

var (
	exampleRe   = regexp.MustCompile(`example|like|suppose|imagine|if we|let's say`)
	reasoningRe = regexp.MustCompile(`because|since|therefore|so that|which means|the reason`)
	stepsRe     = regexp.MustCompile(`first|then|next|finally|step`)
)

// Assessment is the result of judging one explanation.
type Assessment struct {
	Kind     AssessmentKind
	Quality  int
	Response string
}

// Quality scores an explanation: +2 for an example, +2 for reasoning, +1 for
// ordered steps, +1 past 100 characters and +1 more past 200.
func Quality(explanation string) int {
	lower := strings.ToLower(explanation)
	q := 0
	if exampleRe.MatchString(lower) {
		q += 2
	}
	if reasoningRe.MatchString(lower) {
		q += 2
	}
	if stepsRe.MatchString(lower) {
		q++
	}
	n := utf8.RuneCountInString(explanation)
	if n > 100 {
		q++
	}
	if n > 200 {
		q++
	}
	return q
}

// Assess judges a free-form explanation given how many exchanges deep the
// dialogue is. Later stages accept a slightly weaker explanation.
func Assess(e *feedback.Engine, explanation string, stage int) Assessment {
	q := Quality(explanation)
	lower := strings.ToLower(explanation)

	switch {
	case q >= 4 || (q >= 3 && stage >= 2):
		highlight := "your clear explanation"
		switch {
		case exampleRe.MatchString(lower):
			highlight = "that concrete example"
		case reasoningRe.MatchString(lower):
			highlight = `connecting the "why"`
		case stepsRe.MatchString(lower):
			highlight = "breaking it into steps"
		}
		text, _ := e.Render(feedback.PoolSenseiAccept, map[string]string{"highlight": highlight})
		return Assessment{Kind: AssessAccept, Quality: q, Response: text}
	case q >= 2:
		text, _ := e.Render(feedback.PoolSenseiProbe, nil)
		return Assessment{Kind: AssessProbe, Quality: q, Response: text}
	default:
		text, _ := e.Render(feedback.PoolSenseiResist, nil)
		return Assessment{Kind: AssessResist, Quality: q, Response: text}
	}
}

// LogKind marks a comprehension log entry as praise or a warning.
type LogKind string

const (
	LogSuccess LogKind = "success"
	LogWarning LogKind = "warning"
)

// LogEntry is one line of the comprehension log.
type LogEntry struct {
	Kind LogKind
	Text string
}

var (
	logExampleRe   = regexp.MustCompile(`example|like|suppose|imagine`)
	logReasoningRe = regexp.MustCompile(`because|since|therefore|so`)
	logVagueRe     = regexp.MustCompile(`just|simply|basically|obviously`)
	logRuleRe      = regexp.MustCompile(`formula|equation|rule`)
	logWhyRe       = regexp.MustCompile(`why|because`)
)

// BriefMessageChars is the length under which a message is flagged as brief.
const BriefMessageChars = 50

// ComprehensionLog reviews the learner's lines in a transcript and reports
// what helped and what was missing.
func ComprehensionLog(transcript []Message) []LogEntry {
	var log []LogEntry
	successes := 0
	add := func(kind LogKind, text string) {
		if kind == LogSuccess {
			successes++
		}
		log = append(log, LogEntry{Kind: kind, Text: text})
	}

	for _, m := range transcript {
		if m.Sender != SenderLearner {
			continue
		}
		lower := strings.ToLower(m.Text)
		if logExampleRe.MatchString(lower) {
			add(LogSuccess, "User provided a concrete example. Understanding improved.")
		}
		if logReasoningRe.MatchString(lower) {
			add(LogSuccess, "User explained the reasoning, not just the steps.")
		}
		if utf8.RuneCountInString(m.Text) < BriefMessageChars {
			add(LogWarning, "Response was brief. I needed more detail to fully grasp it.")
		}
		if logVagueRe.MatchString(lower) {
			add(LogWarning, "User used vague qualifiers. Deeper explanation needed.")
		}
		if logRuleRe.MatchString(lower) && !logWhyRe.MatchString(lower) {
			add(LogWarning, "User stated a rule without explaining why it works.")
		}
	}

	if successes >= 2 {
		log = append(log, LogEntry{Kind: LogSuccess, Text: "Overall: Explanation was methodical and clear. Mastery demonstrated."})
	}
	return log
}
