package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/llm"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/store"
)

// ErrNothingGenerated is returned when every question in a batch was
// rejected.
var ErrNothingGenerated = errors.New("no usable questions generated")

// Generator turns LLM batches into stored bank questions.
type Generator struct {
	provider llm.Provider
	bank     *questionbank.Bank
	repo     store.QuestionRepo
	config   Config
	logger   *zap.Logger
}

// New creates a Generator. A nil logger discards logs.
func New(provider llm.Provider, bank *questionbank.Bank, repo store.QuestionRepo, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, bank: bank, repo: repo, config: cfg, logger: logger}
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Topic       string   `json:"topic"`
	Difficulty  int      `json:"difficulty"`
	Question    string   `json:"question"`
	Passage     string   `json:"passage"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Generate requests one batch, validates it, drops duplicates and stores
// the rest. Rejections are reported in the result, not as an error, unless
// nothing survived.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if _, err := questionbank.ParseCategory(string(input.Category)); err != nil {
		return nil, err
	}
	input.Count = min(max(input.Count, 1), MaxBatch)
	if len(input.Topics) == 0 {
		input.Topics = g.bank.Topics(input.Category)
	}
	if len(input.PriorQuestions) == 0 {
		for _, q := range g.bank.All(input.Category) {
			input.PriorQuestions = append(input.PriorQuestions, q.Text)
		}
	}

	req := llm.UserPrompt(systemPrompt, buildUserMessage(input, g.config))
	req.Schema = BatchSchema
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeQuestionGen), req)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}

	result := &Result{}
	for _, raw := range out.Questions {
		q := questionbank.Question{
			ID:          "gen-" + uuid.NewString()[:8],
			Category:    input.Category,
			Topic:       strings.TrimSpace(raw.Topic),
			Difficulty:  raw.Difficulty,
			Text:        strings.TrimSpace(raw.Question),
			Options:     trimAll(raw.Options),
			Correct:     raw.Correct,
			Explanation: strings.TrimSpace(raw.Explanation),
			Passage:     strings.TrimSpace(raw.Passage),
		}

		if err := g.accept(ctx, &q, input); err != nil {
			g.logger.Debug("generated question rejected", zap.String("text", q.Text), zap.Error(err))
			result.Rejected = append(result.Rejected, Rejection{Text: q.Text, Reason: err})
			continue
		}
		result.Added = append(result.Added, q)
	}

	g.logger.Info("question batch generated",
		zap.String("category", string(input.Category)),
		zap.Int("requested", input.Count),
		zap.Int("added", len(result.Added)),
		zap.Int("rejected", len(result.Rejected)),
	)
	if len(result.Added) == 0 {
		return result, ErrNothingGenerated
	}
	return result, nil
}

// accept validates q, persists it and adds it to the bank.
func (g *Generator) accept(ctx context.Context, q *questionbank.Question, input GenerateInput) error {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	if g.bank.Contains(q.Text) {
		return questionbank.ErrDuplicateQuestion
	}
	if _, err := g.repo.Save(ctx, *q); err != nil {
		return fmt.Errorf("store question: %w", err)
	}
	return g.bank.Add(*q)
}

// LoadStored adds every stored generated question to bank and returns how
// many were added. Questions already present are skipped.
func LoadStored(ctx context.Context, repo store.QuestionRepo, bank *questionbank.Bank) (int, error) {
	qs, err := repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load generated questions: %w", err)
	}
	added := 0
	for _, q := range qs {
		err := bank.Add(q)
		switch {
		case err == nil:
			added++
		case errors.Is(err, questionbank.ErrDuplicateQuestion):
		default:
			return added, err
		}
	}
	return added, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
