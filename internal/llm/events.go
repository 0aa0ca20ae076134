package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/store"
)

// RecordingProvider appends an LLM request event for every call.
type RecordingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	logger   *zap.Logger
}

// WithRecording wraps p so each Generate call is stored under providerName.
// Failures to store the event are logged and never fail the call.
func WithRecording(p Provider, providerName string, events store.EventRepo, logger *zap.Logger) Provider {
	return &RecordingProvider{inner: p, provider: providerName, events: events, logger: logger}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  r.provider,
		Model:     r.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	r.logger.Debug("llm request",
		zap.String("provider", data.Provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Bool("success", data.Success),
	)
	if logErr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		r.logger.Warn("record llm request event", zap.Error(logErr))
	}
	return resp, err
}

func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }
