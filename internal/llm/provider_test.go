package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_RepliesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"a":1}`), Usage: newUsage(10, 5)},
		MockReply{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("sys", "first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.TotalTokens != 15 {
		t.Fatalf("expected 15 total tokens, got %d", resp1.Usage.TotalTokens)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("sys", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}

	calls := mock.Calls()
	if len(calls) != 2 || calls[1].Messages[0].Content != "second" {
		t.Fatalf("unexpected recorded calls: %+v", calls)
	}
	if mock.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", mock.Pending())
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"name": "Ada"}))
	req := UserPrompt("", "x")
	req.Schema = testSchema()

	_, err := mock.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.Pending() != 1 {
		t.Fatal("expected the reply to stay queued")
	}
}

func TestFinish_MaxTokensWithoutSchemaIsKept(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage("partial"), Usage{}, "m", "max_tokens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Fatalf("unexpected stop reason %q", resp.StopReason)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing key error")
	}
	cfg.Anthropic.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown provider error")
	}
	cfg.Provider = ProviderMock
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}
}

func TestDiscover(t *testing.T) {
	for _, env := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}
	t.Setenv("GEMINI_API_KEY", "gk")

	cfg := DefaultConfig()
	if !Discover(&cfg) {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "gk" {
		t.Fatalf("unexpected discovery result: %s %q", cfg.Provider, cfg.Gemini.APIKey)
	}
	if Discover(&cfg) {
		t.Fatal("expected no change once a key is configured")
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != PurposeUnknown {
		t.Fatalf("expected %q, got %q", PurposeUnknown, got)
	}
	ctx := WithPurpose(context.Background(), PurposeQuestionGen)
	if got := PurposeFrom(ctx); got != PurposeQuestionGen {
		t.Fatalf("expected %q, got %q", PurposeQuestionGen, got)
	}
}
