// Package config loads the YAML settings file and applies environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/llm"
	"github.com/abhisek/synapse/internal/progression"
)

// Config is the full settings file.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Oracle   OracleConfig   `yaml:"oracle"`
	Arena    ArenaConfig    `yaml:"arena"`
	LLM      LLMConfig      `yaml:"llm"`
}

// DatabaseConfig locates the SQLite file. Empty means the default data dir.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: next to the database
}

// OracleConfig seeds the score projection for a new learner.
type OracleConfig struct {
	TargetScore int `yaml:"target_score"`
	DaysLeft    int `yaml:"days_left"`
}

// ArenaConfig tunes arena runs.
type ArenaConfig struct {
	QuestionsPerRun    int `yaml:"questions_per_run"`
	SecondsPerQuestion int `yaml:"seconds_per_question"`
	WagerCost          int `yaml:"wager_cost"`
	HintCost           int `yaml:"hint_cost"`
}

// ProviderConfig holds one provider's credentials.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// RetryConfig mirrors llm.RetryConfig with string durations.
type RetryConfig struct {
	MaxAttempts int     `yaml:"max_attempts"`
	InitialWait string  `yaml:"initial_wait"`
	MaxWait     string  `yaml:"max_wait"`
	Multiplier  float64 `yaml:"multiplier"`
}

// LLMConfig configures question generation.
type LLMConfig struct {
	Provider   string         `yaml:"provider"`
	Timeout    string         `yaml:"timeout"`
	Anthropic  ProviderConfig `yaml:"anthropic"`
	OpenAI     ProviderConfig `yaml:"openai"`
	Gemini     ProviderConfig `yaml:"gemini"`
	OpenRouter ProviderConfig `yaml:"openrouter"`
	Retry      RetryConfig    `yaml:"retry"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	l := llm.DefaultConfig()
	opts := arena.DefaultOptions()
	return &Config{
		Log: LogConfig{Level: "info"},
		Oracle: OracleConfig{
			TargetScore: progression.DefaultTargetScore,
			DaysLeft:    progression.DefaultDaysLeft,
		},
		Arena: ArenaConfig{
			QuestionsPerRun:    opts.Questions,
			SecondsPerQuestion: opts.SecondsPerQuestion,
			WagerCost:          opts.WagerCost,
			HintCost:           opts.HintCost,
		},
		LLM: LLMConfig{
			Provider:   l.Provider,
			Timeout:    l.Timeout.String(),
			Anthropic:  ProviderConfig{Model: l.Anthropic.Model},
			OpenAI:     ProviderConfig{Model: l.OpenAI.Model},
			Gemini:     ProviderConfig{Model: l.Gemini.Model},
			OpenRouter: ProviderConfig{Model: l.OpenRouter.Model, BaseURL: l.OpenRouter.BaseURL},
			Retry: RetryConfig{
				MaxAttempts: l.Retry.MaxAttempts,
				InitialWait: l.Retry.InitialWait.String(),
				MaxWait:     l.Retry.MaxWait.String(),
				Multiplier:  l.Retry.Multiplier,
			},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/synapse/config.yaml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "synapse", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("SYNAPSE_DB"); p != "" {
		c.Database.Path = p
	}
	if l := os.Getenv("SYNAPSE_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
	if v, err := strconv.Atoi(os.Getenv("SYNAPSE_TARGET_SCORE")); err == nil && v > 0 {
		c.Oracle.TargetScore = v
	}

	if p := os.Getenv("SYNAPSE_LLM_PROVIDER"); p != "" {
		c.LLM.Provider = p
	}
	keys := []struct {
		env string
		dst *string
	}{
		{"SYNAPSE_ANTHROPIC_API_KEY", &c.LLM.Anthropic.APIKey},
		{"SYNAPSE_OPENAI_API_KEY", &c.LLM.OpenAI.APIKey},
		{"SYNAPSE_GEMINI_API_KEY", &c.LLM.Gemini.APIKey},
		{"SYNAPSE_OPENROUTER_API_KEY", &c.LLM.OpenRouter.APIKey},
		{"SYNAPSE_OPENAI_BASE_URL", &c.LLM.OpenAI.BaseURL},
	}
	for _, k := range keys {
		if v := os.Getenv(k.env); v != "" {
			*k.dst = v
		}
	}
}

// ArenaOptions converts the arena section. wager is chosen per run.
func (c *Config) ArenaOptions(wager bool) arena.Options {
	return arena.Options{
		Wager:              wager,
		Questions:          c.Arena.QuestionsPerRun,
		SecondsPerQuestion: c.Arena.SecondsPerQuestion,
		WagerCost:          c.Arena.WagerCost,
		HintCost:           c.Arena.HintCost,
	}
}

// LLMSettings converts the llm section, keeping defaults for anything
// unparsable.
func (c *Config) LLMSettings() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Timeout = parseDuration(c.LLM.Timeout, out.Timeout)

	out.Anthropic = llm.AnthropicConfig{APIKey: c.LLM.Anthropic.APIKey, Model: orDefault(c.LLM.Anthropic.Model, out.Anthropic.Model)}
	out.OpenAI = llm.OpenAIConfig{APIKey: c.LLM.OpenAI.APIKey, Model: orDefault(c.LLM.OpenAI.Model, out.OpenAI.Model), BaseURL: c.LLM.OpenAI.BaseURL}
	out.Gemini = llm.GeminiConfig{APIKey: c.LLM.Gemini.APIKey, Model: orDefault(c.LLM.Gemini.Model, out.Gemini.Model)}
	out.OpenRouter = llm.OpenAIConfig{
		APIKey:  c.LLM.OpenRouter.APIKey,
		Model:   orDefault(c.LLM.OpenRouter.Model, out.OpenRouter.Model),
		BaseURL: orDefault(c.LLM.OpenRouter.BaseURL, out.OpenRouter.BaseURL),
	}

	if c.LLM.Retry.MaxAttempts > 0 {
		out.Retry.MaxAttempts = c.LLM.Retry.MaxAttempts
	}
	if c.LLM.Retry.Multiplier > 0 {
		out.Retry.Multiplier = c.LLM.Retry.Multiplier
	}
	out.Retry.InitialWait = parseDuration(c.LLM.Retry.InitialWait, out.Retry.InitialWait)
	out.Retry.MaxWait = parseDuration(c.LLM.Retry.MaxWait, out.Retry.MaxWait)
	return out
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
