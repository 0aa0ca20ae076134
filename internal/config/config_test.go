package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SYNAPSE_DB", "SYNAPSE_LOG_LEVEL", "SYNAPSE_TARGET_SCORE", "SYNAPSE_LLM_PROVIDER",
		"SYNAPSE_ANTHROPIC_API_KEY", "SYNAPSE_OPENAI_API_KEY", "SYNAPSE_GEMINI_API_KEY",
		"SYNAPSE_OPENROUTER_API_KEY", "SYNAPSE_OPENAI_BASE_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 1500, cfg.Oracle.TargetScore)
	assert.Equal(t, 90, cfg.Arena.SecondsPerQuestion)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
oracle:
  target_score: 1400
arena:
  hint_cost: 5
llm:
  provider: gemini
  gemini:
    api_key: g-key
  retry:
    initial_wait: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1400, cfg.Oracle.TargetScore)
	assert.Equal(t, 45, cfg.Oracle.DaysLeft)
	assert.Equal(t, 5, cfg.Arena.HintCost)
	assert.Equal(t, 25, cfg.Arena.WagerCost)

	l := cfg.LLMSettings()
	assert.Equal(t, "gemini", l.Provider)
	assert.Equal(t, "g-key", l.Gemini.APIKey)
	assert.Equal(t, "gemini-flash", l.Gemini.Model)
	assert.Equal(t, 250*time.Millisecond, l.Retry.InitialWait)
	assert.Equal(t, 3, l.Retry.MaxAttempts)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("oracle: [unclosed"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYNAPSE_DB", "/tmp/s.db")
	t.Setenv("SYNAPSE_LOG_LEVEL", "debug")
	t.Setenv("SYNAPSE_TARGET_SCORE", "1550")
	t.Setenv("SYNAPSE_LLM_PROVIDER", "openai")
	t.Setenv("SYNAPSE_OPENAI_API_KEY", "sk-test")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/tmp/s.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1550, cfg.Oracle.TargetScore)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
}

func TestEnvOverrides_BadTargetIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYNAPSE_TARGET_SCORE", "lots")
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, 1500, cfg.Oracle.TargetScore)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "dir", "config.yaml")
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	cfg.Arena.QuestionsPerRun = 10
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestArenaOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.ArenaOptions(true)
	assert.True(t, opts.Wager)
	assert.Equal(t, 5, opts.Questions)
	assert.Equal(t, 10, opts.HintCost)
}

func TestLLMSettings_BadDurationFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Timeout = "soon"
	assert.Equal(t, 30*time.Second, cfg.LLMSettings().Timeout)
}
