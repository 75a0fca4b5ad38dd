package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)

	// Structured tasks run near-deterministic, chat runs warmer.
	assert.InDelta(t, 0.1, cfg.Tasks[TaskAnalyze].Temperature, 0.001)
	assert.InDelta(t, 0.1, cfg.Tasks[TaskOptimize].Temperature, 0.001)
	assert.InDelta(t, 0.7, cfg.Tasks[TaskChat].Temperature, 0.001)

	assert.Equal(t, 1000, cfg.Tasks[TaskAnalyze].MaxTokens)
	assert.Equal(t, 2000, cfg.Tasks[TaskOptimize].MaxTokens)
	assert.Equal(t, 512, cfg.Tasks[TaskDelta].MaxTokens)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PROMPTSMITH_LLM_ENDPOINT", "http://example.com:9999")
	t.Setenv("PROMPTSMITH_LLM_MODEL", "qwen2.5")
	t.Setenv("PROMPTSMITH_LLM_TIMEOUT_MS", "5000")
	t.Setenv("PROMPTSMITH_LLM_MAX_RETRIES", "2")
	t.Setenv("PROMPTSMITH_LLM_ANALYZE_TIMEOUT_MS", "1234")

	cfg := LoadConfig()
	assert.Equal(t, "http://example.com:9999", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskAnalyze))
	assert.Equal(t, 5000, cfg.TaskTimeout(TaskOptimize))
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("PROMPTSMITH_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("PROMPTSMITH_LLM_MAX_RETRIES", "-1")

	cfg := LoadConfig()
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskChat))

	tc := cfg.Tasks[TaskChat]
	tc.TimeoutMs = 750
	cfg.Tasks[TaskChat] = tc
	assert.Equal(t, 750, cfg.TaskTimeout(TaskChat))
}
