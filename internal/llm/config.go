package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskAnalyze  TaskType = "analyze"
	TaskOptimize TaskType = "optimize"
	TaskDelta    TaskType = "delta"
	TaskChat     TaskType = "chat"
)

// TaskConfig holds per-task sampling parameters.
type TaskConfig struct {
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint      string
	Model         string
	TimeoutMs     int
	MaxRetries    int
	ContextWindow int
	Tasks         map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Analysis and
// optimization run near-deterministic; free-form chat runs warmer.
func DefaultConfig() Config {
	return Config{
		Endpoint:      "http://localhost:11434",
		Model:         "llama3.2",
		TimeoutMs:     30000,
		MaxRetries:    0,
		ContextWindow: 131072,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalyze:  {Temperature: 0.1, TopP: 0.9, TopK: 40, MaxTokens: 1000},
			TaskOptimize: {Temperature: 0.1, TopP: 0.9, TopK: 40, MaxTokens: 2000},
			TaskDelta:    {Temperature: 0.1, TopP: 0.9, TopK: 40, MaxTokens: 512},
			TaskChat:     {Temperature: 0.7, TopP: 0.9, TopK: 40, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PROMPTSMITH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PROMPTSMITH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PROMPTSMITH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PROMPTSMITH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("PROMPTSMITH_LLM_CONTEXT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ContextWindow = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAnalyze, "PROMPTSMITH_LLM_ANALYZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskOptimize, "PROMPTSMITH_LLM_OPTIMIZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDelta, "PROMPTSMITH_LLM_DELTA_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "PROMPTSMITH_LLM_CHAT_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
