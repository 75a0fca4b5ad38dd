package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_Success(t *testing.T) {
	var buf strings.Builder
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{
		Task:        TaskAnalyze,
		Model:       "llama3.2",
		LatencyMs:   120,
		TotalTokens: 42,
		Success:     true,
	})

	out := buf.String()
	assert.Contains(t, out, "task=analyze")
	assert.Contains(t, out, "model=llama3.2")
	assert.Contains(t, out, "tokens=42")
	assert.Contains(t, out, "status=ok")
}

func TestLogObserver_Failure(t *testing.T) {
	var buf strings.Builder
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{
		Task:      TaskOptimize,
		Success:   false,
		ErrorCode: "TIMEOUT",
	})

	assert.Contains(t, buf.String(), "status=err:TIMEOUT")
}
