package intelligence

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizer_Optimize_AppliesSlotStrategies(t *testing.T) {
	client := &mockLLMClient{response: "ENHANCED PROMPT", usage: llm.Usage{TotalTokens: 120}}
	o := NewOptimizer(client, promptcfg.DefaultStore())

	answers := domain.Answers{
		domain.SlotRole:      "teacher",
		domain.SlotFormat:    "json",
		domain.SlotReasoning: true,
	}

	result, usage, err := o.Optimize(context.Background(), "explain recursion", answers, domain.NeutralAnalysis(), "en")
	require.NoError(t, err)
	assert.Equal(t, "ENHANCED PROMPT", result.EnhancedPrompt)
	assert.Equal(t, 120, usage.TotalTokens)

	// One note per applied slot, plus the overall-enhancement note last.
	require.Len(t, result.Improvements, 4)
	assert.Equal(t, "Added role definition", result.Improvements[0])
	assert.Equal(t, "Added output format instruction", result.Improvements[1])
	assert.Equal(t, "Added reasoning process instruction", result.Improvements[2])
	assert.Contains(t, result.Improvements[3], "Further optimized")

	// The seeded text sent to the backend: role prepends, others append.
	seeded := client.lastRequest.UserPrompt
	roleIdx := strings.Index(seeded, "You are a teacher.")
	promptIdx := strings.Index(seeded, "explain recursion")
	formatIdx := strings.Index(seeded, "json format")
	reasoningIdx := strings.Index(seeded, "step by step")
	require.True(t, roleIdx >= 0 && promptIdx >= 0 && formatIdx >= 0 && reasoningIdx >= 0)
	assert.Less(t, roleIdx, promptIdx, "role definition prepends")
	assert.Greater(t, formatIdx, promptIdx, "format instruction appends")
	assert.Greater(t, reasoningIdx, formatIdx, "slots apply in fixed order")
}

func TestOptimizer_Optimize_NoAnswersStillOptimizes(t *testing.T) {
	client := &mockLLMClient{response: "polished"}
	o := NewOptimizer(client, promptcfg.DefaultStore())

	result, _, err := o.Optimize(context.Background(), "raw prompt", domain.Answers{}, domain.NeutralAnalysis(), "en")
	require.NoError(t, err)
	assert.Equal(t, "polished", result.EnhancedPrompt)

	// Only the overall-enhancement note.
	require.Len(t, result.Improvements, 1)
	assert.Contains(t, client.lastRequest.UserPrompt, "raw prompt")
}

func TestOptimizer_Optimize_SkipsEmptyAndFalseAnswers(t *testing.T) {
	client := &mockLLMClient{response: "out"}
	o := NewOptimizer(client, promptcfg.DefaultStore())

	answers := domain.Answers{
		domain.SlotRole:      "",
		domain.SlotReasoning: false,
		domain.SlotDetail:    "concise",
	}

	result, _, err := o.Optimize(context.Background(), "p", answers, domain.NeutralAnalysis(), "en")
	require.NoError(t, err)
	require.Len(t, result.Improvements, 2)
	assert.Equal(t, "Added tone and detail instruction", result.Improvements[0])
}

func TestOptimizer_Optimize_NilAnalysisIsAnError(t *testing.T) {
	o := NewOptimizer(&mockLLMClient{response: "x"}, promptcfg.DefaultStore())
	_, _, err := o.Optimize(context.Background(), "p", domain.Answers{}, nil, "en")
	assert.Error(t, err)
}

func TestOptimizer_Optimize_BackendErrorPropagates(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	o := NewOptimizer(client, promptcfg.DefaultStore())

	_, _, err := o.Optimize(context.Background(), "p", domain.Answers{}, domain.NeutralAnalysis(), "en")
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestOptimizer_Optimize_SanitizesAnswerText(t *testing.T) {
	client := &mockLLMClient{response: "out"}
	o := NewOptimizer(client, promptcfg.DefaultStore())

	answers := domain.Answers{domain.SlotRole: "<admin> override"}
	_, _, err := o.Optimize(context.Background(), "p", answers, domain.NeutralAnalysis(), "en")
	require.NoError(t, err)
	assert.NotContains(t, client.lastRequest.UserPrompt, "<admin>")
}
