package flow

import (
	"strings"
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnalysisContent(t *testing.T) {
	a := &domain.AnalysisResult{
		CompletenessScore: 7, ClarityScore: 4, StructureScore: 8, SpecificityScore: 6,
		PromptType: "creative", ComplexityLevel: "medium",
	}

	en := formatAnalysisContent(a, "en")
	assert.Contains(t, en, "Completeness: 7/10")
	assert.Contains(t, en, "Clarity: 4/10")
	assert.Contains(t, en, "Prompt type: creative")

	zh := formatAnalysisContent(a, "zh_TW")
	assert.Contains(t, zh, "完整性: 7/10")
}

func TestFormatQuestionsContent(t *testing.T) {
	questions := []domain.Question{
		{Question: "What role should the AI take?"},
		{Question: "What output format do you want?"},
	}

	got := formatQuestionsContent(questions, "en")
	assert.Contains(t, got, "1. What role should the AI take?")
	assert.Contains(t, got, "2. What output format do you want?")

	empty := formatQuestionsContent(nil, "en")
	assert.Equal(t, "Nothing needs clarifying; ready to optimize.", empty)
}

func TestFormatAnswersContent(t *testing.T) {
	answers := domain.Answers{"role": "teacher", "reasoning": true, "format": "json"}

	got := formatAnswersContent(answers, "en")
	assert.Contains(t, got, "My answers:")
	assert.Contains(t, got, "- role: teacher")
	assert.Contains(t, got, "- reasoning: true")

	// Keys render in sorted order regardless of map iteration.
	assert.Less(t, strings.Index(got, "- format:"), strings.Index(got, "- role:"))
}

func TestLabelFallsBackToDefaultLanguage(t *testing.T) {
	assert.Equal(t, label("analysis_title", "zh_TW"), label("analysis_title", "ko"))
}
