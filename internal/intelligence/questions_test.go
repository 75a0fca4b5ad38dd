package intelligence

import (
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionGenerator_WeakPromptTriggersAll(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	analysis := &domain.AnalysisResult{
		CompletenessScore: 3, ClarityScore: 3, StructureScore: 3, SpecificityScore: 3,
		ComplexityLevel: "medium",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	require.Len(t, questions, 5)

	// Sorted by priority, highest first.
	for i := 1; i < len(questions); i++ {
		assert.GreaterOrEqual(t, questions[i-1].Priority, questions[i].Priority)
	}
	assert.Equal(t, domain.SlotRole, questions[0].Type)
	assert.Equal(t, domain.SlotReasoning, questions[4].Type)
	assert.Equal(t, domain.InputBool, questions[4].Input)
}

func TestQuestionGenerator_StrongPromptAsksNothing(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	analysis := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 9, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	assert.Empty(t, questions, "an empty question list is a normal outcome")
}

func TestQuestionGenerator_SelectiveTrigger(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	// Only clarity is weak: only the detail question fires.
	analysis := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 4, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, domain.SlotDetail, questions[0].Type)
}

func TestQuestionGenerator_ComplexPromptTriggersReasoning(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	analysis := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 9, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "complex",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, domain.SlotReasoning, questions[0].Type)
}

func TestQuestionGenerator_SelectCarriesOptions(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	analysis := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 9, StructureScore: 4, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)

	var format *domain.Question
	for i := range questions {
		if questions[i].Type == domain.SlotFormat {
			format = &questions[i]
		}
	}
	require.NotNil(t, format)
	assert.Equal(t, domain.InputSelect, format.Input)
	assert.Len(t, format.Options, 4)
	assert.Equal(t, "paragraph", format.DefaultKey)
}

func TestQuestionGenerator_Localized(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())

	analysis := &domain.AnalysisResult{
		CompletenessScore: 3, ClarityScore: 9, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}

	en, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	ja, err := g.QuestionsFor(analysis, "ja")
	require.NoError(t, err)

	require.Len(t, en, 1)
	require.Len(t, ja, 1)
	assert.NotEqual(t, en[0].Question, ja[0].Question)
}

func TestQuestionGenerator_EqualPrioritiesKeepConfigOrder(t *testing.T) {
	const cfg = `
version: "1"
languages: ["zh_TW", "en"]
dynamic_questions:
  - type: role
    condition: "completeness_score < 6"
    priority: 5
    input: text
    questions:
      zh_TW: "角色？"
      en: "What role?"
  - type: scope
    condition: "completeness_score < 6"
    priority: 5
    input: text
    questions:
      zh_TW: "範圍？"
      en: "What scope?"
  - type: detail
    condition: "clarity_score < 6"
    priority: 8
    input: text
    questions:
      zh_TW: "細節？"
      en: "What detail?"
`
	store, err := promptcfg.Parse([]byte(cfg))
	require.NoError(t, err)
	g := NewQuestionGenerator(store)

	analysis := &domain.AnalysisResult{
		CompletenessScore: 3, ClarityScore: 3, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}

	questions, err := g.QuestionsFor(analysis, "en")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, domain.SlotDetail, questions[0].Type)
	assert.Equal(t, domain.SlotRole, questions[1].Type)
	assert.Equal(t, domain.SlotScope, questions[2].Type,
		"equal priorities keep definition order")
}

func TestQuestionGenerator_NilAnalysisIsAnError(t *testing.T) {
	g := NewQuestionGenerator(promptcfg.DefaultStore())
	_, err := g.QuestionsFor(nil, "en")
	assert.Error(t, err)
}
