package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeutralAnalysis(t *testing.T) {
	a := NeutralAnalysis()

	assert.Equal(t, 5, a.CompletenessScore)
	assert.Equal(t, 5, a.ClarityScore)
	assert.Equal(t, 5, a.StructureScore)
	assert.Equal(t, 5, a.SpecificityScore)
	assert.Equal(t, "general", a.PromptType)
	assert.Equal(t, "medium", a.ComplexityLevel)
	assert.NotNil(t, a.MissingElements)
	assert.NotNil(t, a.ImprovementAreas)
}

func TestAnalysisResult_ScoreLookup(t *testing.T) {
	a := &AnalysisResult{CompletenessScore: 3, ClarityScore: 7, StructureScore: 4, SpecificityScore: 9}

	for field, want := range map[string]int{
		"completeness_score": 3,
		"clarity_score":      7,
		"structure_score":    4,
		"specificity_score":  9,
	} {
		got, ok := a.Score(field)
		assert.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}

	_, ok := a.Score("prompt_type")
	assert.False(t, ok)
}

func TestAnalysisResult_LabelLookup(t *testing.T) {
	a := &AnalysisResult{PromptType: "creative", ComplexityLevel: "complex"}

	got, ok := a.Label("complexity_level")
	assert.True(t, ok)
	assert.Equal(t, "complex", got)

	_, ok = a.Label("clarity_score")
	assert.False(t, ok)
}

func TestAnalysisResult_ClampScores(t *testing.T) {
	a := &AnalysisResult{CompletenessScore: 0, ClarityScore: -3, StructureScore: 15, SpecificityScore: 10}
	a.ClampScores()

	assert.Equal(t, 1, a.CompletenessScore)
	assert.Equal(t, 1, a.ClarityScore)
	assert.Equal(t, 10, a.StructureScore)
	assert.Equal(t, 10, a.SpecificityScore)
}

func TestValidSlot(t *testing.T) {
	for _, slot := range SlotOrder {
		assert.True(t, ValidSlot(slot))
	}
	assert.False(t, ValidSlot("tone"))
	assert.False(t, ValidSlot(""))
}
