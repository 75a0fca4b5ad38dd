package promptcfg

import (
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisWith(completeness, clarity, structure, specificity int) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		CompletenessScore: completeness,
		ClarityScore:      clarity,
		StructureScore:    structure,
		SpecificityScore:  specificity,
		PromptType:        "general",
		ComplexityLevel:   "medium",
	}
}

func TestParseCondition_Less(t *testing.T) {
	cond, err := ParseCondition("completeness_score < 7")
	require.NoError(t, err)

	assert.True(t, cond.Eval(analysisWith(6, 10, 10, 10)))
	assert.False(t, cond.Eval(analysisWith(7, 1, 1, 1)))
}

func TestParseCondition_In(t *testing.T) {
	cond, err := ParseCondition("complexity_level in ['complex', '複雜', 'high']")
	require.NoError(t, err)

	a := analysisWith(5, 5, 5, 5)
	a.ComplexityLevel = "complex"
	assert.True(t, cond.Eval(a))

	a.ComplexityLevel = "複雜"
	assert.True(t, cond.Eval(a))

	a.ComplexityLevel = "medium"
	assert.False(t, cond.Eval(a))
}

func TestParseCondition_InDoubleQuotes(t *testing.T) {
	cond, err := ParseCondition(`prompt_type in ["creative"]`)
	require.NoError(t, err)

	a := analysisWith(5, 5, 5, 5)
	a.PromptType = "creative"
	assert.True(t, cond.Eval(a))
}

func TestParseCondition_Or(t *testing.T) {
	cond, err := ParseCondition("structure_score < 7 OR completeness_score < 5")
	require.NoError(t, err)

	assert.True(t, cond.Eval(analysisWith(10, 10, 6, 10)), "left clause")
	assert.True(t, cond.Eval(analysisWith(4, 10, 10, 10)), "right clause")
	assert.False(t, cond.Eval(analysisWith(10, 10, 10, 10)))
}

func TestParseCondition_Errors(t *testing.T) {
	tests := []string{
		"",
		"completeness_score",
		"completeness_score < banana",
		"Completeness < 5",
		"completeness_score in []",
		"complexity_level in [unquoted]",
		"complexity_level in 'complex'",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseCondition(expr)
			assert.Error(t, err)
		})
	}
}

func TestCompileCondition_MalformedFailsClosed(t *testing.T) {
	cond := CompileCondition("totally broken ===")
	assert.False(t, cond.Eval(analysisWith(1, 1, 1, 1)), "malformed conditions must never ask the question")
}

func TestCondition_UnknownFieldIsFalse(t *testing.T) {
	cond, err := ParseCondition("unknown_field < 100")
	require.NoError(t, err)
	assert.False(t, cond.Eval(analysisWith(1, 1, 1, 1)))
}
