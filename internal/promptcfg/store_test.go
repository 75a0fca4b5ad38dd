package promptcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore(t *testing.T) {
	s := DefaultStore()

	assert.Equal(t, "1.0", s.Version())
	assert.Equal(t, []string{"zh_TW", "en", "ja"}, s.Languages())

	defs := s.QuestionDefs()
	require.Len(t, defs, 5)

	// File order matches slot order; priorities descend.
	types := make([]string, 0, len(defs))
	for _, d := range defs {
		types = append(types, d.Type)
	}
	assert.Equal(t, domain.SlotOrder, types)
	assert.Equal(t, 10, defs[0].Priority)
	assert.Equal(t, 2, defs[4].Priority)
}

func TestStore_SystemPrompt(t *testing.T) {
	s := DefaultStore()

	assert.NotEmpty(t, s.SystemPrompt("analyze", "en"))
	assert.NotEmpty(t, s.SystemPrompt("chat", "ja"))
	assert.Empty(t, s.SystemPrompt("unknown", "en"))

	// Unsupported languages resolve against the fallback.
	assert.Equal(t, s.SystemPrompt("analyze", "zh_TW"), s.SystemPrompt("analyze", "fr"))
}

func TestStore_UserPrompt_InjectsSharedSections(t *testing.T) {
	s := DefaultStore()

	rendered := s.UserPrompt("analyze", "en", map[string]string{"prompt": "write a poem"})
	assert.Contains(t, rendered, "write a poem")
	assert.Contains(t, rendered, "completeness_score", "output format section must be injected")
	assert.NotContains(t, rendered, "{output_format}")
}

func TestStore_UserPrompt_UnknownKind(t *testing.T) {
	s := DefaultStore()
	assert.Empty(t, s.UserPrompt("nope", "en", nil))
}

func TestStore_OptimizationStrategy(t *testing.T) {
	s := DefaultStore()

	out, ok := s.OptimizationStrategy("role_definition", "en", map[string]string{"role": "teacher"})
	require.True(t, ok)
	assert.Equal(t, "You are a teacher.", out)

	_, ok = s.OptimizationStrategy("unknown_strategy", "en", nil)
	assert.False(t, ok)
}

func TestStore_OptimizationStrategy_Disabled(t *testing.T) {
	s, err := Parse([]byte(`
languages: [en]
optimization_strategies:
  role_definition:
    enabled: false
    template:
      en: "You are a {role}."
`))
	require.NoError(t, err)

	_, ok := s.OptimizationStrategy("role_definition", "en", map[string]string{"role": "x"})
	assert.False(t, ok)
}

func TestStore_ErrorMessage(t *testing.T) {
	s := DefaultStore()

	msg := s.ErrorMessage("analysis_error", "en", "backend down")
	assert.Contains(t, msg, "backend down")
	assert.NotContains(t, msg, "{error}")

	// Unknown keys degrade to a generic English error.
	assert.Equal(t, "Error: boom", s.ErrorMessage("nope", "en", "boom"))
}

func TestStore_ImprovementMessage(t *testing.T) {
	s := DefaultStore()
	assert.Equal(t, "Added role definition", s.ImprovementMessage("role_added", "en"))
	assert.NotEmpty(t, s.ImprovementMessage("final_improvement", "ja"))
}

func TestQuestionDef_Localization(t *testing.T) {
	s := DefaultStore()
	defs := s.QuestionDefs()

	role := defs[0]
	assert.Contains(t, role.QuestionText("en"), "role")
	assert.NotEmpty(t, role.QuestionText("zh_TW"))
	assert.Equal(t, role.QuestionText("zh_TW"), role.QuestionText("ko"), "unsupported language falls back")

	format := defs[1]
	opts := format.DomainOptions("en")
	require.Len(t, opts, 4)
	assert.Equal(t, "json", opts[0].Key)
	assert.Equal(t, "Bullet list", opts[1].Label)
	assert.Equal(t, "paragraph", format.DefaultKey)
}

func TestDefaultQuestions_Conditions(t *testing.T) {
	s := DefaultStore()
	defs := s.QuestionDefs()

	weak := &domain.AnalysisResult{
		CompletenessScore: 4, ClarityScore: 4, StructureScore: 4, SpecificityScore: 4,
		ComplexityLevel: "medium",
	}
	for _, d := range defs {
		assert.True(t, d.Condition.Eval(weak), "weak prompt should trigger %s", d.Type)
	}

	strong := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 9, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "simple",
	}
	for _, d := range defs {
		assert.False(t, d.Condition.Eval(strong), "strong prompt should not trigger %s", d.Type)
	}

	complexOnly := &domain.AnalysisResult{
		CompletenessScore: 9, ClarityScore: 9, StructureScore: 9, SpecificityScore: 9,
		ComplexityLevel: "complex",
	}
	reasoning := defs[4]
	assert.True(t, reasoning.Condition.Eval(complexOnly))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Len(t, s.QuestionDefs(), 5)
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
languages: [en]
system_prompts:
  analyze:
    en: "custom analyzer"
dynamic_questions:
  - type: role
    condition: "completeness_score < 9"
    priority: 1
    input: text
    questions:
      en: "Who?"
`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom analyzer", s.SystemPrompt("analyze", "en"))
	require.Len(t, s.QuestionDefs(), 1)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [en\n  bad"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParse_NoLanguages(t *testing.T) {
	_, err := Parse([]byte(`version: "1.0"`))
	assert.Error(t, err)
}

func TestParse_MalformedConditionFailsClosed(t *testing.T) {
	s, err := Parse([]byte(`
languages: [en]
dynamic_questions:
  - type: role
    condition: "garbage ###"
    priority: 1
    input: text
    questions:
      en: "Who?"
`))
	require.NoError(t, err)

	weak := &domain.AnalysisResult{CompletenessScore: 1, ClarityScore: 1, StructureScore: 1, SpecificityScore: 1}
	assert.False(t, s.QuestionDefs()[0].Condition.Eval(weak))
}
