package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// Analyzer scores a prompt by delegating to the generation backend.
type Analyzer struct {
	client llm.Client
	store  *promptcfg.Store
}

// NewAnalyzer creates an Analyzer backed by the given client and store.
func NewAnalyzer(client llm.Client, store *promptcfg.Store) *Analyzer {
	return &Analyzer{client: client, store: store}
}

// Analyze runs a single backend call with the analyze template pair and
// parses the structured score report. Backend failures are returned to
// the caller; unparseable output degrades to the neutral fallback
// report instead, so analysis itself never hard-fails a conversation.
func (a *Analyzer) Analyze(ctx context.Context, promptText, language string) (*domain.AnalysisResult, llm.Usage, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: a.store.SystemPrompt("analyze", language),
		UserPrompt: a.store.UserPrompt("analyze", language, map[string]string{
			"prompt": SanitizeUserText(promptText),
		}),
	})
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("analyzing prompt: %w", err)
	}

	result, err := llm.ExtractJSON[domain.AnalysisResult](resp.Text, validateAnalysis)
	if err != nil {
		return domain.NeutralAnalysis(), resp.Usage, nil
	}

	result.ClampScores()
	if result.MissingElements == nil {
		result.MissingElements = []string{}
	}
	if result.ImprovementAreas == nil {
		result.ImprovementAreas = []string{}
	}
	if result.PromptType == "" {
		result.PromptType = "general"
	}
	if result.ComplexityLevel == "" {
		result.ComplexityLevel = "medium"
	}
	return &result, resp.Usage, nil
}

// validateAnalysis requires all four scores to be present. A report
// with missing scores is treated as unparseable and replaced by the
// neutral fallback.
func validateAnalysis(r domain.AnalysisResult) error {
	if r.CompletenessScore == 0 || r.ClarityScore == 0 || r.StructureScore == 0 || r.SpecificityScore == 0 {
		return fmt.Errorf("missing score fields")
	}
	return nil
}
