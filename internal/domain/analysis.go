package domain

// AnalysisResult is the structured report produced by the analyzer.
// Scores are integers in [1,10]; downstream consumers treat everything
// except the scores and labels as opaque display data.
type AnalysisResult struct {
	CompletenessScore int      `json:"completeness_score"`
	ClarityScore      int      `json:"clarity_score"`
	StructureScore    int      `json:"structure_score"`
	SpecificityScore  int      `json:"specificity_score"`
	MissingElements   []string `json:"missing_elements"`
	ImprovementAreas  []string `json:"improvement_areas"`
	PromptType        string   `json:"prompt_type"`
	ComplexityLevel   string   `json:"complexity_level"`
}

// NeutralAnalysis is the fixed fallback report used when the backend
// output cannot be parsed. Analysis must never hard-fail a conversation.
func NeutralAnalysis() *AnalysisResult {
	return &AnalysisResult{
		CompletenessScore: 5,
		ClarityScore:      5,
		StructureScore:    5,
		SpecificityScore:  5,
		MissingElements:   []string{},
		ImprovementAreas:  []string{},
		PromptType:        "general",
		ComplexityLevel:   "medium",
	}
}

// Score returns the named score field, with ok=false for unknown names.
// Condition evaluation addresses scores by their config field names.
func (a *AnalysisResult) Score(field string) (int, bool) {
	switch field {
	case "completeness_score":
		return a.CompletenessScore, true
	case "clarity_score":
		return a.ClarityScore, true
	case "structure_score":
		return a.StructureScore, true
	case "specificity_score":
		return a.SpecificityScore, true
	default:
		return 0, false
	}
}

// Label returns the named label field, with ok=false for unknown names.
func (a *AnalysisResult) Label(field string) (string, bool) {
	switch field {
	case "prompt_type":
		return a.PromptType, true
	case "complexity_level":
		return a.ComplexityLevel, true
	default:
		return "", false
	}
}

// ClampScores forces every score into [1,10].
func (a *AnalysisResult) ClampScores() {
	a.CompletenessScore = clampScore(a.CompletenessScore)
	a.ClarityScore = clampScore(a.ClarityScore)
	a.StructureScore = clampScore(a.StructureScore)
	a.SpecificityScore = clampScore(a.SpecificityScore)
}

func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
