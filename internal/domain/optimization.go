package domain

// OptimizationResult is the rewritten prompt plus human-readable notes
// about what changed, in application order. Immutable once produced.
type OptimizationResult struct {
	EnhancedPrompt string   `json:"enhanced_prompt"`
	Improvements   []string `json:"improvements"`
}
