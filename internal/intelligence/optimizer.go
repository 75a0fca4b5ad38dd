package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// slotStrategy binds an answer slot to its insertion strategy and
// improvement-note key. Applied in domain.SlotOrder.
type slotStrategy struct {
	strategy string
	message  string
	prepend  bool
}

var slotStrategies = map[string]slotStrategy{
	domain.SlotRole:      {strategy: "role_definition", message: "role_added", prepend: true},
	domain.SlotFormat:    {strategy: "output_format", message: "format_added"},
	domain.SlotDetail:    {strategy: "detail_tone", message: "detail_added"},
	domain.SlotScope:     {strategy: "scope_breadth", message: "scope_added"},
	domain.SlotReasoning: {strategy: "reasoning_steps", message: "reasoning_added"},
}

// Optimizer rewrites a prompt from accumulated answers: structural
// insertions first, then one backend rewrite pass over the seeded text.
type Optimizer struct {
	client llm.Client
	store  *promptcfg.Store
}

// NewOptimizer creates an Optimizer backed by the given client and store.
func NewOptimizer(client llm.Client, store *promptcfg.Store) *Optimizer {
	return &Optimizer{client: client, store: store}
}

// Optimize applies each answered slot's strategy template to the
// current prompt in fixed slot order, recording a localized improvement
// note per applied step, then sends the seeded text through the backend
// for the final rewrite. Slots without a configured strategy are
// skipped silently. The overall-enhancement note is always appended
// last. The backend's output becomes the enhanced prompt; the
// insertions are a seed, not the final text.
func (o *Optimizer) Optimize(ctx context.Context, currentPrompt string, answers domain.Answers, analysis *domain.AnalysisResult, language string) (*domain.OptimizationResult, llm.Usage, error) {
	if analysis == nil {
		return nil, llm.Usage{}, fmt.Errorf("optimization requires an analysis result")
	}

	seeded := currentPrompt
	var improvements []string

	for _, slot := range domain.SlotOrder {
		if !answers.Has(slot) {
			continue
		}
		binding := slotStrategies[slot]

		vars := map[string]string{}
		if text := answers.Text(slot); text != "" {
			vars[slot] = SanitizeUserText(text)
		}
		insertion, ok := o.store.OptimizationStrategy(binding.strategy, language, vars)
		if !ok {
			continue
		}

		if binding.prepend {
			seeded = insertion + "\n\n" + seeded
		} else {
			seeded = seeded + "\n\n" + insertion
		}
		improvements = append(improvements, o.store.ImprovementMessage(binding.message, language))
	}

	resp, err := o.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOptimize,
		SystemPrompt: o.store.SystemPrompt("optimize", language),
		UserPrompt: o.store.UserPrompt("optimize", language, map[string]string{
			"prompt": seeded,
		}),
	})
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("optimizing prompt: %w", err)
	}

	improvements = append(improvements, o.store.ImprovementMessage("final_improvement", language))

	return &domain.OptimizationResult{
		EnhancedPrompt: resp.Text,
		Improvements:   improvements,
	}, resp.Usage, nil
}
