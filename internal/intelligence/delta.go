package intelligence

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// DeltaConverter interprets a free-text modification request as a
// partial answer map, ready to merge into a session's accumulated
// answers.
type DeltaConverter struct {
	client llm.Client
	store  *promptcfg.Store
}

// NewDeltaConverter creates a DeltaConverter backed by the given client
// and store.
func NewDeltaConverter(client llm.Client, store *promptcfg.Store) *DeltaConverter {
	return &DeltaConverter{client: client, store: store}
}

// Convert asks the backend to express the request as a small JSON
// object keyed by answer slots, parsing leniently. On any failure —
// backend error, unparseable output, no recognized slots — it falls
// back to a fixed keyword heuristic so a modify turn never silently
// does nothing. The returned usage is zero when no backend call
// completed.
func (d *DeltaConverter) Convert(ctx context.Context, request string, current domain.Answers, language string) (domain.Answers, llm.Usage) {
	sanitized := SanitizeUserText(request)

	resp, err := d.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDelta,
		SystemPrompt: d.store.SystemPrompt("delta", language),
		UserPrompt: d.store.UserPrompt("delta", language, map[string]string{
			"answers": formatAnswers(current),
			"request": sanitized,
		}),
	})
	if err != nil {
		return heuristicDelta(sanitized), llm.Usage{}
	}

	raw, err := llm.ExtractJSON[map[string]any](resp.Text, nil)
	if err != nil {
		return heuristicDelta(sanitized), resp.Usage
	}

	delta := domain.Answers{}
	for key, value := range raw {
		if !domain.ValidSlot(key) {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				delta[key] = v
			}
		case bool:
			delta[key] = v
		}
	}
	if len(delta) == 0 {
		return heuristicDelta(sanitized), resp.Usage
	}
	return delta, resp.Usage
}

// heuristicDelta is the deterministic fallback converter: fixed keyword
// to slot mappings, with the whole request recorded as a scope
// refinement when nothing matches.
func heuristicDelta(request string) domain.Answers {
	lowered := strings.ToLower(request)
	delta := domain.Answers{}

	type rule struct {
		keywords []string
		slot     string
		value    any
	}
	rules := []rule{
		{[]string{"formal", "正式", "フォーマル"}, domain.SlotDetail, "formal"},
		{[]string{"casual", "口語", "カジュアル"}, domain.SlotDetail, "casual"},
		{[]string{"concise", "shorter", "簡潔", "簡短"}, domain.SlotDetail, "concise"},
		{[]string{"detail", "詳細"}, domain.SlotDetail, "detailed"},
		{[]string{"json"}, domain.SlotFormat, "json"},
		{[]string{"list", "bullet", "列表", "リスト"}, domain.SlotFormat, "list"},
		{[]string{"table", "表格"}, domain.SlotFormat, "table"},
		{[]string{"reason", "step by step", "思考", "推理", "推論"}, domain.SlotReasoning, true},
		{[]string{"example", "範例", "举例", "例を"}, domain.SlotScope, "include examples"},
	}

	for _, r := range rules {
		if _, taken := delta[r.slot]; taken {
			continue
		}
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				delta[r.slot] = r.value
				break
			}
		}
	}

	if len(delta) == 0 {
		delta[domain.SlotScope] = request
	}
	return delta
}

// formatAnswers renders current answers for the delta prompt in a
// stable key order.
func formatAnswers(answers domain.Answers) string {
	if len(answers) == 0 {
		return "(none)"
	}
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %v\n", k, answers[k])
	}
	return strings.TrimRight(b.String(), "\n")
}
