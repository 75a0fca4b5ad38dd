package intelligence

import "strings"

// FollowupIntent classifies a free-text message sent after a completed
// optimization.
type FollowupIntent string

const (
	// IntentIterate re-runs the full analyze/optimize cycle on the
	// current prompt.
	IntentIterate FollowupIntent = "iterate"

	// IntentModify converts the request into an answer delta and
	// re-optimizes without re-analysis.
	IntentModify FollowupIntent = "modify"

	// IntentGeneral falls through to a conversational reply.
	IntentGeneral FollowupIntent = "general"
)

// Intent classification is a deliberate heuristic, not a model call:
// case-insensitive substring matching over fixed per-language keyword
// lists, iterate checked strictly before modify.
var iterateKeywords = map[string][]string{
	"zh_TW": {"再優化", "重新優化", "再次優化", "再來一次", "重跑"},
	"en":    {"optimize again", "re-optimize", "reoptimize", "run it again", "iterate"},
	"ja":    {"もう一度最適化", "再最適化", "もう一回"},
}

var modifyKeywords = map[string][]string{
	"zh_TW": {"調整", "修改", "改成", "加上", "移除", "更正式", "更簡潔", "更詳細", "換成"},
	"en":    {"adjust", "change", "modify", "make it", "more ", "less ", "add ", "remove ", "instead"},
	"ja":    {"調整", "変更", "修正", "もっと", "追加", "削除"},
}

// ClassifyIntent decides what a follow-up message asks for. Unsupported
// languages use the zh_TW keyword lists.
func ClassifyIntent(text, language string) FollowupIntent {
	lowered := strings.ToLower(text)

	if matchesAny(lowered, keywordsFor(iterateKeywords, language)) {
		return IntentIterate
	}
	if matchesAny(lowered, keywordsFor(modifyKeywords, language)) {
		return IntentModify
	}
	return IntentGeneral
}

func keywordsFor(table map[string][]string, language string) []string {
	if kws, ok := table[language]; ok {
		return kws
	}
	return table["zh_TW"]
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
