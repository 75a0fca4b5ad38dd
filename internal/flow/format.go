package flow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// Display labels for formatted assistant messages. Localized here
// rather than in the prompt config because they are UI text, not
// backend instructions.
var displayLabels = map[string]map[string]string{
	"zh_TW": {
		"analysis_title":  "提示分析結果",
		"completeness":    "完整性",
		"clarity":         "清晰度",
		"structure":       "結構性",
		"specificity":     "具體性",
		"prompt_type":     "提示類型",
		"complexity":      "複雜度",
		"questions_title": "讓我們一起改進您的提示",
		"no_questions":    "沒有需要回答的問題，可以直接進行優化。",
		"answers_title":   "我的回答：",
	},
	"en": {
		"analysis_title":  "Prompt analysis",
		"completeness":    "Completeness",
		"clarity":         "Clarity",
		"structure":       "Structure",
		"specificity":     "Specificity",
		"prompt_type":     "Prompt type",
		"complexity":      "Complexity",
		"questions_title": "Let's improve your prompt together",
		"no_questions":    "Nothing needs clarifying; ready to optimize.",
		"answers_title":   "My answers:",
	},
	"ja": {
		"analysis_title":  "プロンプト分析結果",
		"completeness":    "完全性",
		"clarity":         "明確性",
		"structure":       "構造性",
		"specificity":     "具体性",
		"prompt_type":     "プロンプトの種類",
		"complexity":      "複雑度",
		"questions_title": "プロンプトを一緒に改善しましょう",
		"no_questions":    "確認すべき質問はありません。最適化に進めます。",
		"answers_title":   "私の回答：",
	},
}

func label(key, language string) string {
	labels, ok := displayLabels[language]
	if !ok {
		labels = displayLabels["zh_TW"]
	}
	return labels[key]
}

func formatAnalysisContent(a *domain.AnalysisResult, language string) string {
	lines := []string{
		label("analysis_title", language),
		"",
		fmt.Sprintf("%s: %d/10", label("completeness", language), a.CompletenessScore),
		fmt.Sprintf("%s: %d/10", label("clarity", language), a.ClarityScore),
		fmt.Sprintf("%s: %d/10", label("structure", language), a.StructureScore),
		fmt.Sprintf("%s: %d/10", label("specificity", language), a.SpecificityScore),
		"",
		fmt.Sprintf("%s: %s", label("prompt_type", language), a.PromptType),
		fmt.Sprintf("%s: %s", label("complexity", language), a.ComplexityLevel),
	}
	return strings.Join(lines, "\n")
}

func formatQuestionsContent(questions []domain.Question, language string) string {
	if len(questions) == 0 {
		return label("no_questions", language)
	}
	lines := []string{label("questions_title", language), ""}
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q.Question))
	}
	return strings.Join(lines, "\n")
}

func formatAnswersContent(answers domain.Answers, language string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{label("answers_title", language), ""}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %v", k, answers[k]))
	}
	return strings.Join(lines, "\n")
}
