package intelligence

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// QuestionGenerator turns an analysis result into an ordered list of
// clarifying questions using the store's compiled question definitions.
// No backend call is involved.
type QuestionGenerator struct {
	store *promptcfg.Store
}

// NewQuestionGenerator creates a QuestionGenerator over the given store.
func NewQuestionGenerator(store *promptcfg.Store) *QuestionGenerator {
	return &QuestionGenerator{store: store}
}

// QuestionsFor evaluates every configured question condition against
// the analysis and returns the matching questions sorted by priority,
// highest first. Ties keep configuration order (the sort is stable).
// An empty result is a normal outcome meaning nothing needs asking.
//
// Calling this without an analysis is a state-machine misuse and
// returns an error rather than an empty list.
func (g *QuestionGenerator) QuestionsFor(analysis *domain.AnalysisResult, language string) ([]domain.Question, error) {
	if analysis == nil {
		return nil, fmt.Errorf("question generation requires an analysis result")
	}

	var questions []domain.Question
	for _, def := range g.store.QuestionDefs() {
		if !def.Condition.Eval(analysis) {
			continue
		}
		questions = append(questions, domain.Question{
			Question:   def.QuestionText(language),
			Type:       def.Type,
			Input:      def.Input,
			Priority:   def.Priority,
			Options:    def.DomainOptions(language),
			DefaultKey: def.DefaultKey,
		})
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Priority > questions[j].Priority
	})
	return questions, nil
}
