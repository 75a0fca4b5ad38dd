package flow

import (
	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/intelligence"
)

// Each step result carries the message appended for it plus either its
// payload or the error that produced an apology message instead.
// Callers check Err before treating a step as successful.

// AnalysisStep is the outcome of the analysis phase of a turn.
type AnalysisStep struct {
	Message  *domain.Message
	Analysis *domain.AnalysisResult
	Err      error
}

// QuestionsStep is the outcome of question generation.
type QuestionsStep struct {
	Message   *domain.Message
	Questions []domain.Question
	Err       error
}

// OptimizationStep is the outcome of the optimization phase.
type OptimizationStep struct {
	Message *domain.Message
	Result  *domain.OptimizationResult
	Err     error
}

// ChatStep is the outcome of a conversational reply.
type ChatStep struct {
	Message *domain.Message
	Err     error
}

// TurnResult is the composite outcome of one user action. Only the
// steps the turn actually ran are non-nil.
type TurnResult struct {
	UserMessage  *domain.Message
	Intent       intelligence.FollowupIntent
	Analysis     *AnalysisStep
	Questions    *QuestionsStep
	Optimization *OptimizationStep
	Chat         *ChatStep
	State        domain.ConversationState
}

// Err returns the first step error of the turn, or nil.
func (r *TurnResult) Err() error {
	if r.Analysis != nil && r.Analysis.Err != nil {
		return r.Analysis.Err
	}
	if r.Questions != nil && r.Questions.Err != nil {
		return r.Questions.Err
	}
	if r.Optimization != nil && r.Optimization.Err != nil {
		return r.Optimization.Err
	}
	if r.Chat != nil && r.Chat.Err != nil {
		return r.Chat.Err
	}
	return nil
}
