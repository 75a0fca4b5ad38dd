package flow

import (
	"context"
	"fmt"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/intelligence"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// Controller drives one session through the conversation state machine.
// It owns the session's state transitions; services stay stateless. Not
// safe for concurrent use.
type Controller struct {
	session  *domain.Session
	store    *promptcfg.Store
	language string

	analyzer  *intelligence.Analyzer
	questions *intelligence.QuestionGenerator
	optimizer *intelligence.Optimizer
	delta     *intelligence.DeltaConverter
	chat      *intelligence.ChatService

	state domain.ConversationState
}

// NewController wires the intelligence services over a shared client and
// store. A restored snapshot resumes where it left off: unanswered
// questions put the conversation back in awaiting-questions, a finished
// optimization back in completed. Anything else starts idle.
func NewController(session *domain.Session, client llm.Client, store *promptcfg.Store, language string) *Controller {
	return &Controller{
		session:   session,
		store:     store,
		language:  language,
		analyzer:  intelligence.NewAnalyzer(client, store),
		questions: intelligence.NewQuestionGenerator(store),
		optimizer: intelligence.NewOptimizer(client, store),
		delta:     intelligence.NewDeltaConverter(client, store),
		chat:      intelligence.NewChatService(client, store),
		state:     resumeState(session),
	}
}

// resumeState derives the conversation state a session snapshot was in
// when it was taken. Pending questions are non-nil only while answers
// are awaited, so they decide first.
func resumeState(session *domain.Session) domain.ConversationState {
	switch {
	case len(session.PendingQuestions) > 0:
		return domain.StateAwaitingQuestions
	case session.LastOptimization != nil:
		return domain.StateCompleted
	default:
		return domain.StateIdle
	}
}

// Session returns the controller's session.
func (c *Controller) Session() *domain.Session { return c.session }

// State returns the current conversation state.
func (c *Controller) State() domain.ConversationState { return c.state }

// Language returns the controller's reply language.
func (c *Controller) Language() string { return c.language }

// HandleInitialPrompt starts (or restarts) the optimization cycle for
// promptText. The original prompt is recorded only on the first call of
// the session; later calls update the working prompt alone.
//
// Backend failure during analysis appends a localized error message and
// returns the session to idle: the conversation never silently advances
// past a failed analysis. Unparseable analysis output is not a failure,
// the analyzer degrades it to a neutral report.
func (c *Controller) HandleInitialPrompt(ctx context.Context, promptText string) *TurnResult {
	result := &TurnResult{}

	user := c.session.AddMessage(domain.RoleUser, domain.TypeText, promptText)
	result.UserMessage = user

	c.session.CurrentPrompt = promptText
	if c.session.OriginalPrompt == "" {
		c.session.OriginalPrompt = promptText
	}

	c.state = domain.StateAnalyzing
	c.runAnalysisCycle(ctx, promptText, user.ID, result)
	result.State = c.state
	return result
}

// runAnalysisCycle performs analyze-then-ask for promptText. Shared by
// the initial turn and the iterate follow-up.
func (c *Controller) runAnalysisCycle(ctx context.Context, promptText, parentID string, result *TurnResult) {
	analysis, usage, err := c.analyzer.Analyze(ctx, promptText, c.language)
	c.recordUsage(usage, promptText)
	if err != nil {
		msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeSystemNotice,
			c.store.ErrorMessage("analysis_error", c.language, err.Error()),
			domain.WithParent(parentID))
		result.Analysis = &AnalysisStep{Message: msg, Err: err}
		c.state = domain.StateIdle
		return
	}

	c.session.LastAnalysis = analysis
	analysisMsg := c.session.AddMessage(domain.RoleAssistant, domain.TypeAnalysis,
		formatAnalysisContent(analysis, c.language),
		domain.WithAnalysis(analysis),
		domain.WithParent(parentID))
	result.Analysis = &AnalysisStep{Message: analysisMsg, Analysis: analysis}

	c.state = domain.StateAwaitingQuestions

	questions, err := c.questions.QuestionsFor(analysis, c.language)
	if err != nil {
		msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeSystemNotice,
			c.store.ErrorMessage("questions_error", c.language, err.Error()),
			domain.WithParent(analysisMsg.ID))
		result.Questions = &QuestionsStep{Message: msg, Err: err}
		return
	}

	var opts []domain.MessageOption
	opts = append(opts, domain.WithParent(analysisMsg.ID))
	if len(questions) > 0 {
		opts = append(opts, domain.WithQuestions(questions))
	}
	questionsMsg := c.session.AddMessage(domain.RoleAssistant, domain.TypeQuestions,
		formatQuestionsContent(questions, c.language), opts...)

	// An empty list is a normal outcome; the session stays in
	// awaiting-questions with nothing pending, ready for an empty
	// answer submission.
	if len(questions) > 0 {
		c.session.PendingQuestions = questions
	} else {
		c.session.PendingQuestions = nil
	}
	result.Questions = &QuestionsStep{Message: questionsMsg, Questions: questions}
}

// HandleQuestionsResponse records the user's answers and runs the
// optimization phase. Answers replace the session's accumulated set
// wholesale; only follow-up deltas merge.
//
// Optimization failure still completes the cycle: the user gets a
// localized error message, and follow-ups on the unchanged current
// prompt remain possible.
func (c *Controller) HandleQuestionsResponse(ctx context.Context, answers domain.Answers) (*TurnResult, error) {
	if c.session.LastAnalysis == nil {
		return nil, fmt.Errorf("answers submitted before any analysis")
	}

	result := &TurnResult{}

	user := c.session.AddMessage(domain.RoleUser, domain.TypeText,
		formatAnswersContent(answers, c.language))
	result.UserMessage = user

	if answers == nil {
		answers = domain.Answers{}
	}
	c.session.QuestionAnswers = answers
	c.session.PendingQuestions = nil

	c.state = domain.StateOptimizing
	c.runOptimization(ctx, user.ID, result)
	result.State = c.state
	return result, nil
}

// runOptimization rewrites the current prompt from the accumulated
// answers and always lands in the completed state.
func (c *Controller) runOptimization(ctx context.Context, parentID string, result *TurnResult) {
	opt, usage, err := c.optimizer.Optimize(ctx, c.session.CurrentPrompt, c.session.QuestionAnswers, c.session.LastAnalysis, c.language)
	c.recordUsage(usage, c.session.CurrentPrompt)
	if err != nil {
		msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeSystemNotice,
			c.store.ErrorMessage("optimization_error", c.language, err.Error()),
			domain.WithParent(parentID))
		result.Optimization = &OptimizationStep{Message: msg, Err: err}
		c.state = domain.StateCompleted
		return
	}

	c.session.LastOptimization = opt
	c.session.CurrentPrompt = opt.EnhancedPrompt
	c.session.IterationCount++

	msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeOptimization,
		opt.EnhancedPrompt,
		domain.WithOptimization(opt),
		domain.WithParent(parentID))
	result.Optimization = &OptimizationStep{Message: msg, Result: opt}
	c.state = domain.StateCompleted
}

// HandleFollowupMessage routes a post-completion message by intent:
// iterate re-runs the full cycle on the current prompt, modify converts
// the request to an answer delta and re-optimizes without re-analysis,
// anything else gets a conversational reply.
func (c *Controller) HandleFollowupMessage(ctx context.Context, text string) (*TurnResult, error) {
	if c.state != domain.StateCompleted && c.state != domain.StateConversing {
		return nil, fmt.Errorf("follow-up in state %q: no completed optimization", c.state)
	}

	result := &TurnResult{}

	user := c.session.AddMessage(domain.RoleUser, domain.TypeText, text)
	result.UserMessage = user

	intent := intelligence.ClassifyIntent(text, c.language)
	result.Intent = intent

	switch intent {
	case intelligence.IntentIterate:
		c.state = domain.StateAnalyzing
		c.runAnalysisCycle(ctx, c.session.CurrentPrompt, user.ID, result)

	case intelligence.IntentModify:
		delta, usage := c.delta.Convert(ctx, text, c.session.QuestionAnswers, c.language)
		c.recordUsage(usage, text)
		c.session.QuestionAnswers = c.session.QuestionAnswers.Merge(delta)

		c.state = domain.StateOptimizing
		c.runOptimization(ctx, user.ID, result)

	default:
		reply, usage, err := c.chat.Reply(ctx, c.session.Messages, text, c.language)
		c.recordUsage(usage, text)
		if err != nil {
			msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeSystemNotice,
				c.store.ErrorMessage("chat_error", c.language, err.Error()),
				domain.WithParent(user.ID))
			result.Chat = &ChatStep{Message: msg, Err: err}
		} else {
			msg := c.session.AddMessage(domain.RoleAssistant, domain.TypeText, reply,
				domain.WithParent(user.ID))
			result.Chat = &ChatStep{Message: msg}
			c.state = domain.StateConversing
		}
	}

	result.State = c.state
	return result, nil
}

// Reset returns the session and controller to the idle starting point.
func (c *Controller) Reset() {
	c.session.Reset()
	c.state = domain.StateIdle
}

// recordUsage adds backend-reported tokens to the session's advisory
// counter, estimating from the exchanged text when the backend reported
// nothing.
func (c *Controller) recordUsage(usage llm.Usage, fallbackTexts ...string) {
	if usage.TotalTokens > 0 {
		c.session.AddTokens(usage.TotalTokens)
		return
	}
	total := 0
	for _, t := range fallbackTexts {
		if t != "" {
			total += llm.EstimateTokens(t)
		}
	}
	c.session.AddTokens(total)
}
