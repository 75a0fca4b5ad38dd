package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultContextWindow is the advisory token budget used when the
// backend's real window is unknown.
const DefaultContextWindow = 131072

// Session is the mutable aggregate root of one conversation. It owns
// its messages and all derived state; callers must not mutate it from
// two operations at once.
type Session struct {
	ID             string     `json:"session_id"`
	Messages       []*Message `json:"messages"`
	CurrentPrompt  string     `json:"current_prompt"`
	OriginalPrompt string     `json:"original_prompt"`
	IterationCount int        `json:"iteration_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	LastAnalysis     *AnalysisResult     `json:"last_analysis,omitempty"`
	LastOptimization *OptimizationResult `json:"last_optimization,omitempty"`

	// PendingQuestions is non-nil only while answers are awaited.
	PendingQuestions []Question `json:"pending_questions,omitempty"`

	// QuestionAnswers accumulates across iterations; follow-up deltas
	// merge into it rather than replacing it.
	QuestionAnswers Answers `json:"question_answers"`

	// Advisory token accounting. Never blocks or truncates a call.
	CurrentContextTokens int `json:"current_context_tokens"`
	ContextWindowLimit   int `json:"context_window_limit"`
}

// NewSession creates an empty session. initialPrompt may be "".
func NewSession(initialPrompt string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:                 uuid.NewString(),
		Messages:           []*Message{},
		CurrentPrompt:      initialPrompt,
		OriginalPrompt:     initialPrompt,
		CreatedAt:          now,
		UpdatedAt:          now,
		QuestionAnswers:    Answers{},
		ContextWindowLimit: DefaultContextWindow,
	}
}

// AddMessage appends a new message to the log and returns it.
func (s *Session) AddMessage(role MessageRole, msgType MessageType, content string, opts ...MessageOption) *Message {
	m := NewMessage(role, msgType, content, opts...)
	s.Messages = append(s.Messages, m)
	s.UpdatedAt = time.Now().UTC()
	return m
}

// LastMessage returns the newest message, or nil for an empty log.
func (s *Session) LastMessage() *Message {
	if len(s.Messages) == 0 {
		return nil
	}
	return s.Messages[len(s.Messages)-1]
}

// MessagesByType returns all messages of the given type in log order.
func (s *Session) MessagesByType(msgType MessageType) []*Message {
	var out []*Message
	for _, m := range s.Messages {
		if m.Type == msgType {
			out = append(out, m)
		}
	}
	return out
}

// RecentMessages returns up to n of the newest messages in log order.
func (s *Session) RecentMessages(n int) []*Message {
	if n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if n > len(s.Messages) {
		n = len(s.Messages)
	}
	return s.Messages[len(s.Messages)-n:]
}

// AddTokens adds consumed tokens to the advisory counter.
func (s *Session) AddTokens(n int) {
	if n > 0 {
		s.CurrentContextTokens += n
	}
}

// TokenUsagePercent returns consumption relative to the window limit.
func (s *Session) TokenUsagePercent() float64 {
	if s.ContextWindowLimit <= 0 {
		return 0
	}
	return float64(s.CurrentContextTokens) / float64(s.ContextWindowLimit) * 100
}

// Reset clears the log and all derived state, returning the session to
// its freshly created shape. Calling it twice is the same as once.
func (s *Session) Reset() {
	s.Messages = []*Message{}
	s.CurrentPrompt = ""
	s.OriginalPrompt = ""
	s.LastAnalysis = nil
	s.LastOptimization = nil
	s.PendingQuestions = nil
	s.QuestionAnswers = Answers{}
	s.IterationCount = 0
	s.CurrentContextTokens = 0
	s.UpdatedAt = time.Now().UTC()
}

// MarshalSession serializes a session with full fidelity.
func MarshalSession(s *Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling session: %w", err)
	}
	return data, nil
}

// UnmarshalSession reconstructs a session, tolerating records written
// before token accounting existed.
func UnmarshalSession(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshaling session: %w", err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("unmarshaling session: missing session_id")
	}
	if s.QuestionAnswers == nil {
		s.QuestionAnswers = Answers{}
	}
	if s.ContextWindowLimit == 0 {
		s.ContextWindowLimit = DefaultContextWindow
	}
	return &s, nil
}
