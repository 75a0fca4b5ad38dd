package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a session's conversation log. Messages are
// immutable once created; the log is only ever appended to, or cleared
// wholesale on reset.
type Message struct {
	ID        string            `json:"id"`
	Role      MessageRole       `json:"role"`
	Type      MessageType       `json:"type"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`

	// Typed payloads, set only for the matching message type.
	Analysis        *AnalysisResult     `json:"analysis_data,omitempty"`
	Questions       []Question          `json:"questions_data,omitempty"`
	Optimization    *OptimizationResult `json:"optimization_data,omitempty"`
	ParentMessageID string              `json:"parent_message_id,omitempty"`
}

// MessageOption customizes a message at creation time.
type MessageOption func(*Message)

// WithAnalysis attaches an analysis payload.
func WithAnalysis(a *AnalysisResult) MessageOption {
	return func(m *Message) { m.Analysis = a }
}

// WithQuestions attaches a question-list payload.
func WithQuestions(qs []Question) MessageOption {
	return func(m *Message) { m.Questions = qs }
}

// WithOptimization attaches an optimization payload.
func WithOptimization(o *OptimizationResult) MessageOption {
	return func(m *Message) { m.Optimization = o }
}

// WithMetadata sets one metadata entry.
func WithMetadata(key, value string) MessageOption {
	return func(m *Message) {
		if m.Metadata == nil {
			m.Metadata = map[string]string{}
		}
		m.Metadata[key] = value
	}
}

// WithParent links the message to the message that triggered it.
func WithParent(parentID string) MessageOption {
	return func(m *Message) { m.ParentMessageID = parentID }
}

// NewMessage creates a message with a fresh id and the current time.
func NewMessage(role MessageRole, msgType MessageType, content string, opts ...MessageOption) *Message {
	m := &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
