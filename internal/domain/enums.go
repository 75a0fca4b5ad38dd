package domain

// MessageRole identifies who produced a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// MessageType classifies the payload a message carries.
type MessageType string

const (
	TypeText         MessageType = "text"
	TypeAnalysis     MessageType = "analysis"
	TypeQuestions    MessageType = "questions"
	TypeOptimization MessageType = "optimization"
	TypeSystemNotice MessageType = "system_notice"
)

// ConversationState is the flow controller's position in the optimization cycle.
type ConversationState string

const (
	StateIdle              ConversationState = "idle"
	StateAnalyzing         ConversationState = "analyzing"
	StateAwaitingQuestions ConversationState = "awaiting_questions"
	StateOptimizing        ConversationState = "optimizing"
	StateCompleted         ConversationState = "completed"
	StateConversing        ConversationState = "conversing"
)

// QuestionInput identifies how a clarifying question is answered.
type QuestionInput string

const (
	InputText   QuestionInput = "text"
	InputBool   QuestionInput = "bool"
	InputSelect QuestionInput = "select"
)

// Slot keys double as question types and as keys in a session's
// accumulated answers. The optimizer applies them in this order.
const (
	SlotRole      = "role"
	SlotFormat    = "format"
	SlotDetail    = "detail"
	SlotScope     = "scope"
	SlotReasoning = "reasoning"
)

// SlotOrder is the fixed application order for optimization strategies.
var SlotOrder = []string{SlotRole, SlotFormat, SlotDetail, SlotScope, SlotReasoning}

// ValidSlot reports whether key names a known answer slot.
func ValidSlot(key string) bool {
	switch key {
	case SlotRole, SlotFormat, SlotDetail, SlotScope, SlotReasoning:
		return true
	default:
		return false
	}
}
