package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromptRecord is a saved prompt in the library. Name is unique; saving
// under an existing name overwrites the stored content.
type PromptRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	UseCount    int       `json:"use_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPromptRecord creates a library record with a fresh id.
func NewPromptRecord(name, content string) *PromptRecord {
	now := time.Now().UTC()
	return &PromptRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
