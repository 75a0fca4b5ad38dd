package service

import (
	"context"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

type LibraryService interface {
	Save(ctx context.Context, p *domain.PromptRecord) error
	Load(ctx context.Context, name string) (*domain.PromptRecord, error)
	List(ctx context.Context, category string) ([]*domain.PromptRecord, error)
	Search(ctx context.Context, term string) ([]*domain.PromptRecord, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.PromptRecord, error)
	Delete(ctx context.Context, name string) error
	ExportAll(ctx context.Context, path string) (int, error)
	ImportAll(ctx context.Context, path string) (*ImportResult, error)
}

// ImportResult holds the outcome of a library import.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

type SessionService interface {
	Save(ctx context.Context, s *domain.Session) error
	Load(ctx context.Context, id string) (*domain.Session, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
