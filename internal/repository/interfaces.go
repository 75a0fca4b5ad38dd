package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers test
// with errors.Is.
var ErrNotFound = errors.New("not found")

type PromptRepo interface {
	Create(ctx context.Context, p *domain.PromptRecord) error
	GetByID(ctx context.Context, id string) (*domain.PromptRecord, error)
	GetByName(ctx context.Context, name string) (*domain.PromptRecord, error)
	List(ctx context.Context, category string) ([]*domain.PromptRecord, error)
	Search(ctx context.Context, term string) ([]*domain.PromptRecord, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.PromptRecord, error)
	Update(ctx context.Context, p *domain.PromptRecord) error
	IncrementUseCount(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SessionRepo interface {
	Save(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
