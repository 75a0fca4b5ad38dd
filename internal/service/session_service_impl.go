package service

import (
	"context"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Save(ctx context.Context, sess *domain.Session) error {
	return s.sessions.Save(ctx, sess)
}

func (s *sessionService) Load(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListIDs(ctx context.Context) ([]string, error) {
	return s.sessions.ListIDs(ctx)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
