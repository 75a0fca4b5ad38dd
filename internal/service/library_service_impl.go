package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/repository"
)

type libraryService struct {
	prompts repository.PromptRepo
}

func NewLibraryService(prompts repository.PromptRepo) LibraryService {
	return &libraryService{prompts: prompts}
}

// Save upserts by name: an existing record keeps its id and use count,
// a new one is created as-is.
func (s *libraryService) Save(ctx context.Context, p *domain.PromptRecord) error {
	if p.Name == "" {
		return fmt.Errorf("prompt name is required")
	}
	if p.Content == "" {
		return fmt.Errorf("prompt content is required")
	}

	existing, err := s.prompts.GetByName(ctx, p.Name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("checking for existing prompt: %w", err)
		}
		return s.prompts.Create(ctx, p)
	}

	existing.Description = p.Description
	existing.Content = p.Content
	existing.Category = p.Category
	existing.Tags = p.Tags
	existing.UpdatedAt = time.Now().UTC()
	return s.prompts.Update(ctx, existing)
}

// Load fetches a prompt by name and bumps its use count.
func (s *libraryService) Load(ctx context.Context, name string) (*domain.PromptRecord, error) {
	p, err := s.prompts.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.prompts.IncrementUseCount(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("recording prompt use: %w", err)
	}
	p.UseCount++
	return p, nil
}

func (s *libraryService) List(ctx context.Context, category string) ([]*domain.PromptRecord, error) {
	return s.prompts.List(ctx, category)
}

func (s *libraryService) Search(ctx context.Context, term string) ([]*domain.PromptRecord, error) {
	if term == "" {
		return s.prompts.List(ctx, "")
	}
	return s.prompts.Search(ctx, term)
}

func (s *libraryService) ListByTag(ctx context.Context, tag string) ([]*domain.PromptRecord, error) {
	return s.prompts.ListByTag(ctx, tag)
}

func (s *libraryService) Delete(ctx context.Context, name string) error {
	p, err := s.prompts.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.prompts.Delete(ctx, p.ID)
}

// exportFile is the on-disk shape of a library export.
type exportFile struct {
	Version    int                    `json:"version"`
	ExportedAt time.Time              `json:"exported_at"`
	Prompts    []*domain.PromptRecord `json:"prompts"`
}

func (s *libraryService) ExportAll(ctx context.Context, path string) (int, error) {
	prompts, err := s.prompts.List(ctx, "")
	if err != nil {
		return 0, err
	}

	out := exportFile{
		Version:    1,
		ExportedAt: time.Now().UTC(),
		Prompts:    prompts,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("writing export file: %w", err)
	}
	return len(prompts), nil
}

// ImportAll loads an export file and saves each record, skipping names
// that already exist. Individual failures are collected, not fatal.
func (s *libraryService) ImportAll(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var in exportFile
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding import file: %w", err)
	}

	result := &ImportResult{}
	for _, p := range in.Prompts {
		if p.Name == "" || p.Content == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("record %q: missing name or content", p.Name))
			continue
		}

		_, err := s.prompts.GetByName(ctx, p.Name)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			result.Errors = append(result.Errors, fmt.Sprintf("record %q: %v", p.Name, err))
			continue
		}

		record := domain.NewPromptRecord(p.Name, p.Content)
		record.Description = p.Description
		record.Category = p.Category
		record.Tags = p.Tags
		if err := s.prompts.Create(ctx, record); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %q: %v", p.Name, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}
