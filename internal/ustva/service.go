package ustva

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ustva

type SummaryRepository interface {
	FindSummary(ctx context.Context, customerID uuid.UUID, period string) (*Summary, error)
	CreateSummary(ctx context.Context, summary *Summary) error
	ListSummaries(ctx context.Context, customerID uuid.UUID) ([]*Summary, error)
}

// Service wraps the aggregation engine with the first-write-wins persistence
// policy: a period that already has a stored summary is never recomputed.
type Service struct {
	engine *Engine
	repo   SummaryRepository
}

func NewService(engine *Engine, repo SummaryRepository) *Service {
	return &Service{engine: engine, repo: repo}
}

// Generate returns the stored summary for the customer and period if one
// exists, otherwise calculates, persists and returns a fresh one. The second
// return value reports whether a new summary was created. Two concurrent
// calls for the same key are serialized by the repository's uniqueness
// constraint; the loser of that race returns the stored winner.
func (s *Service) Generate(ctx context.Context, customerID uuid.UUID, year, month int) (*Summary, bool, error) {
	period, err := NewPeriod(year, month)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindSummary(ctx, customerID, period.String())
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("looking up summary %s: %w", period, err)
	}

	summary, err := s.engine.Calculate(ctx, customerID, year, month)
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.CreateSummary(ctx, summary); err != nil {
		if errors.Is(err, ErrExists) {
			stored, findErr := s.repo.FindSummary(ctx, customerID, period.String())
			if findErr != nil {
				return nil, false, fmt.Errorf("refetching summary %s: %w", period, findErr)
			}

			return stored, false, nil
		}

		return nil, false, fmt.Errorf("storing summary %s: %w", period, err)
	}

	return summary, true, nil
}

// List returns every stored summary of the customer.
func (s *Service) List(ctx context.Context, customerID uuid.UUID) ([]*Summary, error) {
	return s.repo.ListSummaries(ctx, customerID)
}
