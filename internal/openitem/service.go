package openitem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=openitem

type Repository interface {
	CreateOpenItem(ctx context.Context, item *OpenItem) error
	ListOpenItems(ctx context.Context, filter ListFilter) ([]*OpenItem, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	CustomerID *uuid.UUID
	Unpaid     bool
	DueBy      *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CustomerID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*OpenItem, error) {
	if strings.TrimSpace(params.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}

	if params.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	item := &OpenItem{
		CustomerID:  params.CustomerID,
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		DueDate:     params.DueDate,
	}
	if err := s.repo.CreateOpenItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*OpenItem, error) {
	return s.repo.ListOpenItems(ctx, filter)
}

// ListDue returns unpaid items due on or before the given day, across all
// customers. The payment reminder job works off this view.
func (s *Service) ListDue(ctx context.Context, day time.Time) ([]*OpenItem, error) {
	return s.repo.ListOpenItems(ctx, ListFilter{Unpaid: true, DueBy: &day})
}

func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkPaid(ctx, id)
}
