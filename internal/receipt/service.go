package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/extract"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receipt

type Repository interface {
	CreateReceipt(ctx context.Context, rec *Record) error
	GetReceipt(ctx context.Context, id uuid.UUID) (*Record, error)
	ListReceipts(ctx context.Context, filter ListFilter) ([]*Record, error)
}

// TextExtractor supplies the ordered text lines of an uploaded document.
// Implementations must preserve source order; vendor and date detection rely
// on it.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) ([]string, error)
}

// Storage persists the raw uploaded file and returns its path.
type Storage interface {
	Save(filename string, data []byte) (string, error)
}

type ListFilter struct {
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// Service processes uploaded receipt documents into structured records.
type Service struct {
	repo      Repository
	extractor TextExtractor
	storage   Storage
	notifier  extract.Notifier
}

func NewService(repo Repository, extractor TextExtractor, storage Storage, notifier extract.Notifier) *Service {
	if notifier == nil {
		notifier = extract.SlogNotifier{}
	}

	return &Service{
		repo:      repo,
		extractor: extractor,
		storage:   storage,
		notifier:  notifier,
	}
}

// Process stores the uploaded file, extracts its text and builds a Record
// from the heuristically resolved fields. Extraction ambiguity degrades to
// absent fields and a warning per missing field; only a missing document or
// a storage fault fails the call, and then no record is persisted.
func (s *Service) Process(ctx context.Context, customerID uuid.UUID, filename string, data []byte) (*Record, error) {
	path, err := s.storage.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	lines, err := s.extractor.ExtractText(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", filename, err)
	}

	fields := extract.ParseReceiptText(lines)
	resolution := extract.Resolve(fields.Amounts)

	rec := &Record{
		CustomerID:  customerID,
		FilePath:    path,
		NetAmount:   resolution.Net,
		TaxAmount:   resolution.Tax,
		GrossAmount: resolution.Gross,
		VATRate:     resolution.VATRate,
	}

	if fields.Vendor != "" {
		rec.Supplier = &fields.Vendor
	}

	if fields.Date != "" {
		if d, err := time.Parse(extract.DateLayout, fields.Date); err == nil {
			rec.Date = &d
		}
	}

	s.reportMissing(ctx, rec, path)

	if err := s.repo.CreateReceipt(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing receipt: %w", err)
	}

	return rec, nil
}

// reportMissing emits one warning per absent critical field. The notifier
// never fails back into this flow.
func (s *Service) reportMissing(ctx context.Context, rec *Record, document string) {
	missing := func(field string) {
		s.notifier.Notify(ctx, extract.SeverityWarning, "receipt field not extracted", map[string]string{
			"document": document,
			"field":    field,
		})
	}

	if rec.Date == nil {
		missing("date")
	}

	if rec.Supplier == nil {
		missing("supplier")
	}

	if rec.NetAmount == nil {
		missing("net_amount")
	}

	if rec.TaxAmount == nil {
		missing("tax_amount")
	}

	if rec.GrossAmount == nil {
		missing("gross_amount")
	}
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetReceipt(ctx, id)
}

// List returns records matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	return s.repo.ListReceipts(ctx, filter)
}

// ReceiptsInRange returns the customer's records whose date lies in
// [start, end]. It satisfies the aggregation engine's receipt source.
func (s *Service) ReceiptsInRange(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]*Record, error) {
	return s.repo.ListReceipts(ctx, ListFilter{
		CustomerID: &customerID,
		StartDate:  &start,
		EndDate:    &end,
	})
}
