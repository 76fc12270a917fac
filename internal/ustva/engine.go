package ustva

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/receipt"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=ustva

// ReceiptSource supplies the receipt records of one customer whose date lies
// within [start, end].
type ReceiptSource interface {
	ReceiptsInRange(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]*receipt.Record, error)
}

// Engine aggregates extracted receipt amounts into monthly UStVA summaries.
// It holds no mutable state; concurrent Calculate calls are independent.
type Engine struct {
	receipts ReceiptSource
}

func NewEngine(receipts ReceiptSource) *Engine {
	return &Engine{receipts: receipts}
}

// Calculate sums the net, tax and gross amounts of all receipts the customer
// has in the given month and derives the tax liability. Absent amounts count
// as zero. The result is deterministic for an unchanged record set; nothing
// is persisted here.
func (e *Engine) Calculate(ctx context.Context, customerID uuid.UUID, year, month int) (*Summary, error) {
	period, err := NewPeriod(year, month)
	if err != nil {
		return nil, err
	}

	start, end := period.Bounds()

	records, err := e.receipts.ReceiptsInRange(ctx, customerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching receipts for %s: %w", period, err)
	}

	summary := &Summary{
		CustomerID: customerID,
		Period:     period.String(),
	}

	for _, rec := range records {
		if rec.NetAmount != nil {
			summary.NetSum = summary.NetSum.Add(*rec.NetAmount)
		}

		if rec.TaxAmount != nil {
			summary.TaxSum = summary.TaxSum.Add(*rec.TaxAmount)
		}

		if rec.GrossAmount != nil {
			summary.GrossSum = summary.GrossSum.Add(*rec.GrossAmount)
		}
	}

	summary.NetSum = summary.NetSum.Round(2)
	summary.TaxSum = summary.TaxSum.Round(2)
	summary.GrossSum = summary.GrossSum.Round(2)
	summary.Derive()

	return summary, nil
}
