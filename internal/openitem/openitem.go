package openitem

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("open item not found")

// OpenItem is an outstanding amount a customer still has to settle,
// e.g. an unpaid invoice tracked alongside the receipts.
type OpenItem struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Paid        bool
}

// Due reports whether the item is unpaid and due on or before the given day.
func (o *OpenItem) Due(day time.Time) bool {
	return !o.Paid && !o.DueDate.After(day)
}
