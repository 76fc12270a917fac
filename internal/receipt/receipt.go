package receipt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("receipt not found")

// Record is the structured result of processing one uploaded document.
// Amount and date fields are nil when extraction could not determine them;
// a record with absent fields is still a valid record.
type Record struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	FilePath    string
	Date        *time.Time
	NetAmount   *decimal.Decimal
	TaxAmount   *decimal.Decimal
	GrossAmount *decimal.Decimal
	VATRate     *int // percent; set only when net and tax are known and net != 0
	Supplier    *string
	UploadedAt  time.Time
}
