package ustva

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrNotFound      = errors.New("summary not found")
	ErrExists        = errors.New("summary already exists for period")
)

// Period identifies one calendar month of one year.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month and returns the corresponding Period.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d outside 1-12", ErrInvalidPeriod, month)
	}

	if year < 1000 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

// ParsePeriod parses a period in YYYY-MM form.
func ParsePeriod(s string) (Period, error) {
	var year, month int
	if _, err := fmt.Sscanf(s, "%4d-%2d", &year, &month); err != nil || len(s) != 7 || s[4] != '-' {
		return Period{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidPeriod, s)
	}

	return NewPeriod(year, month)
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Bounds returns the first and last calendar day of the period in UTC.
// Month lengths and leap years are handled by date normalization.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)

	return start, end
}

// Summary holds the aggregated UStVA figures for one customer and period.
// All decimals are quantized to two fractional digits. Liability always
// equals SalesTax - InputTax.
type Summary struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Period      string // YYYY-MM
	NetSum      decimal.Decimal
	TaxSum      decimal.Decimal
	GrossSum    decimal.Decimal
	SalesTax    decimal.Decimal // Umsatzsteuer
	InputTax    decimal.Decimal // Vorsteuer
	Liability   decimal.Decimal // Zahllast
	GeneratedAt time.Time
}

// Derive fills the tax figures from the sums. Every record is treated as a
// sales invoice, so the input tax stays zero; purchase invoices are not
// distinguished yet.
func (s *Summary) Derive() {
	s.SalesTax = s.TaxSum.Round(2)
	s.InputTax = decimal.Zero.Round(2)
	s.Liability = s.SalesTax.Sub(s.InputTax)
}
