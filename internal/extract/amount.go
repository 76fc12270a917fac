package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a German-formatted monetary token into an exact decimal.
// Format examples: "1.234,56" -> 1234.56, "12,00" -> 12.00.
// Returns false when the token is not a number after removing thousands
// separators; no rounding is applied.
func ParseAmount(s string) (decimal.Decimal, bool) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}
