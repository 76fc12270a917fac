package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// dateRe matches DD.MM.YYYY tokens by shape only. Calendar validity is
	// not checked here; "35.13.2025" still matches. Callers that need a real
	// date parse the token and treat failures as an absent date.
	dateRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)

	// amountRe matches German monetary tokens: optional dot-grouped thousands
	// and a mandatory two-digit decimal part, e.g. "12,50" or "1.234,56".
	amountRe = regexp.MustCompile(`(?:\d{1,3}(?:\.\d{3})+|\d+),\d{2}`)
)

// DateLayout is the layout of date tokens found in receipt text.
const DateLayout = "02.01.2006"

// Fields holds the candidate values found in a receipt's text before amount
// resolution. Zero values mean the field was not found.
type Fields struct {
	Date    string            // first DD.MM.YYYY token in line order, raw
	Vendor  string            // first non-empty line, surrounding whitespace removed
	Amounts []decimal.Decimal // unique values, ascending
}

// ParseReceiptText scans ordered text lines for a date, a vendor name and
// monetary amounts. It is a pure function of its input: lines must arrive in
// source order, since the first matching line wins for both date and vendor.
func ParseReceiptText(lines []string) Fields {
	var f Fields

	for _, line := range lines {
		if f.Date == "" {
			if m := dateRe.FindString(line); m != "" {
				f.Date = m
			}
		}

		if f.Vendor == "" {
			if v := strings.TrimSpace(line); v != "" {
				f.Vendor = v
			}
		}

		if f.Date != "" && f.Vendor != "" {
			break
		}
	}

	f.Amounts = scanAmounts(strings.Join(lines, " "))

	return f
}

// scanAmounts extracts every parseable monetary token from text and returns
// the unique values sorted ascending. Unparseable tokens are dropped.
func scanAmounts(text string) []decimal.Decimal {
	tokens := amountRe.FindAllString(text, -1)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))

	var amounts []decimal.Decimal

	for _, tok := range tokens {
		d, ok := ParseAmount(tok)
		if !ok {
			continue
		}

		key := d.String()
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}

		amounts = append(amounts, d)
	}

	sort.Slice(amounts, func(i, j int) bool {
		return amounts[i].LessThan(amounts[j])
	})

	return amounts
}
