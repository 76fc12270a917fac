package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwehmeyer/belegwerk/internal/extract"
)

func TestParseReceiptText(t *testing.T) {
	type testCase struct {
		name        string
		lines       []string
		wantDate    string
		wantVendor  string
		wantAmounts []string
	}

	tests := []testCase{
		{
			name: "TypicalReceipt",
			lines: []string{
				"Bäckerei Schmidt GmbH",
				"Hauptstraße 12, 10115 Berlin",
				"Rechnung Nr. 2025-0815",
				"Datum: 15.06.2025",
				"Netto 100,00",
				"USt 19% 19,00",
				"Gesamt 119,00",
			},
			wantDate:    "15.06.2025",
			wantVendor:  "Bäckerei Schmidt GmbH",
			wantAmounts: []string{"19", "100", "119"},
		},
		{
			name: "FirstDateWins",
			lines: []string{
				"Lieferdatum 01.06.2025",
				"Rechnungsdatum 30.06.2025",
			},
			wantDate:   "01.06.2025",
			wantVendor: "Lieferdatum 01.06.2025",
		},
		{
			name: "VendorSkipsBlankLines",
			lines: []string{
				"   ",
				"",
				"  Autohaus Weber  ",
			},
			wantVendor: "Autohaus Weber",
		},
		{
			name: "ImplausibleDateShapeStillMatches",
			lines: []string{
				"gedruckt am 35.13.2025",
			},
			wantDate:   "35.13.2025",
			wantVendor: "gedruckt am 35.13.2025",
		},
		{
			name: "DuplicateAmountsCollapse",
			lines: []string{
				"Position 1: 50,00",
				"Position 2: 50,00",
				"Summe 100,00",
			},
			wantDate:    "",
			wantVendor:  "Position 1: 50,00",
			wantAmounts: []string{"50", "100"},
		},
		{
			name: "GroupedThousandsToken",
			lines: []string{
				"Gesamtbetrag 1.234,56 EUR",
			},
			wantVendor:  "Gesamtbetrag 1.234,56 EUR",
			wantAmounts: []string{"1234.56"},
		},
		{
			name:  "EmptyDocument",
			lines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.ParseReceiptText(tt.lines)

			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantVendor, got.Vendor)

			require.Len(t, got.Amounts, len(tt.wantAmounts))

			for i, want := range tt.wantAmounts {
				assert.Equal(t, want, got.Amounts[i].String(), "amount %d", i)
			}
		})
	}
}

func TestParseReceiptText_AmountsSortedAscending(t *testing.T) {
	got := extract.ParseReceiptText([]string{"119,00 19,00 100,00"})

	require.Len(t, got.Amounts, 3)

	for i := 1; i < len(got.Amounts); i++ {
		assert.True(t, got.Amounts[i-1].LessThan(got.Amounts[i]))
	}
}
