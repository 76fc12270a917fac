package ustva_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

func TestNewPeriod(t *testing.T) {
	type testCase struct {
		name    string
		year    int
		month   int
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", year: 2025, month: 6, want: "2025-06"},
		{name: "December", year: 2025, month: 12, want: "2025-12"},
		{name: "MonthZero", year: 2025, month: 0, wantErr: true},
		{name: "MonthThirteen", year: 2025, month: 13, wantErr: true},
		{name: "YearTooSmall", year: 99, month: 1, wantErr: true},
		{name: "NegativeMonth", year: 2025, month: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ustva.NewPeriod(tt.year, tt.month)

			if tt.wantErr {
				assert.ErrorIs(t, err, ustva.ErrInvalidPeriod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ustva.ParsePeriod("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.June, p.Month)

	for _, bad := range []string{"", "2025", "2025-6", "2025/06", "2025-13", "06-2025", "2025-06-01"} {
		_, err := ustva.ParsePeriod(bad)
		assert.ErrorIs(t, err, ustva.ErrInvalidPeriod, "input %q", bad)
	}
}

func TestPeriod_Bounds(t *testing.T) {
	type testCase struct {
		name      string
		year      int
		month     int
		wantStart string
		wantEnd   string
	}

	tests := []testCase{
		{name: "LeapFebruary", year: 2024, month: 2, wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "RegularFebruary", year: 2023, month: 2, wantStart: "2023-02-01", wantEnd: "2023-02-28"},
		{name: "ThirtyDays", year: 2025, month: 4, wantStart: "2025-04-01", wantEnd: "2025-04-30"},
		{name: "December", year: 2025, month: 12, wantStart: "2025-12-01", wantEnd: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ustva.NewPeriod(tt.year, tt.month)
			require.NoError(t, err)

			start, end := p.Bounds()
			assert.Equal(t, tt.wantStart, start.Format(time.DateOnly))
			assert.Equal(t, tt.wantEnd, end.Format(time.DateOnly))
		})
	}
}
