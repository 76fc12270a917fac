package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwehmeyer/belegwerk/internal/extract"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name   string
		token  string
		want   string
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "GroupedThousands",
			token:  "1.234,56",
			want:   "1234.56",
			wantOK: true,
		},
		{
			name:   "PlainAmount",
			token:  "12,00",
			want:   "12",
			wantOK: true,
		},
		{
			name:   "MillionsGrouping",
			token:  "1.234.567,89",
			want:   "1234567.89",
			wantOK: true,
		},
		{
			name:   "NotANumber",
			token:  "not-a-number",
			wantOK: false,
		},
		{
			name:   "Empty",
			token:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.ParseAmount(tt.token)

			if !tt.wantOK {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_Exactness(t *testing.T) {
	// Values that drift under binary floating point must survive intact.
	got, ok := extract.ParseAmount("0,10")
	require.True(t, ok)

	sum := got
	for range 9 {
		sum = sum.Add(got)
	}

	assert.Equal(t, "1.00", sum.StringFixed(2))
}
