package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCodes(t *testing.T) {
	assert.Equal(t, []string{"GRU", "MAO", "VCP"}, NormalizeCodes([]string{" vcp", "GRU", "gru ", "", "MAO"}))
	assert.Empty(t, NormalizeCodes(nil))
}

func TestCarrierFromService(t *testing.T) {
	assert.Equal(t, "LATAM", CarrierFromService("latam Expresso"))
	assert.Equal(t, "GOL", CarrierFromService("  GOL  "))
	assert.Equal(t, "", CarrierFromService(" "))
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)

	d, err = ParseClock("23:59:30")
	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour+59*time.Minute+30*time.Second, d)

	d, err = ParseClock("8:30")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)

	d, err = ParseClock(" 0:05 ")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d)

	_, err = ParseClock("")
	assert.ErrorIs(t, err, ErrEmptyValue)

	for _, bad := range []string{"25:00", "08:60", "0830", "8:", "08:30:00:00", "ab:cd"} {
		_, err = ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestCombineDateClock(t *testing.T) {
	date := time.Date(2025, time.March, 3, 17, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 3, 6, 15, 0, 0, time.UTC), CombineDateClock(date, 6*time.Hour+15*time.Minute))
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), TruncateToDate(date))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"05/01/2025", "2025-01-05", "05-01-2025", "05/jan/2025", "05/JAN/25"} {
		t.Run(value, func(t *testing.T) {
			got, err := ParseDate(value)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseDate("")
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = ParseDate("someday")
	assert.Error(t, err)
}

func TestParseTariff(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"12.5", ptr(12.5)},
		{"R$ 12,50", ptr(12.5)},
		{"1.234,56", ptr(1234.56)},
		{"-", nil},
		{"n/a", nil},
		{"", nil},
		{"abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseTariff(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func ptr(v float64) *float64 {
	return &v
}
