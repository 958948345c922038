// params/date_test.go
package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	s, ok := FormatDate(time.Date(2015, 12, 25, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, "2015-12-25T00:00:00.000Z", s)

	s, ok = FormatDate("tx_000094hJ9qahzBqXZwKLgM")
	assert.True(t, ok)
	assert.Equal(t, "tx_000094hJ9qahzBqXZwKLgM", s)

	_, ok = FormatDate(42)
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	now := time.Date(2016, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2015-12-25", time.Date(2015, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2015-12-25T00:00:00Z", time.Date(2015, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2015-12-25T10:11:12", time.Date(2015, 12, 25, 10, 11, 12, 0, time.UTC)},
		{"7d", time.Date(2016, 3, 8, 12, 0, 0, 0, time.UTC)},
		{"2 weeks", time.Date(2016, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"3h", time.Date(2016, 3, 15, 9, 0, 0, 0, time.UTC)},
		{"30m", time.Date(2016, 3, 15, 11, 30, 0, 0, time.UTC)},
		{"10s", time.Date(2016, 3, 15, 11, 59, 50, 0, time.UTC)},
		{"1M", time.Date(2016, 2, 15, 12, 0, 0, 0, time.UTC)},
		{"2 months", time.Date(2016, 1, 15, 12, 0, 0, 0, time.UTC)},
		{"1y", time.Date(2015, 3, 15, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	now := time.Now()
	for _, input := range []string{"", "yesterday", "7 fortnights", "d7"} {
		_, err := ParseDate(input, now)
		assert.Error(t, err, input)
	}
}
