package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodCanonical(t *testing.T) {
	p, err := ParsePeriod("2025-06-09 09:00|2025-06-09 11:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 6, 9, 11, 0, 0, 0, time.UTC), p.End)
}

func TestParsePeriodWithSeconds(t *testing.T) {
	p, err := ParsePeriod("2025-06-09 09:00:00|2025-06-09 11:30:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 6, 9, 11, 30, 0, 0, time.UTC), p.End)
}

func TestParsePeriodLegacySeparator(t *testing.T) {
	// Legacy rows separate the halves with "-" even though dates
	// themselves contain dashes.
	p, err := ParsePeriod("2025-06-09 09:00-2025-06-09 11:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 6, 9, 11, 0, 0, 0, time.UTC), p.End)
}

func TestParsePeriodLegacyCrossDay(t *testing.T) {
	p, err := ParsePeriod("2025-06-09 23:00-2025-06-10 01:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC), p.End)
}

func TestParsePeriodInvalid(t *testing.T) {
	inputs := []string{
		"",
		"2025-06-09 09:00",
		"2025-06-09 09:00|",
		"2025-06-09 09:00|2025-06-09 09:00|2025-06-09 11:00",
		"not a period",
		"2025-06-09 11:00|2025-06-09 09:00", // end before start
		"2025-06-09 09:00|2025-06-09 09:00", // zero length
	}
	for _, input := range inputs {
		_, err := ParsePeriod(input)
		assert.ErrorIs(t, err, ErrInvalidPeriod, input)
	}
}

func TestPeriodStringCanonicalizes(t *testing.T) {
	p, err := ParsePeriod("2025-06-09 09:00-2025-06-09 11:00")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-09 09:00|2025-06-09 11:00", p.String())
}
