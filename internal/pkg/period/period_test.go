package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	month, year, err := Parse("Jan-2025")
	require.NoError(t, err)
	assert.Equal(t, time.January, month)
	assert.Equal(t, 2025, year)

	month, year, err = Parse("Agu-2024")
	require.NoError(t, err)
	assert.Equal(t, time.August, month)
	assert.Equal(t, 2024, year)

	for _, label := range []string{"", "Jan", "January-2025", "Jan-20xx", "jan-2025", "Jan-1999"} {
		_, _, err := Parse(label)
		assert.Error(t, err, "Parse(%q) should fail", label)
	}
}

func TestFromDate(t *testing.T) {
	assert.Equal(t, "Jan-2025", FromDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Des-2024", FromDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Mei-2026", FromDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateRange(t *testing.T) {
	start, end, err := DateRange("Feb-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	_, _, err = DateRange("bogus")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		label := FromDate(time.Date(2025, m, 10, 0, 0, 0, 0, time.UTC))
		month, year, err := Parse(label)
		require.NoError(t, err)
		assert.Equal(t, m, month)
		assert.Equal(t, 2025, year)
	}
}
