package day

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.UTC, d.Location())

	for _, bad := range []string{"", "2026-3-05", "05-03-2026", "2026-03-05T00:00:00Z", "yesterday", "2026-13-40"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	d, err := Parse("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", Key(d))
}

func TestStartOfDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 02:30 on Mar 6 in UTC+5 is still Mar 5 in UTC.
	local := time.Date(2026, 3, 6, 2, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), StartOfDayUTC(local))
}

func TestAddDays(t *testing.T) {
	d, err := Parse("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", Key(AddDays(d, 1)))
}

func TestCountInclusive(t *testing.T) {
	from, err := Parse("2026-03-02")
	require.NoError(t, err)
	to, err := Parse("2026-03-08")
	require.NoError(t, err)

	assert.Equal(t, 7, CountInclusive(from, to))
	assert.Equal(t, 1, CountInclusive(from, from))
	assert.Equal(t, 0, CountInclusive(to, from))
}

func TestMonthRangeUTC(t *testing.T) {
	start, end := MonthRangeUTC(2026, 2)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = MonthRangeUTC(2026, 12)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 31, CountInclusive(start, AddDays(end, -1)))
}
