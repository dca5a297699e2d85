// Package day normalizes calendar days to UTC midnight. Every work_day value
// stored or compared in this system goes through here, so day identity never
// depends on the server timezone.
package day

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// Layout is the wire format for day keys.
const Layout = "2006-01-02"

var keyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse converts a YYYY-MM-DD key into UTC midnight of that day.
func Parse(key string) (time.Time, error) {
	if !keyRe.MatchString(key) {
		return time.Time{}, errors.Errorf("invalid day %q, use YYYY-MM-DD", key)
	}
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day %q", key)
	}
	return t.UTC(), nil
}

// StartOfDayUTC truncates t to UTC midnight.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayKeyUTC returns today's key in UTC.
func TodayKeyUTC() string {
	return time.Now().UTC().Format(Layout)
}

// Key formats a normalized day back into its wire form.
func Key(t time.Time) string {
	return t.UTC().Format(Layout)
}

// AddDays moves a normalized day by n whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// CountInclusive returns the number of calendar days in [from, to]. Both
// arguments must be normalized. A reversed range counts zero days.
func CountInclusive(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// MonthRangeUTC returns [start, end) covering the given month.
func MonthRangeUTC(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
