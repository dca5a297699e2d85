package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/day"
)

func mustDay(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := day.Parse(key)
	require.NoError(t, err)
	return d
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(nil))

	s := Summarize([]string{entity.TodoComplete, entity.TodoComplete, entity.TodoPending})
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 0, s.Incomplete)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 67, s.CompletionRate)

	s = Summarize([]string{entity.TodoComplete, entity.TodoIncomplete})
	assert.Equal(t, 50, s.CompletionRate)

	s = Summarize([]string{entity.TodoIncomplete, entity.TodoPending})
	assert.Equal(t, 0, s.CompletionRate)
}

func TestSummarizeMatchesFilteredList(t *testing.T) {
	items := []TodoItem{
		{Status: entity.TodoComplete, Title: "deploy"},
		{Status: entity.TodoPending, Title: "review"},
		{Status: entity.TodoComplete, Title: "retro"},
	}

	filtered := FilterTodos(items, entity.TodoComplete, "")
	s := Summarize(Statuses(filtered))
	assert.Equal(t, len(filtered), s.Total)
	assert.Equal(t, s.Total, s.Completed)
	assert.Equal(t, 100, s.CompletionRate)
}

func TestFilterTodos(t *testing.T) {
	items := []TodoItem{
		{ID: 1, Title: "Write Report", Note: "quarterly numbers", Status: entity.TodoPending},
		{ID: 2, Title: "standup", Note: "", Status: entity.TodoComplete},
		{ID: 3, Title: "review PR", Note: "report module", Status: entity.TodoComplete},
	}

	out := FilterTodos(items, "", "")
	assert.Len(t, out, 3)

	out = FilterTodos(items, entity.TodoComplete, "")
	assert.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ID)

	// q matches title and note, case-insensitive.
	out = FilterTodos(items, "", "REPORT")
	assert.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 3, out[1].ID)

	out = FilterTodos(items, entity.TodoComplete, "report")
	assert.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)

	out = FilterTodos(items, entity.TodoIncomplete, "")
	assert.Empty(t, out)
}

func TestSortTodosDesc(t *testing.T) {
	d1 := mustDay(t, "2026-03-01")
	d2 := mustDay(t, "2026-03-02")
	early := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	items := []TodoItem{
		{ID: 1, Day: d1, UpdatedAt: late},
		{ID: 2, Day: d2, UpdatedAt: early},
		{ID: 3, Day: d2, UpdatedAt: late},
	}

	SortTodosDesc(items)

	assert.Equal(t, []int{3, 2, 1}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestStatusFacet(t *testing.T) {
	cases := []struct {
		token string
		want  string
		ok    bool
	}{
		{"", "", true},
		{"all", "", true},
		{"complete", entity.TodoComplete, true},
		{"incomplete", entity.TodoIncomplete, true},
		{"status", entity.TodoPending, true},
		{"pending", entity.TodoPending, true},
		{"COMPLETE", entity.TodoComplete, true},
		{"done", "", false},
	}
	for _, tc := range cases {
		got, ok := StatusFacet(tc.token)
		assert.Equal(t, tc.ok, ok, tc.token)
		assert.Equal(t, tc.want, got, tc.token)
	}
}

func TestSummarizeAttendance(t *testing.T) {
	from := mustDay(t, "2026-03-02")
	to := mustDay(t, "2026-03-08")
	checkedOut := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	entries := []AttendanceEntry{
		{Day: from, CheckInAt: checkedOut.Add(-9 * time.Hour), CheckOutAt: &checkedOut, WorkMinutes: 540},
		{Day: mustDay(t, "2026-03-03"), CheckInAt: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), WorkMinutes: 0},
	}

	totals := SummarizeAttendance(entries, from, to)
	assert.Equal(t, 2, totals.DaysPresent)
	assert.Equal(t, 5, totals.DaysAbsent)
	assert.Equal(t, 540, totals.TotalWorkMinutes)

	// present + absent always covers the whole range
	assert.Equal(t, day.CountInclusive(from, to), totals.DaysPresent+totals.DaysAbsent)

	empty := SummarizeAttendance(nil, from, to)
	assert.Equal(t, 0, empty.DaysPresent)
	assert.Equal(t, 7, empty.DaysAbsent)
}

func TestLatestStatus(t *testing.T) {
	assert.Equal(t, StatusUnknown, LatestStatus(nil))

	out := time.Now()
	assert.Equal(t, StatusPresent, LatestStatus(&AttendanceEntry{CheckInAt: out.Add(-8 * time.Hour), CheckOutAt: &out}))
	assert.Equal(t, StatusCheckedIn, LatestStatus(&AttendanceEntry{CheckInAt: out.Add(-time.Hour)}))
	assert.Equal(t, StatusAbsent, LatestStatus(&AttendanceEntry{}))
}

func TestHours(t *testing.T) {
	assert.Equal(t, 0.0, Hours(480, false))
	assert.Equal(t, 8.0, Hours(480, true))
	assert.Equal(t, 1.5, Hours(90, true))
	assert.Equal(t, 1.67, Hours(100, true))
	assert.Equal(t, 0.0, Hours(0, true))
}

func TestMatchesIdentity(t *testing.T) {
	id := Identity{ID: 7, Username: "Barno", Email: "barno@corp.io"}

	assert.True(t, MatchesIdentity(id, ""))
	assert.True(t, MatchesIdentity(id, "barno"))
	assert.True(t, MatchesIdentity(id, "CORP.IO"))
	assert.False(t, MatchesIdentity(id, "zilola"))
}

func TestGroupMatches(t *testing.T) {
	g := Group{
		Lead: Identity{ID: 1, Username: "aziz", Email: "aziz@corp.io"},
		Members: []Identity{
			{ID: 2, Username: "barno", Email: "barno@corp.io"},
			{ID: 3, Username: "davron", Email: "davron@corp.io"},
		},
	}
	todos := map[int][]TodoItem{
		3: {{Title: "migrate billing", Note: "prod db"}},
	}

	assert.True(t, GroupMatches(g, "", nil))
	assert.True(t, GroupMatches(g, "aziz", nil))
	assert.True(t, GroupMatches(g, "barno", nil))
	assert.True(t, GroupMatches(g, "billing", todos))
	assert.True(t, GroupMatches(g, "prod", todos))
	assert.False(t, GroupMatches(g, "billing", nil))
	assert.False(t, GroupMatches(g, "nobody", todos))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 50))
	assert.Equal(t, 50, Clamp(99, 1, 50))
	assert.Equal(t, 6, Clamp(6, 1, 50))
}

func TestPaginate(t *testing.T) {
	lo, hi := Paginate(10, 1, 4)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)

	lo, hi = Paginate(10, 3, 4)
	assert.Equal(t, 8, lo)
	assert.Equal(t, 10, hi)

	// past the end comes back empty
	lo, hi = Paginate(10, 9, 4)
	assert.Equal(t, lo, hi)

	// consecutive pages tile the whole list exactly once
	seen := 0
	for page := 1; page <= 5; page++ {
		lo, hi = Paginate(17, page, 4)
		seen += hi - lo
	}
	assert.Equal(t, 17, seen)
}

func TestPickLeastLoadedLead(t *testing.T) {
	_, ok := PickLeastLoadedLead(nil)
	assert.False(t, ok)

	id, ok := PickLeastLoadedLead(map[int]int{5: 3, 9: 1, 2: 4})
	assert.True(t, ok)
	assert.Equal(t, 9, id)

	// tie breaks on the lowest id
	id, ok = PickLeastLoadedLead(map[int]int{8: 2, 4: 2, 6: 2})
	assert.True(t, ok)
	assert.Equal(t, 4, id)
}
