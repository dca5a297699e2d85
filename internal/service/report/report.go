// Package report holds the in-memory aggregation used by the team rollup
// endpoints. Everything here is a pure transformation over rows the
// repositories have already fetched: summaries are always recomputed from the
// entry set actually being returned, so counts and listed entries cannot
// disagree.
package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/day"
)

// Stats is the todo summary shape shared by member, team and overall levels.
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Incomplete     int `json:"incomplete"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}

// Summarize folds todo statuses into counts. CompletionRate is
// round(100 * completed / total), 0 when total is 0.
func Summarize(statuses []string) Stats {
	s := Stats{Total: len(statuses)}
	for _, st := range statuses {
		switch st {
		case entity.TodoComplete:
			s.Completed++
		case entity.TodoIncomplete:
			s.Incomplete++
		case entity.TodoPending:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}

// TodoItem is the row shape the rollups operate on.
type TodoItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Day       time.Time `json:"-"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DayKey    string    `json:"day"`
}

// Statuses projects the status column out of a todo list.
func Statuses(items []TodoItem) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.Status
	}
	return out
}

// FilterTodos applies the status facet (an entity status value, or "" for
// all) and the free-text filter against title and note. Order is preserved.
func FilterTodos(items []TodoItem, status, q string) []TodoItem {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]TodoItem, 0, len(items))
	for _, t := range items {
		if status != "" && t.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Note), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTodosDesc orders newest-day-first, then newest-updated-first.
func SortTodosDesc(items []TodoItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Day.Equal(items[j].Day) {
			return items[i].Day.After(items[j].Day)
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}

// StatusFacet maps a wire token onto an entity status value. The PENDING
// facet is spelled "status" on the wire for historical reasons; "pending" is
// accepted as an alias. Returns ok=false for unknown tokens.
func StatusFacet(token string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "all":
		return "", true
	case "complete":
		return entity.TodoComplete, true
	case "incomplete":
		return entity.TodoIncomplete, true
	case "status", "pending":
		return entity.TodoPending, true
	default:
		return "", false
	}
}

// AttendanceEntry is one (account, day) attendance row.
type AttendanceEntry struct {
	Day         time.Time
	CheckInAt   time.Time
	CheckOutAt  *time.Time
	WorkMinutes int
}

// AttendanceTotals is the per-account summary over a day range.
type AttendanceTotals struct {
	DaysPresent      int `json:"daysPresent"`
	DaysAbsent       int `json:"daysAbsent"`
	TotalWorkMinutes int `json:"totalWorkMinutes"`
}

// SummarizeAttendance computes presence over the inclusive range [from, to].
// A day with any check-in counts as present; stored work minutes accumulate
// as-is (0 until checkout). Absent days are whatever remains of the range,
// without distinguishing "not yet employed" from "forgot to check in".
func SummarizeAttendance(entries []AttendanceEntry, from, to time.Time) AttendanceTotals {
	var t AttendanceTotals
	for _, e := range entries {
		if !e.CheckInAt.IsZero() {
			t.DaysPresent++
			t.TotalWorkMinutes += e.WorkMinutes
		}
	}
	t.DaysAbsent = day.CountInclusive(from, to) - t.DaysPresent
	return t
}

// Latest-status classification tokens.
const (
	StatusPresent   = "present"
	StatusCheckedIn = "checkedin"
	StatusAbsent    = "absent"
	StatusUnknown   = "unknown"
)

// LatestStatus classifies an account's most recent attendance record,
// independent of any range filter.
func LatestStatus(latest *AttendanceEntry) string {
	if latest == nil {
		return StatusUnknown
	}
	if latest.CheckOutAt != nil {
		return StatusPresent
	}
	if !latest.CheckInAt.IsZero() {
		return StatusCheckedIn
	}
	return StatusAbsent
}

// Hours converts stored work minutes into the graph unit: 0 until the entry
// is checked out, otherwise minutes/60 rounded to two decimals.
func Hours(workMinutes int, checkedOut bool) float64 {
	if !checkedOut {
		return 0
	}
	return math.Round(float64(workMinutes)/60*100) / 100
}

// Identity is the searchable slice of an account.
type Identity struct {
	ID       int
	Username string
	Email    string
}

// MatchesIdentity is the case-insensitive free-text match against an
// account's display name and email. An empty query matches.
func MatchesIdentity(id Identity, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(id.Username), q) ||
		strings.Contains(strings.ToLower(id.Email), q)
}

// Group is one lead with its members, the unit the admin rollups filter and
// paginate over.
type Group struct {
	Lead    Identity
	Members []Identity
}

// GroupMatches implements the group retention predicate: the group survives
// when the lead matches, any member matches, or any member's todo content in
// the queried range matches. todosByUser must hold the range-filtered (but
// not facet-filtered) todos per member.
func GroupMatches(g Group, q string, todosByUser map[int][]TodoItem) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if MatchesIdentity(g.Lead, q) {
		return true
	}
	for _, m := range g.Members {
		if MatchesIdentity(m, q) {
			return true
		}
		for _, t := range todosByUser[m.ID] {
			if strings.Contains(strings.ToLower(t.Title), q) ||
				strings.Contains(strings.ToLower(t.Note), q) {
				return true
			}
		}
	}
	return false
}

// Clamp bounds n to [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Paginate returns the [lo, hi) slice bounds for a 1-based page over total
// items. Pages past the end come back empty.
func Paginate(total, page, size int) (int, int) {
	lo := (page - 1) * size
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// PickLeastLoadedLead selects the active lead with the fewest members,
// breaking ties on the lowest id. Not atomic against concurrent signups;
// the storage layer does not serialize assignment.
func PickLeastLoadedLead(memberCounts map[int]int) (int, bool) {
	best, found := 0, false
	for id, n := range memberCounts {
		if !found || n < memberCounts[best] || (n == memberCounts[best] && id < best) {
			best, found = id, true
		}
	}
	return best, found
}
