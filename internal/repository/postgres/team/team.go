package team

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/day"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/service/report"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetMemberTodoRows builds the lead's member-by-member todo rollup. Pagination
// runs over members; the overall summary is recomputed from the returned
// page's entries only.
func (r Repository) GetMemberTodoRows(ctx context.Context, filter RangeFilter) (MemberTodoList, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleLead)
	if err != nil {
		return MemberTodoList{}, err
	}

	from, toExclusive, err := parseRange(filter)
	if err != nil {
		return MemberTodoList{}, err
	}

	facet, err := statusFacet(filter.Status)
	if err != nil {
		return MemberTodoList{}, err
	}

	q := queryText(filter.Q)
	page := report.Clamp(intOr(filter.Page, 1), 1, 10000)
	pageSize := report.Clamp(intOr(filter.PageSize, 10), 1, 100)

	whereQuery := memberWhereQuery(claims.UserId, q)

	var total int
	if err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT count(id) FROM users %s`, whereQuery)).Scan(&total); err != nil {
		return MemberTodoList{}, web.NewRequestError(errors.Wrap(err, "counting members"), http.StatusInternalServerError)
	}

	memberQuery := fmt.Sprintf(`
		SELECT id, username, email, is_active
		FROM users %s
		ORDER BY username asc
		LIMIT %d OFFSET %d
	`, whereQuery, pageSize, (page-1)*pageSize)

	rows, err := r.QueryContext(ctx, memberQuery)
	if err != nil {
		return MemberTodoList{}, web.NewRequestError(errors.Wrap(err, "selecting members"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var members []MemberUser
	for rows.Next() {
		var m MemberUser
		if err = rows.Scan(&m.ID, &m.Username, &m.Email, &m.IsActive); err != nil {
			return MemberTodoList{}, web.NewRequestError(errors.Wrap(err, "scanning member"), http.StatusInternalServerError)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return MemberTodoList{}, err
	}

	list := MemberTodoList{
		Rows:    []MemberTodoRow{},
		Total:   total,
		Overall: report.Summarize(nil),
	}
	if len(members) == 0 {
		return list, nil
	}

	ids := make([]int, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}

	byUser, err := r.todosInRange(ctx, ids, from, toExclusive, facet, q, "created_at")
	if err != nil {
		return MemberTodoList{}, err
	}

	var pageTodos []report.TodoItem
	for _, m := range members {
		memberTodos := byUser[m.ID]
		if memberTodos == nil {
			memberTodos = []report.TodoItem{}
		}
		list.Rows = append(list.Rows, MemberTodoRow{
			User:  m,
			Todos: memberTodos,
			Stats: report.Summarize(report.Statuses(memberTodos)),
		})
		pageTodos = append(pageTodos, memberTodos...)
	}
	list.Overall = report.Summarize(report.Statuses(pageTodos))

	return list, nil
}

// GetTodoTeams builds the admin rollup over every (lead, members) group. The
// free-text filter retains whole groups (lead identity, member identity or
// member todo content in range); pagination and the overall summary then run
// over the retained group list.
func (r Repository) GetTodoTeams(ctx context.Context, filter RangeFilter) (TodoTeamList, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return TodoTeamList{}, err
	}

	from, toExclusive, err := parseRange(filter)
	if err != nil {
		return TodoTeamList{}, err
	}

	facet, err := statusFacet(filter.Status)
	if err != nil {
		return TodoTeamList{}, err
	}

	q := queryText(filter.Q)
	page := report.Clamp(intOr(filter.Page, 1), 1, 10000)
	pageSize := report.Clamp(intOr(filter.PageSize, 6), 1, 50)

	groups, err := r.groups(ctx, `role = 'LEAD'`, false)
	if err != nil {
		return TodoTeamList{}, err
	}

	var memberIDs []int
	for _, g := range groups {
		for _, m := range g.Members {
			memberIDs = append(memberIDs, m.ID)
		}
	}

	// Range-filtered but not facet-filtered: group retention looks at todo
	// content regardless of the status facet.
	rangeTodos := map[int][]report.TodoItem{}
	if len(memberIDs) > 0 {
		rangeTodos, err = r.todosInRange(ctx, memberIDs, from, toExclusive, "", "", "updated_at")
		if err != nil {
			return TodoTeamList{}, err
		}
	}

	var retained []report.Group
	for _, g := range groups {
		if report.GroupMatches(g, q, rangeTodos) {
			retained = append(retained, g)
		}
	}

	list := TodoTeamList{
		Teams:      []TodoTeam{},
		TotalTeams: len(retained),
		Overall:    report.Summarize(nil),
	}

	lo, hi := report.Paginate(len(retained), page, pageSize)

	var pageTodos []report.TodoItem
	for _, g := range retained[lo:hi] {
		team := TodoTeam{
			LeadID:       g.Lead.ID,
			LeadUsername: g.Lead.Username,
			LeadEmail:    g.Lead.Email,
			MembersCount: len(g.Members),
			Members:      []TodoTeamMember{},
		}

		var teamTodos []report.TodoItem
		for _, m := range g.Members {
			memberTodos := report.FilterTodos(rangeTodos[m.ID], facet, q)
			report.SortTodosDesc(memberTodos)
			stats := report.Summarize(report.Statuses(memberTodos))

			member := TodoTeamMember{
				UserID:         m.ID,
				Username:       m.Username,
				Email:          m.Email,
				TotalTodos:     stats.Total,
				Completed:      stats.Completed,
				Incomplete:     stats.Incomplete,
				Pending:        stats.Pending,
				CompletionRate: stats.CompletionRate,
				LastTodoStatus: lastStatus(memberTodos),
				Todos:          memberTodos,
			}
			if last := lastUpdated(memberTodos); last != nil {
				member.LastTodoTitle = &last.Title
				member.LastUpdatedAt = &last.UpdatedAt
			}

			team.Members = append(team.Members, member)
			teamTodos = append(teamTodos, memberTodos...)
		}

		teamStats := report.Summarize(report.Statuses(teamTodos))
		team.TeamTotalTodos = teamStats.Total
		team.TeamCompleted = teamStats.Completed
		team.TeamIncomplete = teamStats.Incomplete
		team.TeamPending = teamStats.Pending
		team.TeamCompletionRate = teamStats.CompletionRate

		list.Teams = append(list.Teams, team)
		pageTodos = append(pageTodos, teamTodos...)
	}
	list.Overall = report.Summarize(report.Statuses(pageTodos))

	return list, nil
}

// GetAttendanceTeams builds the admin attendance rollup. The status facet
// classifies each member's single most recent record, then retains teams with
// at least one matching member; pagination runs after filtering.
func (r Repository) GetAttendanceTeams(ctx context.Context, filter RangeFilter) (AttendanceTeamList, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return AttendanceTeamList{}, err
	}

	from, toExclusive, err := parseRange(filter)
	if err != nil {
		return AttendanceTeamList{}, err
	}
	to := day.AddDays(toExclusive, -1)

	facet, err := attendanceFacet(filter.Status)
	if err != nil {
		return AttendanceTeamList{}, err
	}

	q := queryText(filter.Q)
	page := report.Clamp(intOr(filter.Page, 1), 1, 10000)
	pageSize := report.Clamp(intOr(filter.PageSize, 10), 1, 100)

	// Anyone supervising members counts as a lead here, LEAD role or not.
	groups, err := r.groups(ctx, `is_active = true AND (role = 'LEAD' OR id IN (
		SELECT team_lead_id FROM users WHERE team_lead_id IS NOT NULL AND deleted_at IS NULL))`, true)
	if err != nil {
		return AttendanceTeamList{}, err
	}

	var retained []report.Group
	for _, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		if report.GroupMatches(g, q, nil) {
			retained = append(retained, g)
		}
	}

	var memberIDs []int
	for _, g := range retained {
		for _, m := range g.Members {
			memberIDs = append(memberIDs, m.ID)
		}
	}

	entriesByUser, err := r.attendanceInRange(ctx, memberIDs, from, toExclusive)
	if err != nil {
		return AttendanceTeamList{}, err
	}
	latestByUser, err := r.latestAttendance(ctx, memberIDs)
	if err != nil {
		return AttendanceTeamList{}, err
	}

	var teams []AttendanceTeam
	for _, g := range retained {
		team := AttendanceTeam{
			LeadID:       g.Lead.ID,
			LeadUsername: g.Lead.Username,
			LeadEmail:    g.Lead.Email,
			MembersCount: len(g.Members),
			Members:      []AttendanceTeamMember{},
		}

		matchesFacet := facet == ""
		for _, m := range g.Members {
			latest := latestByUser[m.ID]

			member := AttendanceTeamMember{
				UserID:           m.ID,
				Username:         m.Username,
				Email:            m.Email,
				AttendanceTotals: report.SummarizeAttendance(entriesByUser[m.ID], from, to),
				LastStatus:       report.LatestStatus(latest),
			}
			if latest != nil {
				member.LastCheckInAt = &latest.CheckInAt
				member.LastCheckOutAt = latest.CheckOutAt
			}
			if member.LastStatus == facet {
				matchesFacet = true
			}

			team.TeamDaysPresent += member.DaysPresent
			team.TeamDaysAbsent += member.DaysAbsent
			team.TeamWorkMinutes += member.TotalWorkMinutes
			team.Members = append(team.Members, member)
		}

		if matchesFacet {
			teams = append(teams, team)
		}
	}

	list := AttendanceTeamList{Teams: []AttendanceTeam{}, TotalTeams: len(teams)}
	lo, hi := report.Paginate(len(teams), page, pageSize)
	list.Teams = append(list.Teams, teams[lo:hi]...)

	return list, nil
}

// GetMemberRows returns the visible accounts with their entry for one day and
// their checked-out minutes for the month. LEAD sees its own members, ADMIN
// sees everyone, MEMBER gets an empty list.
func (r Repository) GetMemberRows(ctx context.Context, filter MemberDayFilter) ([]MemberRow, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Month < 1 || filter.Month > 12 || filter.Year < 1 {
		return nil, web.NewRequestError(errors.New("invalid year/month"), http.StatusBadRequest)
	}

	targetDay := day.StartOfDayUTC(time.Now())
	if filter.Day != nil && *filter.Day != "" {
		targetDay, err = day.Parse(*filter.Day)
		if err != nil {
			return nil, web.NewRequestError(err, http.StatusBadRequest)
		}
	}
	monthStart, monthEnd := day.MonthRangeUTC(filter.Year, filter.Month)

	rows := []MemberRow{}

	whereQuery := `WHERE deleted_at IS NULL`
	switch claims.Role {
	case auth.RoleLead:
		whereQuery += fmt.Sprintf(` AND team_lead_id = %d`, claims.UserId)
	case auth.RoleAdmin:
	default:
		return rows, nil
	}

	memberRows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, username, email, role, is_active, created_at
		FROM users %s
		ORDER BY created_at asc
	`, whereQuery))
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting members"), http.StatusInternalServerError)
	}
	defer memberRows.Close()

	var ids []int
	for memberRows.Next() {
		var row MemberRow
		if err = memberRows.Scan(
			&row.ID,
			&row.Username,
			&row.Email,
			&row.Role,
			&row.IsActive,
			&row.CreatedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning member"), http.StatusInternalServerError)
		}
		rows = append(rows, row)
		ids = append(ids, row.ID)
	}
	if err = memberRows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return rows, nil
	}

	type todayEntry struct {
		checkInAt   time.Time
		checkOutAt  *time.Time
		workMinutes int
	}
	todayByUser := map[int]todayEntry{}

	todayRows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT user_id, check_in_at, check_out_at, work_minutes
		FROM attendance
		WHERE deleted_at IS NULL AND user_id IN (%s) AND work_day = $1
	`, joinInts(ids)), targetDay)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting day attendance"), http.StatusInternalServerError)
	}
	defer todayRows.Close()

	for todayRows.Next() {
		var (
			userID int
			e      todayEntry
		)
		if err = todayRows.Scan(&userID, &e.checkInAt, &e.checkOutAt, &e.workMinutes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning day attendance"), http.StatusInternalServerError)
		}
		todayByUser[userID] = e
	}
	if err = todayRows.Err(); err != nil {
		return nil, err
	}

	monthByUser := map[int]int{}

	monthRows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT user_id, sum(work_minutes)
		FROM attendance
		WHERE deleted_at IS NULL
		  AND user_id IN (%s)
		  AND check_out_at IS NOT NULL
		  AND work_day >= $1 AND work_day < $2
		GROUP BY user_id
	`, joinInts(ids)), monthStart, monthEnd)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting month attendance"), http.StatusInternalServerError)
	}
	defer monthRows.Close()

	for monthRows.Next() {
		var userID, minutes int
		if err = monthRows.Scan(&userID, &minutes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning month attendance"), http.StatusInternalServerError)
		}
		monthByUser[userID] = minutes
	}
	if err = monthRows.Err(); err != nil {
		return nil, err
	}

	for i := range rows {
		if e, ok := todayByUser[rows[i].ID]; ok {
			checkIn := e.checkInAt
			minutes := e.workMinutes
			rows[i].TodayCheckInAt = &checkIn
			rows[i].TodayCheckOutAt = e.checkOutAt
			rows[i].TodayWorkMinutes = &minutes
		}
		if minutes, ok := monthByUser[rows[i].ID]; ok {
			m := minutes
			rows[i].MonthMinutes = &m
		}
	}

	return rows, nil
}

// groups loads every (lead, members) pair matching the lead condition,
// ordered by username at both levels. The todo rollup keeps deactivated
// members in their team, the attendance rollup does not.
func (r Repository) groups(ctx context.Context, leadWhere string, activeMembersOnly bool) ([]report.Group, error) {
	leadRows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, username, email
		FROM users
		WHERE deleted_at IS NULL AND %s
		ORDER BY username asc
	`, leadWhere))
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leads"), http.StatusInternalServerError)
	}
	defer leadRows.Close()

	var groups []report.Group
	index := map[int]int{}
	for leadRows.Next() {
		var lead report.Identity
		if err = leadRows.Scan(&lead.ID, &lead.Username, &lead.Email); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning lead"), http.StatusInternalServerError)
		}
		index[lead.ID] = len(groups)
		groups = append(groups, report.Group{Lead: lead})
	}
	if err = leadRows.Err(); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return groups, nil
	}

	memberRows, err := r.QueryContext(ctx, memberListQuery(activeMembersOnly))
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting group members"), http.StatusInternalServerError)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var (
			m      report.Identity
			leadID int
		)
		if err = memberRows.Scan(&m.ID, &m.Username, &m.Email, &leadID); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning group member"), http.StatusInternalServerError)
		}
		if i, ok := index[leadID]; ok {
			groups[i].Members = append(groups[i].Members, m)
		}
	}

	return groups, memberRows.Err()
}

// todosInRange fetches todos for the given accounts grouped by owner, newest
// day first then newest tieBreak column first. facet and q filter at the SQL
// level when set.
func (r Repository) todosInRange(ctx context.Context, ids []int, from, toExclusive time.Time, facet, q, tieBreak string) (map[int][]report.TodoItem, error) {
	whereQuery := fmt.Sprintf(`WHERE user_id IN (%s)`, joinInts(ids))
	if facet != "" {
		whereQuery += fmt.Sprintf(` AND status = '%s'`, facet)
	}
	if q != "" {
		safe := escapeQuotes(q)
		whereQuery += fmt.Sprintf(` AND (title ilike '%%%s%%' OR note ilike '%%%s%%')`, safe, safe)
	}

	rows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, user_id, work_day, title, note, status, created_at, updated_at
		FROM todos
		%s AND work_day >= $1 AND work_day < $2
		ORDER BY work_day desc, %s desc
	`, whereQuery, tieBreak), from, toExclusive)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting todos"), http.StatusInternalServerError)
	}
	defer rows.Close()

	byUser := map[int][]report.TodoItem{}
	for rows.Next() {
		var (
			t    report.TodoItem
			note sql.NullString
		)
		if err = rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Day,
			&t.Title,
			&note,
			&t.Status,
			&t.CreatedAt,
			&t.UpdatedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning todo"), http.StatusInternalServerError)
		}
		t.Note = note.String
		t.DayKey = day.Key(t.Day)
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}

	return byUser, rows.Err()
}

func (r Repository) attendanceInRange(ctx context.Context, ids []int, from, toExclusive time.Time) (map[int][]report.AttendanceEntry, error) {
	byUser := map[int][]report.AttendanceEntry{}
	if len(ids) == 0 {
		return byUser, nil
	}

	rows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT user_id, work_day, check_in_at, check_out_at, work_minutes
		FROM attendance
		WHERE deleted_at IS NULL
		  AND user_id IN (%s)
		  AND work_day >= $1 AND work_day < $2
		ORDER BY work_day desc
	`, joinInts(ids)), from, toExclusive)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID int
			e      report.AttendanceEntry
		)
		if err = rows.Scan(&userID, &e.Day, &e.CheckInAt, &e.CheckOutAt, &e.WorkMinutes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance"), http.StatusInternalServerError)
		}
		byUser[userID] = append(byUser[userID], e)
	}

	return byUser, rows.Err()
}

// latestAttendance returns each account's most recent record, ignoring any
// range filter.
func (r Repository) latestAttendance(ctx context.Context, ids []int) (map[int]*report.AttendanceEntry, error) {
	byUser := map[int]*report.AttendanceEntry{}
	if len(ids) == 0 {
		return byUser, nil
	}

	rows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT DISTINCT ON (user_id) user_id, work_day, check_in_at, check_out_at, work_minutes
		FROM attendance
		WHERE deleted_at IS NULL AND user_id IN (%s)
		ORDER BY user_id, work_day desc
	`, joinInts(ids)))
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting latest attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID int
			e      report.AttendanceEntry
		)
		if err = rows.Scan(&userID, &e.Day, &e.CheckInAt, &e.CheckOutAt, &e.WorkMinutes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning latest attendance"), http.StatusInternalServerError)
		}
		entry := e
		byUser[userID] = &entry
	}

	return byUser, rows.Err()
}

// lastUpdated picks the most recently updated entry.
func lastUpdated(items []report.TodoItem) *report.TodoItem {
	var last *report.TodoItem
	for i := range items {
		if last == nil || items[i].UpdatedAt.After(last.UpdatedAt) {
			last = &items[i]
		}
	}
	return last
}

func lastStatus(items []report.TodoItem) string {
	if last := lastUpdated(items); last != nil {
		return last.Status
	}
	return entity.TodoPending
}

func parseRange(filter RangeFilter) (time.Time, time.Time, error) {
	if filter.From == nil || filter.To == nil {
		return time.Time{}, time.Time{}, web.NewRequestError(errors.New("invalid from/to. use YYYY-MM-DD"), http.StatusBadRequest)
	}
	from, err := day.Parse(*filter.From)
	if err != nil {
		return time.Time{}, time.Time{}, web.NewRequestError(err, http.StatusBadRequest)
	}
	to, err := day.Parse(*filter.To)
	if err != nil {
		return time.Time{}, time.Time{}, web.NewRequestError(err, http.StatusBadRequest)
	}
	return from, day.AddDays(to, 1), nil
}

func statusFacet(token *string) (string, error) {
	value := ""
	if token != nil {
		value = *token
	}
	facet, ok := report.StatusFacet(value)
	if !ok {
		return "", web.NewRequestError(errors.New("incorrect status. status should be all, complete, incomplete or status"), http.StatusBadRequest)
	}
	return facet, nil
}

func attendanceFacet(token *string) (string, error) {
	if token == nil {
		return "", nil
	}
	switch strings.ToLower(strings.TrimSpace(*token)) {
	case "", "all":
		return "", nil
	case report.StatusPresent:
		return report.StatusPresent, nil
	case report.StatusAbsent:
		return report.StatusAbsent, nil
	case report.StatusCheckedIn:
		return report.StatusCheckedIn, nil
	default:
		return "", web.NewRequestError(errors.New("incorrect status. status should be all, present, absent or checkedin"), http.StatusBadRequest)
	}
}

// memberWhereQuery narrows the member list to one lead's team, with the
// free-text filter applied to username and email.
func memberWhereQuery(leadID int, q string) string {
	whereQuery := fmt.Sprintf(`WHERE deleted_at IS NULL AND team_lead_id = %d`, leadID)
	if q != "" {
		safe := escapeQuotes(q)
		whereQuery += fmt.Sprintf(` AND (username ilike '%%%s%%' OR email ilike '%%%s%%')`, safe, safe)
	}
	return whereQuery
}

func memberListQuery(activeOnly bool) string {
	query := `
		SELECT id, username, email, team_lead_id
		FROM users
		WHERE deleted_at IS NULL AND team_lead_id IS NOT NULL
	`
	if activeOnly {
		query += ` AND is_active = true`
	}
	return query + ` ORDER BY username asc`
}

// escapeQuotes doubles single quotes so free text survives interpolation
// into a SQL string literal.
func escapeQuotes(s string) string {
	return strings.Replace(s, "'", "''", -1)
}

func queryText(q *string) string {
	if q == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*q))
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
