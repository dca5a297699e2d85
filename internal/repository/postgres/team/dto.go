package team

import (
	"time"

	"workforce/backend/internal/service/report"
)

type RangeFilter struct {
	From     *string
	To       *string
	Status   *string
	Q        *string
	Page     *int
	PageSize *int
}

type MemberUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

type MemberTodoRow struct {
	User  MemberUser        `json:"user"`
	Todos []report.TodoItem `json:"todos"`
	Stats report.Stats      `json:"stats"`
}

type MemberTodoList struct {
	Rows    []MemberTodoRow `json:"rows"`
	Total   int             `json:"total"`
	Overall report.Stats    `json:"overall"`
}

type TodoTeamMember struct {
	UserID         int               `json:"userId"`
	Username       string            `json:"username"`
	Email          string            `json:"email"`
	TotalTodos     int               `json:"totalTodos"`
	Completed      int               `json:"completed"`
	Incomplete     int               `json:"incomplete"`
	Pending        int               `json:"pending"`
	CompletionRate int               `json:"completionRate"`
	LastTodoStatus string            `json:"lastTodoStatus"`
	LastTodoTitle  *string           `json:"lastTodoTitle"`
	LastUpdatedAt  *time.Time        `json:"lastUpdatedAt"`
	Todos          []report.TodoItem `json:"todos"`
}

type TodoTeam struct {
	LeadID             int              `json:"leadId"`
	LeadUsername       string           `json:"leadUsername"`
	LeadEmail          string           `json:"leadEmail"`
	MembersCount       int              `json:"membersCount"`
	TeamTotalTodos     int              `json:"teamTotalTodos"`
	TeamCompleted      int              `json:"teamCompleted"`
	TeamIncomplete     int              `json:"teamIncomplete"`
	TeamPending        int              `json:"teamPending"`
	TeamCompletionRate int              `json:"teamCompletionRate"`
	Members            []TodoTeamMember `json:"members"`
}

type TodoTeamList struct {
	Teams      []TodoTeam   `json:"teams"`
	TotalTeams int          `json:"totalTeams"`
	Overall    report.Stats `json:"overall"`
}

type AttendanceTeamMember struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	report.AttendanceTotals
	LastStatus     string     `json:"lastStatus"`
	LastCheckInAt  *time.Time `json:"lastCheckInAt"`
	LastCheckOutAt *time.Time `json:"lastCheckOutAt"`
}

type AttendanceTeam struct {
	LeadID          int                    `json:"leadId"`
	LeadUsername    string                 `json:"leadUsername"`
	LeadEmail       string                 `json:"leadEmail"`
	MembersCount    int                    `json:"membersCount"`
	TeamDaysPresent int                    `json:"teamDaysPresent"`
	TeamDaysAbsent  int                    `json:"teamDaysAbsent"`
	TeamWorkMinutes int                    `json:"teamWorkMinutes"`
	Members         []AttendanceTeamMember `json:"members"`
}

type AttendanceTeamList struct {
	Teams      []AttendanceTeam `json:"teams"`
	TotalTeams int              `json:"totalTeams"`
}

type MemberDayFilter struct {
	Year  int
	Month int
	Day   *string
}

type MemberRow struct {
	ID               int        `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	TodayCheckInAt   *time.Time `json:"todayCheckInAt"`
	TodayCheckOutAt  *time.Time `json:"todayCheckOutAt"`
	TodayWorkMinutes *int       `json:"todayWorkMinutes"`
	MonthMinutes     *int       `json:"monthMinutes"`
}
