package team

import (
	"context"

	"workforce/backend/internal/repository/postgres/team"
)

type Team interface {
	GetMemberTodoRows(ctx context.Context, filter team.RangeFilter) (team.MemberTodoList, error)
	GetTodoTeams(ctx context.Context, filter team.RangeFilter) (team.TodoTeamList, error)
	GetAttendanceTeams(ctx context.Context, filter team.RangeFilter) (team.AttendanceTeamList, error)
	GetMemberRows(ctx context.Context, filter team.MemberDayFilter) ([]team.MemberRow, error)
}
