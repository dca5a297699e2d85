package attendance

import (
	"context"

	"workforce/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	CheckIn(ctx context.Context, request attendance.CheckInRequest) (attendance.CheckInResponse, error)
	CheckOut(ctx context.Context, request attendance.CheckOutRequest) (attendance.CheckOutResponse, error)
	GetMonthList(ctx context.Context, filter attendance.MonthFilter) ([]attendance.GetListResponse, error)
	GetGraph(ctx context.Context, filter attendance.MonthFilter) ([]attendance.GraphPoint, error)
}
