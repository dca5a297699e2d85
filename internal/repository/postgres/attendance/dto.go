package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type CheckInRequest struct {
	Day *string `json:"day" form:"day"`
}

type CheckInResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID          int        `json:"id" bun:"-"`
	UserID      int        `json:"-" bun:"user_id"`
	WorkDay     time.Time  `json:"-" bun:"work_day"`
	Day         string     `json:"day" bun:"-"`
	CheckInAt   time.Time  `json:"checkInAt" bun:"check_in_at"`
	CheckOutAt  *time.Time `json:"checkOutAt" bun:"check_out_at"`
	WorkMinutes int        `json:"workMinutes" bun:"work_minutes"`
	CreatedAt   time.Time  `json:"-" bun:"created_at"`
	CreatedBy   int        `json:"-" bun:"created_by"`
}

type CheckOutRequest struct {
	Day *string `json:"day" form:"day"`
}

type CheckOutResponse struct {
	ID          int       `json:"id"`
	Day         string    `json:"day"`
	CheckOutAt  time.Time `json:"checkOutAt"`
	WorkMinutes int       `json:"workMinutes"`
}

type MonthFilter struct {
	Year  int
	Month int
}

type ListUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type GetListResponse struct {
	ID          int        `json:"id"`
	WorkDay     *date.Date `json:"day"`
	CheckInAt   time.Time  `json:"checkInAt"`
	CheckOutAt  *time.Time `json:"checkOutAt"`
	WorkMinutes int        `json:"workMinutes"`
	User        ListUser   `json:"user"`
}

type GraphPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
