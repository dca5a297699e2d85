package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	UserID      *int       `json:"user_id" bun:"user_id"`
	WorkDay     *time.Time `json:"work_day" bun:"work_day"`
	CheckInAt   *time.Time `json:"check_in_at" bun:"check_in_at"`
	CheckOutAt  *time.Time `json:"check_out_at" bun:"check_out_at"`
	WorkMinutes *int       `json:"work_minutes" bun:"work_minutes"`
}
