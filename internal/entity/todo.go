package entity

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	TodoPending    = "PENDING"
	TodoIncomplete = "INCOMPLETE"
	TodoComplete   = "COMPLETE"
)

type Todo struct {
	bun.BaseModel `bun:"table:todos"`

	ID        int        `json:"id" bun:"id,pk,autoincrement"`
	UserID    *int       `json:"user_id" bun:"user_id"`
	WorkDay   *time.Time `json:"work_day" bun:"work_day"`
	Title     *string    `json:"title" bun:"title"`
	Note      *string    `json:"note" bun:"note"`
	Status    *string    `json:"status" bun:"status"`
	CreatedAt *time.Time `json:"created_at" bun:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" bun:"updated_at"`
}
