package todo

import (
	"time"

	"github.com/uptrace/bun"
)

type CreateRequest struct {
	Day   *string `json:"day" form:"day"`
	Title *string `json:"title" form:"title"`
	Note  *string `json:"note" form:"note"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:todos"`

	ID        int       `json:"id" bun:"-"`
	UserID    int       `json:"-" bun:"user_id"`
	WorkDay   time.Time `json:"-" bun:"work_day"`
	Day       string    `json:"day" bun:"-"`
	Title     string    `json:"title" bun:"title"`
	Note      *string   `json:"note" bun:"note"`
	Status    string    `json:"status" bun:"status"`
	CreatedAt time.Time `json:"createdAt" bun:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bun:"updated_at"`
}

type UpdateRequest struct {
	ID     int     `json:"id" form:"id"`
	Title  *string `json:"title" form:"title"`
	Note   *string `json:"note" form:"note"`
	Status *string `json:"status" form:"status"`
}

type Item struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Note      *string   `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
