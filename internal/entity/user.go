package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Username   *string `json:"username"   bun:"username"`
	Email      *string `json:"email"      bun:"email"`
	Password   *string `json:"password"   bun:"password"`
	Role       *string `json:"role"       bun:"role"`
	IsActive   *bool   `json:"is_active"  bun:"is_active"`
	TeamLeadID *int    `json:"team_lead_id" bun:"team_lead_id"`
}
