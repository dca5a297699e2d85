package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type SignUpRequest struct {
	Username *string `json:"username" form:"username"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
}

type SignUpResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id" bun:"-"`
	Username   *string   `json:"username" bun:"username"`
	Email      *string   `json:"email" bun:"email"`
	Password   *string   `json:"-" bun:"password"`
	Role       *string   `json:"role" bun:"role"`
	IsActive   bool      `json:"is_active" bun:"is_active"`
	TeamLeadID *int      `json:"team_lead_id" bun:"team_lead_id"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
}

type GetListResponse struct {
	ID           int     `json:"id"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Role         *string `json:"role"`
	IsActive     *bool   `json:"is_active"`
	TeamLeadID   *int    `json:"team_lead_id"`
	TeamLeadName *string `json:"team_lead_name"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Role         *string `json:"role"`
	IsActive     *bool   `json:"is_active"`
	TeamLeadID   *int    `json:"team_lead_id"`
	TeamLeadName *string `json:"team_lead_name"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	Username   *string `json:"username" form:"username"`
	Email      *string `json:"email" form:"email"`
	Password   *string `json:"password" form:"password"`
	Role       *string `json:"role" form:"role"`
	IsActive   *bool   `json:"is_active" form:"is_active"`
	TeamLeadID *int    `json:"team_lead_id" form:"team_lead_id"`
}

type BadgeRow struct {
	ID       int
	Username string
	Email    string
}
