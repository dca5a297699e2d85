package auth

import (
	"context"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetById(ctx context.Context, id int) (entity.User, error)
	SignUp(ctx context.Context, request user.SignUpRequest) (user.SignUpResponse, error)
}
