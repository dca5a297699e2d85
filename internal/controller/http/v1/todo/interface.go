package todo

import (
	"context"

	"workforce/backend/internal/repository/postgres/todo"
)

type Todo interface {
	GetDayList(ctx context.Context, dayKey *string) (string, []todo.Item, error)
	Create(ctx context.Context, request todo.CreateRequest) (todo.CreateResponse, error)
	UpdateColumns(ctx context.Context, request todo.UpdateRequest) (todo.Item, error)
	Delete(ctx context.Context, id int) error
}
