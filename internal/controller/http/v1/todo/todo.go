package todo

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/todo"
)

type Controller struct {
	todo Todo
}

func NewController(todo Todo) *Controller {
	return &Controller{todo}
}

func (uc Controller) GetDayList(c *web.Context) error {
	dayKey, _ := c.GetQueryFunc(reflect.String, "day").(*string)
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	key, items, err := uc.todo.GetDayList(c.Ctx, dayKey)
	if err != nil {
		return c.RespondError(err)
	}

	if items == nil {
		items = []todo.Item{}
	}

	return c.Respond(map[string]interface{}{
		"day":   key,
		"todos": items,
	}, http.StatusOK)
}

func (uc Controller) CreateTodo(c *web.Context) error {
	var request todo.CreateRequest

	if err := c.BindFunc(&request, "Day", "Title"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.todo.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(response, http.StatusCreated)
}

func (uc Controller) UpdateTodoColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request todo.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	response, err := uc.todo.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(response, http.StatusOK)
}

func (uc Controller) DeleteTodo(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.todo.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
