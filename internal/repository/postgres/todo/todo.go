package todo

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/day"
	"workforce/backend/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetDayList returns the acting account's own todos for one day, newest
// created first.
func (r Repository) GetDayList(ctx context.Context, dayKey *string) (string, []Item, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return "", nil, err
	}

	key := day.TodayKeyUTC()
	if dayKey != nil && *dayKey != "" {
		key = *dayKey
	}
	workDay, err := day.Parse(key)
	if err != nil {
		return "", nil, web.NewRequestError(err, http.StatusBadRequest)
	}

	rows, err := r.QueryContext(ctx, `
		SELECT id, title, note, status, created_at, updated_at
		FROM todos
		WHERE user_id = $1 AND work_day = $2
		ORDER BY created_at desc
	`, claims.UserId, workDay)
	if err != nil {
		return "", nil, web.NewRequestError(errors.Wrap(err, "selecting todos"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err = rows.Scan(
			&item.ID,
			&item.Title,
			&item.Note,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt); err != nil {
			return "", nil, web.NewRequestError(errors.Wrap(err, "scanning todo list"), http.StatusInternalServerError)
		}
		items = append(items, item)
	}

	return key, items, rows.Err()
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Day", "Title"); err != nil {
		return CreateResponse{}, err
	}

	workDay, err := day.Parse(*request.Day)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	title := strings.TrimSpace(*request.Title)
	if title == "" {
		return CreateResponse{}, web.NewRequestError(errors.New("field Title is required"), http.StatusBadRequest)
	}

	var note *string
	if request.Note != nil {
		if n := strings.TrimSpace(*request.Note); n != "" {
			note = &n
		}
	}

	now := time.Now()

	response := CreateResponse{
		UserID:    claims.UserId,
		WorkDay:   workDay,
		Day:       day.Key(workDay),
		Title:     title,
		Note:      note,
		Status:    entity.TodoPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating todo"), http.StatusBadRequest)
	}

	return response, nil
}

// UpdateColumns mutates a todo the acting account owns. A todo belonging to
// another account is reported as not found, never as forbidden.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (Item, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return Item{}, err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return Item{}, err
	}

	if err := r.checkOwned(ctx, request.ID, claims.UserId); err != nil {
		return Item{}, err
	}

	q := r.NewUpdate().Table("todos").Where("id = ? AND user_id = ?", request.ID, claims.UserId)

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title == "" {
			return Item{}, web.NewRequestError(errors.New("field Title is required"), http.StatusBadRequest)
		}
		q.Set("title = ?", title)
	}

	if request.Note != nil {
		if n := strings.TrimSpace(*request.Note); n != "" {
			q.Set("note = ?", n)
		} else {
			q.Set("note = NULL")
		}
	}

	if request.Status != nil {
		status := strings.ToUpper(*request.Status)
		if status != entity.TodoPending && status != entity.TodoIncomplete && status != entity.TodoComplete {
			return Item{}, web.NewRequestError(errors.New("incorrect status. status should be PENDING, INCOMPLETE or COMPLETE"), http.StatusBadRequest)
		}
		q.Set("status = ?", status)
	}

	q.Set("updated_at = ?", time.Now())

	_, err = q.Exec(ctx)
	if err != nil {
		return Item{}, web.NewRequestError(errors.Wrap(err, "updating todo"), http.StatusBadRequest)
	}

	var item Item
	err = r.QueryRowContext(ctx, `
		SELECT id, title, note, status, created_at, updated_at
		FROM todos
		WHERE id = $1
	`, request.ID).Scan(&item.ID, &item.Title, &item.Note, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Item{}, web.NewRequestError(errors.Wrap(err, "selecting todo"), http.StatusInternalServerError)
	}

	return item, nil
}

// Delete removes a todo the acting account owns.
func (r Repository) Delete(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.checkOwned(ctx, id, claims.UserId); err != nil {
		return err
	}

	_, err = r.NewDelete().Table("todos").Where("id = ? AND user_id = ?", id, claims.UserId).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting todo"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) checkOwned(ctx context.Context, id, userID int) error {
	var ownedID int
	err := r.QueryRowContext(ctx,
		`SELECT id FROM todos WHERE id = $1 AND user_id = $2`, id, userID).Scan(&ownedID)
	return ownedOrNotFound(err)
}

// ownedOrNotFound maps the ownership lookup onto the API contract: a todo
// under another account answers exactly like a missing one.
func ownedOrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(errors.New("todo not found"), http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking todo ownership"), http.StatusInternalServerError)
	}
	return nil
}
