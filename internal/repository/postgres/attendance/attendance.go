package attendance

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/pkg/day"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/service/report"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// CheckIn records the first check-in of the day for the acting account. The
// operation is idempotent: the (user_id, work_day) unique key makes a repeat
// call a no-op on the stored check-in timestamp, which also settles the
// double-submit race without in-process coordination.
func (r Repository) CheckIn(ctx context.Context, request CheckInRequest) (CheckInResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CheckInResponse{}, err
	}

	workDay := day.StartOfDayUTC(time.Now())
	if request.Day != nil && *request.Day != "" {
		workDay, err = day.Parse(*request.Day)
		if err != nil {
			return CheckInResponse{}, web.NewRequestError(err, http.StatusBadRequest)
		}
	}

	now := time.Now().UTC()

	row := CheckInResponse{
		UserID:    claims.UserId,
		WorkDay:   workDay,
		CheckInAt: now,
		CreatedAt: now,
		CreatedBy: claims.UserId,
	}

	_, err = r.checkInInsert(&row).Exec(ctx)
	if err != nil {
		return CheckInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	// Read the authoritative row back: on a repeat call this returns the
	// original check-in untouched.
	var response CheckInResponse
	err = r.QueryRowContext(ctx, `
		SELECT id, check_in_at, check_out_at, work_minutes
		FROM attendance
		WHERE user_id = $1 AND work_day = $2 AND deleted_at IS NULL
	`, claims.UserId, workDay).Scan(
		&response.ID,
		&response.CheckInAt,
		&response.CheckOutAt,
		&response.WorkMinutes,
	)
	if err != nil {
		return CheckInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	response.UserID = claims.UserId
	response.WorkDay = workDay
	response.Day = day.Key(workDay)

	return response, nil
}

// checkInInsert leans on the (user_id, work_day) unique key: when the day's
// row already exists nothing is written, so a stored check-in timestamp is
// never overwritten.
func (r Repository) checkInInsert(row *CheckInResponse) *bun.InsertQuery {
	return r.NewInsert().Model(row).On("CONFLICT (user_id, work_day) DO NOTHING")
}

// CheckOut closes the day's entry. It rejects a checkout with no prior
// check-in (400) and a second checkout (409); a closed entry is never
// mutated again.
func (r Repository) CheckOut(ctx context.Context, request CheckOutRequest) (CheckOutResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CheckOutResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Day"); err != nil {
		return CheckOutResponse{}, err
	}

	workDay, err := day.Parse(*request.Day)
	if err != nil {
		return CheckOutResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	var (
		id         int
		checkInAt  time.Time
		checkOutAt *time.Time
	)
	err = r.QueryRowContext(ctx, `
		SELECT id, check_in_at, check_out_at
		FROM attendance
		WHERE user_id = $1 AND work_day = $2 AND deleted_at IS NULL
	`, claims.UserId, workDay).Scan(&id, &checkInAt, &checkOutAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckOutResponse{}, web.NewRequestError(errors.New("no check-in found"), http.StatusBadRequest)
	}
	if err != nil {
		return CheckOutResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	if checkOutAt != nil {
		return CheckOutResponse{}, web.NewRequestError(errors.New("already checked out"), http.StatusConflict)
	}

	now := time.Now().UTC()
	mins := int(now.Sub(checkInAt).Minutes())
	if mins < 0 {
		mins = 0
	}

	q := r.NewUpdate().Table("attendance").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("check_out_at = ?", now)
	q.Set("work_minutes = ?", mins)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return CheckOutResponse{}, web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	return CheckOutResponse{
		ID:          id,
		Day:         day.Key(workDay),
		CheckOutAt:  now,
		WorkMinutes: mins,
	}, nil
}

// GetMonthList returns the acting account's own entries for a month, newest
// first.
func (r Repository) GetMonthList(ctx context.Context, filter MonthFilter) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	start, end := day.MonthRangeUTC(filter.Year, filter.Month)

	rows, err := r.QueryContext(ctx, `
		SELECT
			a.id,
			a.work_day,
			a.check_in_at,
			a.check_out_at,
			a.work_minutes,
			u.id,
			u.username,
			u.email
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.deleted_at IS NULL
		  AND a.user_id = $1
		  AND a.work_day >= $2 AND a.work_day < $3
		ORDER BY a.work_day desc
	`, claims.UserId, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var workDay time.Time

		if err = rows.Scan(
			&detail.ID,
			&workDay,
			&detail.CheckInAt,
			&detail.CheckOutAt,
			&detail.WorkMinutes,
			&detail.User.ID,
			&detail.User.Username,
			&detail.User.Email); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}

		detail.WorkDay = &date.Date{Time: workDay}

		list = append(list, detail)
	}

	return list, rows.Err()
}

// GetGraph returns the month's worked hours per day. Hours stay 0 until the
// entry is checked out.
func (r Repository) GetGraph(ctx context.Context, filter MonthFilter) ([]GraphPoint, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	start, end := day.MonthRangeUTC(filter.Year, filter.Month)

	rows, err := r.QueryContext(ctx, `
		SELECT work_day, work_minutes, check_out_at IS NOT NULL
		FROM attendance
		WHERE deleted_at IS NULL
		  AND user_id = $1
		  AND work_day >= $2 AND work_day < $3
		ORDER BY work_day asc
	`, claims.UserId, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance graph"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var series []GraphPoint

	for rows.Next() {
		var (
			workDay    time.Time
			minutes    int
			checkedOut bool
		)
		if err = rows.Scan(&workDay, &minutes, &checkedOut); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning graph row"), http.StatusInternalServerError)
		}

		series = append(series, GraphPoint{
			Date:  day.Key(workDay),
			Hours: report.Hours(minutes, checkedOut),
		})
	}

	return series, rows.Err()
}
