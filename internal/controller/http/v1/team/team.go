package team

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/team"
	"workforce/backend/internal/service"
)

type Controller struct {
	team Team
}

func NewController(team Team) *Controller {
	return &Controller{team}
}

// GetMemberTodoRows is the lead's view: one row per member with the filtered
// todo list and its recomputed stats.
func (uc Controller) GetMemberTodoRows(c *web.Context) error {
	filter, err := rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.team.GetMemberTodoRows(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetTodoTeams(c *web.Context) error {
	filter, err := rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.team.GetTodoTeams(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(list, http.StatusOK)
}

func (uc Controller) GetAttendanceTeams(c *web.Context) error {
	filter, err := rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.team.GetAttendanceTeams(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(list, http.StatusOK)
}

// ExportAttendanceTeams serves the current rollup page as an .xlsx download.
func (uc Controller) ExportAttendanceTeams(c *web.Context) error {
	filter, err := rangeFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.team.GetAttendanceTeams(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	filePath := filepath.Join("media", fmt.Sprintf("attendance_%d.xlsx", time.Now().UnixNano()))
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return c.RespondError(err)
	}
	if err := service.BuildAttendanceReport(list.Teams, filePath); err != nil {
		return c.RespondError(err)
	}
	defer os.Remove(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"attendance.xlsx\"")
	if _, err = io.Copy(c.Writer, file); err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) GetMemberRows(c *web.Context) error {
	var filter team.MemberDayFilter

	year, _ := c.GetQueryFunc(reflect.Int, "year").(*int)
	month, _ := c.GetQueryFunc(reflect.Int, "month").(*int)
	if dayKey, ok := c.GetQueryFunc(reflect.String, "day").(*string); ok {
		filter.Day = dayKey
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if year == nil || month == nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid year/month"), http.StatusBadRequest))
	}
	filter.Year = *year
	filter.Month = *month

	rows, err := uc.team.GetMemberRows(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"rows": rows,
	}, http.StatusOK)
}

func rangeFilter(c *web.Context) (team.RangeFilter, error) {
	var filter team.RangeFilter

	if from, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok {
		filter.From = from
	}
	if to, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok {
		filter.To = to
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if q, ok := c.GetQueryFunc(reflect.String, "q").(*string); ok {
		filter.Q = q
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if pageSize, ok := c.GetQueryFunc(reflect.Int, "pageSize").(*int); ok {
		filter.PageSize = pageSize
	}
	if err := c.ValidQuery(); err != nil {
		return filter, err
	}

	return filter, nil
}
