package attendance

import (
	"net/http"
	"reflect"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/attendance"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

func (uc Controller) CheckIn(c *web.Context) error {
	var request attendance.CheckInRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.CheckIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CheckOut(c *web.Context) error {
	var request attendance.CheckOutRequest

	if err := c.BindFunc(&request, "Day"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.CheckOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMonthList(c *web.Context) error {
	filter, err := monthFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.attendance.GetMonthList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetGraph(c *web.Context) error {
	filter, err := monthFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	series, err := uc.attendance.GetGraph(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	if series == nil {
		series = []attendance.GraphPoint{}
	}

	return c.Respond(map[string]interface{}{
		"series": series,
	}, http.StatusOK)
}

func monthFilter(c *web.Context) (attendance.MonthFilter, error) {
	var filter attendance.MonthFilter

	year, _ := c.GetQueryFunc(reflect.Int, "year").(*int)
	month, _ := c.GetQueryFunc(reflect.Int, "month").(*int)
	if err := c.ValidQuery(); err != nil {
		return filter, err
	}
	if year == nil || month == nil || *month < 1 || *month > 12 {
		return filter, web.NewRequestError(errors.New("invalid year/month"), http.StatusBadRequest)
	}

	filter.Year = *year
	filter.Month = *month

	return filter, nil
}
