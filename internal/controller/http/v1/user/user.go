package user

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/user"
	"workforce/backend/internal/service"
)

type Controller struct {
	user    User
	baseURL string
}

func NewController(user User, baseURL string) *Controller {
	return &Controller{user: user, baseURL: baseURL}
}

func (uc Controller) GetUserList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetUserDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateUserColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.user.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.user.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// GetQrCode serves the check-in badge PNG for one account.
func (uc Controller) GetQrCode(c *web.Context) error {
	userID, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int)
	if !ok || userID == nil {
		return c.RespondError(web.NewRequestError(errors.New("user_id parameter is required"), http.StatusBadRequest))
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	// Deleted accounts have no badge.
	if _, err := uc.user.GetDetailById(c.Ctx, *userID); err != nil {
		return c.RespondError(err)
	}

	filePath := filepath.Join("media", "qr", fmt.Sprintf("user_%d.png", *userID))
	if err := service.CreateCheckInQRCode(uc.baseURL, *userID, filePath); err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename="+filepath.Base(filePath))
	c.Status(http.StatusOK)
	if _, err = io.Copy(c.Writer, file); err != nil {
		return c.RespondError(err)
	}

	return nil
}

// GetBadgeSheet serves a PDF with one QR badge per active account.
func (uc Controller) GetBadgeSheet(c *web.Context) error {
	rows, err := uc.user.GetBadgeList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	filePath := filepath.Join("media", "badges.pdf")
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return c.RespondError(err)
	}
	if err := service.CreateBadgeSheet(rows, uc.baseURL, filePath); err != nil {
		return c.RespondError(err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"badges.pdf\"")
	if _, err = io.Copy(c.Writer, file); err != nil {
		return c.RespondError(err)
	}

	return nil
}
