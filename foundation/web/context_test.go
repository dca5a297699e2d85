package web

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, req *http.Request) *Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return &Context{Context: c, Ctx: req.Context()}
}

func TestGetQueryFunc(t *testing.T) {
	req := httptest.NewRequest("GET", "/?page=3&q=hello&active=true", nil)
	ctx := testContext(t, req)

	page, ok := ctx.GetQueryFunc(reflect.Int, "page").(*int)
	require.True(t, ok)
	require.NotNil(t, page)
	assert.Equal(t, 3, *page)

	q, ok := ctx.GetQueryFunc(reflect.String, "q").(*string)
	require.True(t, ok)
	require.NotNil(t, q)
	assert.Equal(t, "hello", *q)

	active, ok := ctx.GetQueryFunc(reflect.Bool, "active").(*bool)
	require.True(t, ok)
	require.NotNil(t, active)
	assert.True(t, *active)

	// a missing parameter is a typed nil, not an error
	missing, ok := ctx.GetQueryFunc(reflect.Int, "limit").(*int)
	require.True(t, ok)
	assert.Nil(t, missing)
	assert.NoError(t, ctx.ValidQuery())
}

func TestGetQueryFuncMalformed(t *testing.T) {
	req := httptest.NewRequest("GET", "/?page=banana", nil)
	ctx := testContext(t, req)

	page, _ := ctx.GetQueryFunc(reflect.Int, "page").(*int)
	assert.Nil(t, page)

	err := ctx.ValidQuery()
	require.Error(t, err)

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestBindFuncRequired(t *testing.T) {
	body := strings.NewReader(`{"email":"a@b.c"}`)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", "application/json")
	ctx := testContext(t, req)

	var data struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	err := ctx.BindFunc(&data, "Email", "Password")
	require.Error(t, err)

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Contains(t, reqErr.Error(), "Password")
}

func TestBindFuncComplete(t *testing.T) {
	body := strings.NewReader(`{"email":"a@b.c","password":"pw"}`)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", "application/json")
	ctx := testContext(t, req)

	var data struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	require.NoError(t, ctx.BindFunc(&data, "Email", "Password"))
	assert.Equal(t, "a@b.c", *data.Email)
}
