package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin's context. Ctx is the request context and carries the
// authenticated claims once middleware has run.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrs []error
	paramErrs []error
}

// BindFunc binds the JSON/form body into obj and checks that the listed
// struct fields were actually provided (non-nil pointers, non-zero values).
func (c *Context) BindFunc(obj interface{}, required ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for _, name := range required {
		field := v.FieldByName(name)
		if !field.IsValid() {
			return NewRequestError(fmt.Errorf("unknown required field %q", name), http.StatusInternalServerError)
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
		if field.Kind() != reflect.Ptr && field.IsZero() {
			return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
	}

	return nil
}

// GetQueryFunc reads an optional query parameter and returns a typed pointer:
// *int, *string or *bool depending on kind. A missing parameter yields a
// typed nil; a malformed one is recorded for ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s: expected int, got %q", name, value))
			return (*int)(nil)
		}
		return &n
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s: expected bool, got %q", name, value))
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	default:
		c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s: unsupported kind %s", name, kind))
		return nil
	}
}

// ValidQuery reports the first malformed query parameter seen by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}
	return nil
}

// GetParam reads a path parameter. Only int and string params exist in this
// API. Malformed values are recorded for ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Errorf("param %s: expected int, got %q", name, value))
			return 0
		}
		return n
	default:
		return value
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}
	return nil
}

// Respond writes data as JSON with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError maps *Error to its status and anything else to a logged 500
// with a generic message. It always writes a response and returns nil so the
// caller chain stops here.
func (c *Context) RespondError(err error) error {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		c.JSON(reqErr.Status, gin.H{
			"error":  reqErr.Error(),
			"status": false,
		})
		return nil
	}

	log.Printf("internal error: %+v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  "internal server error",
		"status": false,
	})
	return nil
}
