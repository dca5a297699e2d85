// Package postgres holds errors shared by the concrete repositories.
package postgres

import "github.com/pkg/errors"

var (
	ErrNotFound     = errors.New("row not found")
	ErrAlreadyUsed  = errors.New("already used")
	ErrNotPermitted = errors.New("not permitted")
)
