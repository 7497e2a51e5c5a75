package entity

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrGone         = errors.New("gone")
	ErrInvalidState = errors.New("invalid state")
	// ErrForbidden rejects writes from banned users.
	ErrForbidden = errors.New("forbidden")
)
