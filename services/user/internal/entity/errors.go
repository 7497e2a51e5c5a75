package entity

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrGone         = errors.New("gone")
	ErrInvalidState = errors.New("invalid state")
	// ErrForbidden rejects a caller editing someone else's profile.
	ErrForbidden = errors.New("forbidden")
)
