package entity

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrGone means the target has been soft-deleted.
	ErrGone = errors.New("gone")
	// ErrInvalidState rejects a transition the current row state does not allow.
	ErrInvalidState = errors.New("invalid state")
)
