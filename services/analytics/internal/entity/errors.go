package entity

import "errors"

var (
	// ErrNotFound means the referenced user, channel or video does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGone means the entity exists but has been soft-deleted.
	ErrGone = errors.New("gone")
)
