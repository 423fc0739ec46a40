package store

import "errors"

// Sentinel errors reported by the stores. Handlers translate these into
// HTTP statuses; anything else is an unexpected storage failure.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidContent    = errors.New("todo content is empty")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrForbidden         = errors.New("todo belongs to another user")
)
