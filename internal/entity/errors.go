package entity

import "errors"

// Domain error taxonomy. Handlers map these with errors.Is:
// invalid input -> 400, not found -> 404, duplicates -> embedded status
// or 409, anything else -> 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrFactNotFound       = errors.New("fact not found")
	ErrDuplicateFact      = errors.New("fact already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
