package repository

import "errors"

var (
	// ErrDuplicateUser is returned when an insert collides with the unique
	// email or dni constraint.
	ErrDuplicateUser = errors.New("user with that email or dni already exists")

	// ErrUserNotFound is returned when an operation references a user id
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
