package repository

import "errors"

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrUserNotFound is returned when a profile is not found
	ErrUserNotFound = errors.New("user not found")
)
