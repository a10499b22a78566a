package models

import "errors"

var (
	// ErrValidation is returned when input cannot build a consistent entity.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned by storage lookups that match nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation is returned when mutating an entity that is read-only,
	// such as a template food.
	ErrInvalidOperation = errors.New("invalid operation")
)
