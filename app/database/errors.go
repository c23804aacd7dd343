package database

import "errors"

var (
	// ErrNotFound signals that a lookup matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrInvalidClassID signals a student enrollment without a usable class id.
	ErrInvalidClassID = errors.New("invalid classId")
)
