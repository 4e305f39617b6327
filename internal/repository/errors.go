package repository

import "errors"

// Failure taxonomy returned by the store. Callers match these with
// errors.Is; anything else coming out of a repository is a storage
// failure wrapped at the point it occurred.
var (
	// ErrInvalidInput marks a malformed or out-of-range caller value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a task or category id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCategory marks a task write whose category id does not
	// resolve to an existing category.
	ErrInvalidCategory = errors.New("category does not exist")

	// ErrDuplicateName marks a category creation that collides
	// case-insensitively with an existing name.
	ErrDuplicateName = errors.New("category name already exists")
)
