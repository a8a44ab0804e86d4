// Package usecase implements the business logic for the author feature.
package usecase

import "errors"

var (
	// ErrAuthorNotFound is returned when no author matches the lookup.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNameTaken is returned when an author with the same sanitized name
	// already exists.
	ErrNameTaken = errors.New("author name already exists")
)
