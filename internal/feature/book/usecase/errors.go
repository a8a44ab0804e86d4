package usecase

import "errors"

var (
	// ErrBookNotFound is returned when no book matches the lookup.
	ErrBookNotFound = errors.New("book not found")

	// ErrTitleTaken is returned when a book with the same sanitized title
	// already exists.
	ErrTitleTaken = errors.New("book title already exists")

	// ErrAuthorNotFound is returned when the referenced author does not exist.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNoBooksFound is returned when a listing yields no results.
	ErrNoBooksFound = errors.New("no books found")
)
