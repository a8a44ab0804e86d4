// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken is returned when creating an account whose username
	// already exists. The username check runs before the email check, so
	// this error wins when both collide.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when creating an account whose email
	// already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrNotOwner is returned when the acting identity does not own the
	// target account.
	ErrNotOwner = errors.New("account is owned by another identity")

	// ErrInvalidCredentials is returned for both unknown-username and
	// wrong-password so the token endpoint cannot be used to enumerate
	// usernames.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated is returned when a bearer token cannot be
	// resolved to an account.
	ErrUnauthenticated = errors.New("could not validate credentials")
)
