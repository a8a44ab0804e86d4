// Package entity defines the domain entities for the account feature.
package entity

import "time"

// Account represents a registered identity in the system.
// It carries the credentials used for authentication and is the acting
// identity for every ownership check.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Username is the login name and the subject of issued tokens.
	// It must be unique across all accounts.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the account's email address.
	// It must be unique across all accounts.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account password.
	// This never stores plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
