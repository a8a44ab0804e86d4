// Package entity defines the domain entities for the book feature.
package entity

import "time"

// Book represents a published book. The title is stored in sanitized form
// and must be unique across all books; uniqueness is compared on the
// normalized value. AuthorID is a loose foreign reference — deleting the
// author does not cascade to its books.
type Book struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"uniqueIndex;size:255;not null"`
	AuthorID    uint   `gorm:"index;not null"`
	PublishYear int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
