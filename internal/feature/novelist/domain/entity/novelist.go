// Package entity defines the domain entities for the novelist feature.
package entity

import "time"

// Novelist represents a novelist. The name is stored in sanitized form and
// must be unique. Novelists do not own books; Author carries the single
// book-ownership relation.
type Novelist struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
