// Package entity defines the domain entities for the author feature.
package entity

import "time"

// Author represents a book author. The name is stored in sanitized form and
// must be unique; uniqueness is compared on the normalized value.
type Author struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
