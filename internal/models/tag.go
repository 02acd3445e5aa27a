package models

import (
	"time"
)

// Tag is a canonical tag name. Membership checks are case-insensitive; the
// stored Name is the canonical spelling.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
