package model

import "time"

// Category groups tasks by area (work, personal, shopping, etc.).
// A category does not store its tasks; they are resolved by querying
// tasks whose CategoryID matches.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
