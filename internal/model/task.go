package model

import "time"

// Task represents a single tracked item. DueDate and Priority are
// optional; a nil pointer means the field is unset, which is distinct
// from any concrete value. CategoryID must always resolve to an
// existing Category.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Description string
	IsCompleted bool       `gorm:"default:false"`
	DueDate     *time.Time `gorm:"index"`
	Priority    *Priority
	CategoryID  uint     `gorm:"index"`
	Category    Category `gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeDate strips the time component so that due dates compare and
// round-trip as pure calendar dates.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
