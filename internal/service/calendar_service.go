package service

import (
	"context"
	"fmt"
	"time"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// MonthGrid describes one month's calendar geometry: the weekday of the
// first day (0=Sunday..6=Saturday) and the day count. Enough for a
// caller to lay out a seven-column grid.
type MonthGrid struct {
	Year   int
	Month  time.Month
	Offset int
	Days   int
}

// CalendarService computes month grids and the tasks due inside a
// month. It owns no state beyond the task query it delegates to.
type CalendarService struct {
	taskRepo *repository.TaskRepository
}

func NewCalendarService(taskRepo *repository.TaskRepository) *CalendarService {
	return &CalendarService{taskRepo: taskRepo}
}

// MonthGrid returns the grid geometry for the given month using
// proleptic Gregorian rules, leap years included.
func (s *CalendarService) MonthGrid(year, month int) (MonthGrid, error) {
	if month < 1 || month > 12 {
		return MonthGrid{}, fmt.Errorf("month %d: %w", month, repository.ErrInvalidInput)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:   year,
		Month:  time.Month(month),
		Offset: int(first.Weekday()),
		Days:   daysInMonth(time.Month(month), year),
	}, nil
}

// TasksDueIn returns the tasks whose due date falls inside the given
// month, ordered by due date ascending. Undated tasks are filtered out
// by the query, never sorted.
func (s *CalendarService) TasksDueIn(ctx context.Context, year, month int) ([]model.Task, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d: %w", month, repository.ErrInvalidInput)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.taskRepo.ListDueBetween(ctx, from, to)
}

func daysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)
	lastOfMonth := firstOfNextMonth.AddDate(0, 0, -1)
	return lastOfMonth.Day()
}
