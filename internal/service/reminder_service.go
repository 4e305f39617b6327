package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// dueSoonWindow is how far ahead a due date counts as "due soon".
const dueSoonWindow = 48 * time.Hour

// ReminderService builds console summaries of tasks that need
// attention: overdue ones and ones due within the next two days.
type ReminderService struct {
	taskRepo *repository.TaskRepository
}

func NewReminderService(taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo}
}

// DueSoonSummary returns a human-readable digest of open tasks that are
// overdue or due within the window, or "" when there is nothing to say.
func (s *ReminderService) DueSoonSummary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.taskRepo.ListSorted(ctx)
	if err != nil {
		return "", err
	}

	var overdue, dueSoon []model.Task
	for _, task := range tasks {
		if task.IsCompleted || task.DueDate == nil {
			continue
		}
		switch {
		case task.DueDate.Before(model.NormalizeDate(now)):
			overdue = append(overdue, task)
		case task.DueDate.Sub(now) <= dueSoonWindow:
			dueSoon = append(dueSoon, task)
		}
	}

	if len(overdue) == 0 && len(dueSoon) == 0 {
		return "", nil
	}

	var builder strings.Builder
	if len(overdue) > 0 {
		builder.WriteString("Overdue tasks:\n")
		for _, task := range overdue {
			builder.WriteString(reminderLine(task))
		}
	}
	if len(dueSoon) > 0 {
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString("Due soon:\n")
		for _, task := range dueSoon {
			builder.WriteString(reminderLine(task))
		}
	}
	return strings.TrimRight(builder.String(), "\n"), nil
}

func reminderLine(task model.Task) string {
	return fmt.Sprintf("  - %s (due %s, %s)\n",
		strings.TrimSpace(task.Title),
		task.DueDate.Format("2006-01-02"),
		task.Category.Name,
	)
}
