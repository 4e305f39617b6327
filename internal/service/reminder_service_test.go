package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"taskmanager/internal/model"
)

func TestDueSoonSummary(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewReminderService(taskRepo)
	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

	mustCreate(t, taskRepo, model.Task{Title: "late report", CategoryID: 1, DueDate: date(2024, time.June, 1)})
	mustCreate(t, taskRepo, model.Task{Title: "tomorrow", CategoryID: 2, DueDate: date(2024, time.June, 11)})
	mustCreate(t, taskRepo, model.Task{Title: "next month", CategoryID: 2, DueDate: date(2024, time.July, 20)})
	mustCreate(t, taskRepo, model.Task{Title: "no date", CategoryID: 1})

	done := mustCreate(t, taskRepo, model.Task{Title: "finished late", CategoryID: 1, DueDate: date(2024, time.June, 2)})
	if err := taskRepo.MarkCompleted(context.Background(), done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	summary, err := svc.DueSoonSummary(context.Background(), now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	for _, want := range []string{"late report", "tomorrow", "Overdue", "Due soon"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	for _, skip := range []string{"next month", "no date", "finished late"} {
		if strings.Contains(summary, skip) {
			t.Errorf("summary should not mention %q:\n%s", skip, summary)
		}
	}
}

func TestDueSoonSummaryEmpty(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewReminderService(taskRepo)

	summary, err := svc.DueSoonSummary(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary != "" {
		t.Fatalf("expected empty summary, got %q", summary)
	}
}
