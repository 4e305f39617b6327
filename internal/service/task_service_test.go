package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

func newTestRepos(t *testing.T) (*repository.TaskRepository, *repository.CategoryRepository) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewTaskRepository(db), repository.NewCategoryRepository(db)
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func mustCreate(t *testing.T, repo *repository.TaskRepository, task model.Task) *model.Task {
	t.Helper()
	if err := repo.Create(context.Background(), &task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return &task
}

func TestCreateTaskNormalizesDueDate(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)

	noon := time.Date(2024, time.July, 4, 12, 30, 45, 0, time.UTC)
	task, err := svc.CreateTask(context.Background(), TaskInput{
		Title:      "Fireworks",
		CategoryID: 2,
		DueDate:    &noon,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Fatalf("due date not normalized to midnight: %v", task.DueDate)
	}
}

func TestCreateTaskRejectsBadPriority(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)
	ctx := context.Background()

	for _, value := range []model.Priority{0, 4, -1, 99} {
		p := value
		_, err := svc.CreateTask(ctx, TaskInput{Title: "bad", CategoryID: 1, Priority: &p})
		if !errors.Is(err, repository.ErrInvalidInput) {
			t.Errorf("priority %d: got %v, want ErrInvalidInput", value, err)
		}
	}

	tasks, err := svc.ListSorted(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("rejected creates stored %d tasks", len(tasks))
	}
}

func TestCreateTaskAllowsEmptyTitle(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)

	task, err := svc.CreateTask(context.Background(), TaskInput{CategoryID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "" {
		t.Fatalf("title should stay empty, got %q", task.Title)
	}
}

func TestUpdateTaskClearVersusOmit(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)
	ctx := context.Background()

	task := mustCreate(t, taskRepo, model.Task{
		Title:      "Ambiguous",
		CategoryID: 1,
		DueDate:    date(2024, time.May, 20),
	})

	// Omitting the due date leaves it untouched.
	title := "Still dated"
	updated, err := svc.UpdateTask(ctx, task.ID, TaskChanges{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DueDate == nil {
		t.Fatal("omitted due date was cleared")
	}

	// An explicit clear sets it to absent.
	updated, err = svc.UpdateTask(ctx, task.ID, TaskChanges{ClearDueDate: true})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("explicit clear kept due date: %v", updated.DueDate)
	}
}

func TestUpdateTaskRejectsBadPriority(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)
	ctx := context.Background()

	task := mustCreate(t, taskRepo, model.Task{Title: "Prio", CategoryID: 1})

	bad := model.Priority(7)
	if _, err := svc.UpdateTask(ctx, task.ID, TaskChanges{Priority: &bad}); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	taskRepo, _ := newTestRepos(t)
	svc := NewTaskService(taskRepo)
	ctx := context.Background()

	task := mustCreate(t, taskRepo, model.Task{Title: "Twice", CategoryID: 1})

	if err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if err := svc.CompleteTask(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
