package service

import (
	"context"
	"fmt"
	"time"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// TaskInput carries the fields for a new task. DueDate and Priority may
// be nil, meaning unset.
type TaskInput struct {
	Title       string
	Description string
	CategoryID  uint
	DueDate     *time.Time
	Priority    *model.Priority
}

// TaskChanges is the partial-update surface. Nil fields stay untouched;
// the Clear flags set the matching optional field to absent.
type TaskChanges struct {
	Title         *string
	Description   *string
	CategoryID    *uint
	DueDate       *time.Time
	ClearDueDate  bool
	Priority      *model.Priority
	ClearPriority bool
}

// TaskService wraps task business logic: write-side validation plus the
// read-side listing contracts.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if err := validPriority(input.Priority); err != nil {
		return nil, err
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		DueDate:     normalizeDue(input.DueDate),
		Priority:    input.Priority,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// ListSorted returns every task ordered by due date then priority,
// undated and unprioritized tasks last for their respective keys.
func (s *TaskService) ListSorted(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListSorted(ctx)
}

// ListByCategory returns one category's tasks in the usual order, or
// repository.ErrNotFound when the category itself does not exist.
func (s *TaskService) ListByCategory(ctx context.Context, categoryID uint) ([]model.Task, error) {
	return s.taskRepo.ListByCategory(ctx, categoryID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, changes TaskChanges) (*model.Task, error) {
	if err := validPriority(changes.Priority); err != nil {
		return nil, err
	}
	return s.taskRepo.Update(ctx, id, repository.TaskUpdate{
		Title:         changes.Title,
		Description:   changes.Description,
		CategoryID:    changes.CategoryID,
		DueDate:       normalizeDue(changes.DueDate),
		ClearDueDate:  changes.ClearDueDate,
		Priority:      changes.Priority,
		ClearPriority: changes.ClearPriority,
	})
}

// CompleteTask marks a task done. Already-completed tasks stay done; this
// is not an error.
func (s *TaskService) CompleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.MarkCompleted(ctx, id)
}

// DeleteTask removes a task permanently.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

func validPriority(p *model.Priority) error {
	if p != nil && !p.Valid() {
		return fmt.Errorf("priority %d: %w", *p, repository.ErrInvalidInput)
	}
	return nil
}

func normalizeDue(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := model.NormalizeDate(*t)
	return &d
}
