package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskmanager/internal/model"
)

// taskOrder sorts by due date ascending with undated tasks last, then
// by priority ascending with unset priorities last.
const taskOrder = "due_date ASC NULLS LAST, priority ASC NULLS LAST"

// TaskUpdate describes a partial task update. Nil pointer fields are
// left untouched; non-nil pointers set the field. The Clear flags set
// the corresponding optional field to absent and win over the pointer.
type TaskUpdate struct {
	Title         *string
	Description   *string
	CategoryID    *uint
	DueDate       *time.Time
	ClearDueDate  bool
	Priority      *model.Priority
	ClearPriority bool
}

// TaskRepository handles CRUD and queries for tasks. Every write keeps
// the category foreign key valid: the existence check and the write run
// in one transaction so a task can never reference a missing category.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, task.CategoryID); err != nil {
			return err
		}
		if err := tx.Omit("Category").Create(task).Error; err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return tx.First(&task.Category, task.CategoryID).Error
	})
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Category").First(&task, id).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("find task: %w", err)
	}
}

// ListSorted returns every task with its category resolved, ordered by
// due date then priority, nulls last for both keys.
func (r *TaskRepository) ListSorted(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("Category").
		Order(taskOrder).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListByCategory returns the tasks of one category in the usual order.
// A missing category fails with ErrNotFound; a category with no tasks
// returns an empty slice.
func (r *TaskRepository) ListByCategory(ctx context.Context, categoryID uint) ([]model.Task, error) {
	db := r.db.WithContext(ctx)
	if err := categoryExists(db, categoryID); err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var tasks []model.Task
	if err := db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order(taskOrder).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by category: %w", err)
	}
	return tasks, nil
}

// ListDueBetween returns tasks whose due date lies in [from, to),
// ordered by due date ascending. Tasks without a due date never match.
func (r *TaskRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date < ?", from, to).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks due between: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update. A change to the category id is
// re-validated inside the transaction; an invalid id fails with
// ErrInvalidCategory and leaves the row untouched.
func (r *TaskRepository) Update(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&task, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("find task: %w", err)
		}

		if update.CategoryID != nil && *update.CategoryID != task.CategoryID {
			if err := categoryExists(tx, *update.CategoryID); err != nil {
				return err
			}
		}

		changes := make(map[string]interface{})
		if update.Title != nil {
			changes["title"] = *update.Title
		}
		if update.Description != nil {
			changes["description"] = *update.Description
		}
		if update.CategoryID != nil {
			changes["category_id"] = *update.CategoryID
		}
		switch {
		case update.ClearDueDate:
			changes["due_date"] = nil
		case update.DueDate != nil:
			changes["due_date"] = *update.DueDate
		}
		switch {
		case update.ClearPriority:
			changes["priority"] = nil
		case update.Priority != nil:
			changes["priority"] = *update.Priority
		}

		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&task).Updates(changes).Error; err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		return tx.First(&task, id).Error
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&task.Category, task.CategoryID).Error; err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	return &task, nil
}

// MarkCompleted sets the completion flag. Completing an already
// completed task is a no-op success.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		err := tx.First(&task, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("find task: %w", err)
		}
		if task.IsCompleted {
			return nil
		}
		if err := tx.Model(&task).Update("is_completed", true).Error; err != nil {
			return fmt.Errorf("complete task: %w", err)
		}
		return nil
	})
}

// Delete removes a task permanently.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func categoryExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if count == 0 {
		return ErrInvalidCategory
	}
	return nil
}
