package service

import (
	"context"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// CategoryService provides helpers around categories. Deletion is
// deliberately absent: tasks reference categories by id and the store
// guarantees the reference always resolves.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	return s.repo.Create(ctx, name)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}
