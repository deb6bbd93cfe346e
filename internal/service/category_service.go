package service

import (
	"context"

	"todoapp/internal/model"
)

type CategoryStore interface {
	FindAll(ctx context.Context) []model.Category
}

// CategoryService exposes the shared category list.
type CategoryService struct {
	repo CategoryStore
}

func NewCategoryService(repo CategoryStore) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) FindAll(ctx context.Context) []model.Category {
	return s.repo.FindAll(ctx)
}
