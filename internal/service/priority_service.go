package service

import (
	"context"

	"todoapp/internal/model"
)

type PriorityStore interface {
	FindByID(ctx context.Context, id uint) (model.Priority, bool)
	FindAll(ctx context.Context) []model.Priority
}

// PriorityService exposes the priority choices for task forms.
type PriorityService struct {
	repo PriorityStore
}

func NewPriorityService(repo PriorityStore) *PriorityService {
	return &PriorityService{repo: repo}
}

func (s *PriorityService) FindByID(ctx context.Context, id uint) (model.Priority, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *PriorityService) FindAll(ctx context.Context) []model.Priority {
	return s.repo.FindAll(ctx)
}
