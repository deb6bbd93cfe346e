package service

import (
	"context"

	"todoapp/internal/model"
)

// UserStore is what the user service needs from its repository.
type UserStore interface {
	Save(ctx context.Context, user *model.User) bool
	FindByLoginAndPassword(ctx context.Context, login, password string) (model.User, bool)
	FindByID(ctx context.Context, id uint) (model.User, bool)
}

// UserService wraps account operations.
type UserService struct {
	repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Save(ctx context.Context, user *model.User) bool {
	return s.repo.Save(ctx, user)
}

func (s *UserService) FindByLoginAndPassword(ctx context.Context, login, password string) (model.User, bool) {
	return s.repo.FindByLoginAndPassword(ctx, login, password)
}

func (s *UserService) FindByID(ctx context.Context, id uint) (model.User, bool) {
	return s.repo.FindByID(ctx, id)
}
