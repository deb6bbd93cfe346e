package repository

import (
	"context"
	"log"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// UserRepository handles account lookups and registration.
type UserRepository struct {
	gw *Gateway
}

func NewUserRepository(gw *Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// Save inserts a new account. A duplicate login violates the unique index
// and reports false, which the register flow turns into a "login already
// taken" message.
func (r *UserRepository) Save(ctx context.Context, user *model.User) bool {
	err := r.gw.Run(ctx, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		log.Printf("save user: %v", err)
		return false
	}
	return true
}

// FindByLoginAndPassword compares the stored credential as an opaque
// string; see DESIGN.md for why no hashing is layered on.
func (r *UserRepository) FindByLoginAndPassword(ctx context.Context, login, password string) (model.User, bool) {
	return Optional[model.User](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return db.Where("login = ? AND password = ?", login, password)
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (model.User, bool) {
	return Optional[model.User](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}
