package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// CategoryRepository reads category reference data.
type CategoryRepository struct {
	gw *Gateway
}

func NewCategoryRepository(gw *Gateway) *CategoryRepository {
	return &CategoryRepository{gw: gw}
}

func (r *CategoryRepository) FindAll(ctx context.Context) []model.Category {
	return Query[model.Category](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	})
}
