package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// PriorityRepository reads priority reference data.
type PriorityRepository struct {
	gw *Gateway
}

func NewPriorityRepository(gw *Gateway) *PriorityRepository {
	return &PriorityRepository{gw: gw}
}

func (r *PriorityRepository) FindByID(ctx context.Context, id uint) (model.Priority, bool) {
	return Optional[model.Priority](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

func (r *PriorityRepository) FindAll(ctx context.Context) []model.Priority {
	return Query[model.Priority](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	})
}
