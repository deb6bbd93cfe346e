package repository

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

// TaskRepository translates task operations into gateway calls. Every
// method degrades to an empty/absent/false result instead of returning an
// error; the presentation layer renders a generic failure message, not
// error detail.
type TaskRepository struct {
	gw *Gateway
}

func NewTaskRepository(gw *Gateway) *TaskRepository {
	return &TaskRepository{gw: gw}
}

// withRelations loads the owner, priority and categories alongside the
// tasks so the mapper never goes back to the store per task.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Priority").Preload("Categories")
}

func (r *TaskRepository) FindAll(ctx context.Context) []model.Task {
	return Query[model.Task](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return withRelations(db).Order("created_utc ASC")
	})
}

func (r *TaskRepository) FindDone(ctx context.Context) []model.Task {
	return Query[model.Task](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return withRelations(db).Where("done = ?", true).Order("created_utc ASC")
	})
}

func (r *TaskRepository) FindNew(ctx context.Context) []model.Task {
	return Query[model.Task](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return withRelations(db).Where("done = ?", false).Order("created_utc ASC")
	})
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (model.Task, bool) {
	return Optional[model.Task](ctx, r.gw, func(db *gorm.DB) *gorm.DB {
		return withRelations(db).Where("id = ?", id)
	})
}

// SetDoneByID marks the task done. Reports true whenever a row matched,
// even if it was already done.
func (r *TaskRepository) SetDoneByID(ctx context.Context, id uint) bool {
	return r.gw.UpdateQuery(ctx, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&model.Task{}).Where("id = ?", id).Update("done", true)
		return res.RowsAffected, res.Error
	})
}

// DeleteByID removes the task and its category references in one
// transaction. Owner, priority and category rows are never touched.
func (r *TaskRepository) DeleteByID(ctx context.Context, id uint) bool {
	return r.gw.UpdateQuery(ctx, func(tx *gorm.DB) (int64, error) {
		if err := tx.Exec("DELETE FROM task_categories WHERE task_id = ?", id).Error; err != nil {
			return 0, err
		}
		res := tx.Delete(&model.Task{}, id)
		return res.RowsAffected, res.Error
	})
}

// Update rewrites the mutable fields of an existing task: title,
// description, priority and the category set. Owner and creation time stay
// as they were. Reports false when no row matches the id.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) bool {
	return r.gw.UpdateQuery(ctx, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&model.Task{}).Where("id = ?", task.ID).
			Updates(map[string]interface{}{
				"title":       task.Title,
				"description": task.Description,
				"priority_id": task.PriorityID,
			})
		if res.Error != nil || res.RowsAffected == 0 {
			return 0, res.Error
		}
		owner := model.Task{ID: task.ID}
		if err := tx.Model(&owner).Association("Categories").Replace(task.Categories); err != nil {
			return 0, err
		}
		return res.RowsAffected, nil
	})
}

// Save inserts a new task and assigns its id. Created defaults to the
// current UTC time when the caller left it zero. Related user and priority
// rows are referenced, never written; category references go to the join
// table only.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) bool {
	if task.Created.IsZero() {
		task.Created = time.Now().UTC()
	}
	err := r.gw.Run(ctx, func(tx *gorm.DB) error {
		return tx.Omit("User", "Priority", "Categories.*").Create(task).Error
	})
	if err != nil {
		log.Printf("save task: %v", err)
		return false
	}
	return true
}
