package model

import "time"

// Task is a single to-do item. Created is stored in UTC and never changes
// after insert; conversion to the viewer's zone happens in the service layer.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Description string
	Created     time.Time `gorm:"column:created_utc"`
	Done        bool      `gorm:"default:false"`
	UserID      uint      `gorm:"index"`
	User        User
	PriorityID  *uint `gorm:"index"`
	Priority    *Priority
	Categories  []Category `gorm:"many2many:task_categories"`
}
