package model

// Category labels tasks; shared reference data, never owned by a task.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}
