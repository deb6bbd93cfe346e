package model

// Priority is shared reference data; Position orders the choices on forms.
type Priority struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
