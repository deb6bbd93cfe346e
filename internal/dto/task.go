package dto

import "time"

// Task is the display-ready projection of a stored task: owner and priority
// flattened to id/name pairs, categories flattened to an id list plus a
// sorted, comma-joined name string, and Created rendered in the viewer's
// time zone.
type Task struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Created      time.Time `json:"created"`
	Done         bool      `json:"done"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name"`
	PriorityID   uint      `json:"priority_id"`
	PriorityName string    `json:"priority_name"`
	CategoryIDs  []uint    `json:"category_ids"`
	Categories   string    `json:"categories"`
}
