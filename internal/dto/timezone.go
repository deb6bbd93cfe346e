package dto

// TimeZone is one selectable zone on the registration form.
type TimeZone struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
