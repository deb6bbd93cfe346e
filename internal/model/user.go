package model

// User is an account that owns tasks. Timezone is an IANA zone name;
// empty means the host default zone is used for display.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Login    string `gorm:"uniqueIndex" json:"login"`
	Password string `json:"-"` // stored as given, compared as an opaque string
	Timezone string `json:"timezone"`
}
