package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Region   string `json:"region,omitempty"`
	Role     string `json:"role"` // field_staff, chief_admin
}
