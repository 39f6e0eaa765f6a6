package models

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type Role struct {
	ID string `gorm:"primaryKey;size:32" json:"id"`
}
