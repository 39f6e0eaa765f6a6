package models

import "time"

type User struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Name             string     `json:"name"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Roles            []Role     `gorm:"many2many:user_roles" json:"roles"`
	CartItems        []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart_items"`
	FavoriteProducts []Product  `gorm:"many2many:user_favorite_products" json:"favorite_products"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}
