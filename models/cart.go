package models

import "time"

// CartItem is a single cart line: a user's unpurchased intent for a
// product. IsFinished marks lines already converted into an order.
type CartItem struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"user_id"`
	ProductID  string    `gorm:"size:36;not null;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	IsFinished bool      `gorm:"not null;default:false" json:"is_finished"`
	AddedAt    time.Time `json:"added_at"`
}
