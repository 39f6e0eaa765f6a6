package models

import "time"

type RefreshToken struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
