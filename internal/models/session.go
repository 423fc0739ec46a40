package models

import "time"

// Session stores user login sessions (for logout and invalidation).
// The ID is the opaque identifier carried by the browser cookie; username
// and email are denormalized so resolving a session needs no extra lookup.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	Username  string    `gorm:"size:64;not null"`
	Email     string    `gorm:"size:255;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
