package models

import "time"

// Token maps an opaque bearer value to its owning user. A user may hold
// several tokens at once (one per session); rows live until logout.
type Token struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex;size:64;not null"`
	UserID    uint   `gorm:"index;not null"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
