package dbmysql

import (
	"time"
)

// User is an identity record. Presence fields (IsOnline, LastActive) are
// maintained by the backend, never written by the client core.
type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	AvatarURL  string    `gorm:"size:512" json:"avatar_url,omitempty"`
	IsOnline   bool      `gorm:"default:false" json:"is_online"`
	LastActive time.Time `gorm:"autoUpdateTime" json:"last_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
