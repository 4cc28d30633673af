package dbmysql

import (
	"time"
)

// TypingIndicator is an ephemeral per-user-per-chat marker. The
// originating client deletes it after a fixed timeout; a newer upsert
// for the same pair refreshes CreatedAt in place.
type TypingIndicator struct {
	ChatID    string    `gorm:"primaryKey;size:36" json:"chat_id"`
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
