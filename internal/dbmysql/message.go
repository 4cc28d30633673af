package dbmysql

import (
	"time"
)

// Message types.
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
	MessageTypeEmoji = "emoji"
)

// Message belongs to exactly one Chat, ordered by CreatedAt ascending
// within it. File metadata is set only for image/file messages.
type Message struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	ChatID      string        `gorm:"index;size:36;not null" json:"chat_id"`
	SenderID    string        `gorm:"index;size:36;not null" json:"sender_id"`
	Content     string        `gorm:"type:text" json:"content"`
	MessageType string        `gorm:"type:enum('text','image','file','emoji');default:'text'" json:"message_type"`
	FileURL     string        `gorm:"size:512" json:"file_url,omitempty"`
	FileName    string        `gorm:"size:255" json:"file_name,omitempty"`
	FileSize    int64         `json:"file_size,omitempty"`
	IsEdited    bool          `gorm:"default:false" json:"is_edited"`
	CreatedAt   time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	ReadBy      []MessageRead `gorm:"foreignKey:MessageID" json:"read_by,omitempty"`
}

// MessageRead is a read receipt. At most one per (message, user).
type MessageRead struct {
	MessageID string    `gorm:"primaryKey;size:36" json:"message_id"`
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	ReadAt    time.Time `gorm:"autoCreateTime" json:"read_at"`
}
