package dbmysql

import (
	"time"
)

// Chat member roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Chat is a conversation. A direct chat has exactly two members,
// IsGroup=false and no name of its own; the display name is derived
// from the counterpart user.
type Chat struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	IsGroup   bool      `gorm:"not null;default:false" json:"is_group"`
	Name      string    `gorm:"size:100" json:"name,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ChatMember links a User to a Chat with a role. A chat's member set is
// the set of rows sharing its ChatID.
type ChatMember struct {
	ChatID   string    `gorm:"primaryKey;size:36" json:"chat_id"`
	UserID   string    `gorm:"primaryKey;size:36;index" json:"user_id"`
	Role     string    `gorm:"type:enum('admin','member');default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
