// Package backend defines the contracts the chat core consumes: a typed
// store over the relational backend, blob storage for attachments, and
// the authenticated identity. Implementations live in subpackages; the
// change feed lives in internal/feed.
package backend

import (
	"context"
	"io"

	"chatty/internal/dbmysql"
)

// Table names as emitted on the change feed.
const (
	TableUsers            = "users"
	TableChats            = "chats"
	TableChatMembers      = "chat_members"
	TableMessages         = "messages"
	TableMessageReads     = "message_reads"
	TableTypingIndicators = "typing_indicators"
)

// ChatSummary is the conversation-list projection: one row per chat the
// user belongs to, annotated with unread count, last-message preview and,
// for direct chats, the counterpart user.
type ChatSummary struct {
	Chat        dbmysql.Chat     `json:"chat"`
	DisplayName string           `json:"display_name"`
	UnreadCount int64            `json:"unread_count"`
	LastMessage *dbmysql.Message `json:"last_message,omitempty"`
	OtherUser   *dbmysql.User    `json:"other_user,omitempty"`
}

// Store is the relational backend facade. Write operations publish a
// matching change event after the row is persisted.
type Store interface {
	// Memberships and chats.
	ChatMembershipsByUser(ctx context.Context, userID string) ([]dbmysql.ChatMember, error)
	ChatMembers(ctx context.Context, chatID string) ([]dbmysql.ChatMember, error)
	CreateChat(ctx context.Context, chat *dbmysql.Chat) error
	AddChatMembers(ctx context.Context, members []dbmysql.ChatMember) error
	UserChats(ctx context.Context, userID string) ([]ChatSummary, error)

	// Messages and read receipts.
	MessagesByChat(ctx context.Context, chatID string) ([]dbmysql.Message, error)
	InsertMessage(ctx context.Context, msg *dbmysql.Message) error
	InsertMessageRead(ctx context.Context, read *dbmysql.MessageRead) error

	// Typing indicators.
	UpsertTypingIndicator(ctx context.Context, indicator *dbmysql.TypingIndicator) error
	DeleteTypingIndicator(ctx context.Context, chatID, userID string) error
	TypingIndicators(ctx context.Context, chatID, excludeUserID string) ([]dbmysql.TypingIndicator, error)

	// User directory for starting new conversations.
	SearchUsers(ctx context.Context, selfID, query string, limit int) ([]dbmysql.User, error)
}

// BlobStore persists attachment bytes under a namespace path and returns
// a durable, publicly dereferenceable locator.
type BlobStore interface {
	Put(ctx context.Context, path string, content io.Reader) (string, error)
}

// Identity reports the authenticated user.
type Identity interface {
	CurrentUserID() (string, error)
}
