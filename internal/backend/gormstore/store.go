// Package gormstore implements the backend store facade over MySQL via
// GORM. Every successful write publishes a matching change event, which
// is how subscribed sessions learn about rows written by other clients.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatty/internal/backend"
	"chatty/internal/dbmysql"
	"chatty/internal/feed"
)

type Store struct {
	db   *gorm.DB
	feed feed.Feed
}

func New(db *gorm.DB, f feed.Feed) *Store {
	return &Store{db: db, feed: f}
}

var _ backend.Store = (*Store)(nil)

func (s *Store) ChatMembershipsByUser(ctx context.Context, userID string) ([]dbmysql.ChatMember, error) {
	var members []dbmysql.ChatMember
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&members).Error
	if err != nil {
		return nil, mapError("fetch memberships", err)
	}
	return members, nil
}

func (s *Store) ChatMembers(ctx context.Context, chatID string) ([]dbmysql.ChatMember, error) {
	var members []dbmysql.ChatMember
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Find(&members).Error
	if err != nil {
		return nil, mapError("fetch chat members", err)
	}
	return members, nil
}

func (s *Store) CreateChat(ctx context.Context, chat *dbmysql.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(chat).Error; err != nil {
		return mapError("create chat", err)
	}
	s.publish(ctx, backend.TableChats, feed.EventInsert, chat)
	return nil
}

// AddChatMembers inserts all rows in one statement. There is no
// compensating rollback: if the backend applies only part of it, the
// remaining rows stay absent.
func (s *Store) AddChatMembers(ctx context.Context, members []dbmysql.ChatMember) error {
	if len(members) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&members).Error; err != nil {
		return mapError("add chat members", err)
	}
	for i := range members {
		s.publish(ctx, backend.TableChatMembers, feed.EventInsert, members[i])
	}
	return nil
}

// UserChats builds the conversation-list projection: one summary per chat
// the user belongs to, newest activity first. Each chat costs extra round
// trips for members, unread count and last message; nothing is batched.
func (s *Store) UserChats(ctx context.Context, userID string) ([]backend.ChatSummary, error) {
	memberships, err := s.ChatMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []backend.ChatSummary{}, nil
	}

	chatIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		chatIDs = append(chatIDs, m.ChatID)
	}

	var chats []dbmysql.Chat
	if err := s.db.WithContext(ctx).Where("id IN ?", chatIDs).Find(&chats).Error; err != nil {
		return nil, mapError("fetch chats", err)
	}

	summaries := make([]backend.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary := backend.ChatSummary{Chat: chat, DisplayName: chat.Name}

		if !chat.IsGroup {
			other, err := s.counterpart(ctx, chat.ID, userID)
			if err != nil {
				log.Printf("Error resolving counterpart for chat %s: %v", chat.ID, err)
			} else if other != nil {
				summary.OtherUser = other
				summary.DisplayName = other.Username
			}
		}

		unread, err := s.unreadCount(ctx, chat.ID, userID)
		if err != nil {
			log.Printf("Error counting unread messages for chat %s: %v", chat.ID, err)
		}
		summary.UnreadCount = unread

		last, err := s.lastMessage(ctx, chat.ID)
		if err != nil {
			log.Printf("Error fetching last message for chat %s: %v", chat.ID, err)
		}
		summary.LastMessage = last

		summaries = append(summaries, summary)
	}

	sortByActivity(summaries)
	return summaries, nil
}

func (s *Store) counterpart(ctx context.Context, chatID, selfID string) (*dbmysql.User, error) {
	var members []dbmysql.ChatMember
	if err := s.db.WithContext(ctx).Where("chat_id = ?", chatID).Find(&members).Error; err != nil {
		return nil, mapError("fetch chat members", err)
	}

	var otherID string
	for _, m := range members {
		if m.UserID != selfID {
			otherID = m.UserID
			break
		}
	}
	if otherID == "" {
		return nil, nil
	}

	var user dbmysql.User
	if err := s.db.WithContext(ctx).Where("id = ?", otherID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapError("fetch counterpart user", err)
	}
	return &user, nil
}

func (s *Store) unreadCount(ctx context.Context, chatID, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&dbmysql.Message{}).
		Where("chat_id = ? AND sender_id <> ?", chatID, userID).
		Where("id NOT IN (?)",
			s.db.Model(&dbmysql.MessageRead{}).Select("message_id").Where("user_id = ?", userID),
		).
		Count(&count).Error
	if err != nil {
		return 0, mapError("count unread", err)
	}
	return count, nil
}

func (s *Store) lastMessage(ctx context.Context, chatID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapError("fetch last message", err)
	}
	return &msg, nil
}

func (s *Store) MessagesByChat(ctx context.Context, chatID string) ([]dbmysql.Message, error) {
	var messages []dbmysql.Message
	err := s.db.WithContext(ctx).
		Preload("ReadBy").
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, mapError("fetch messages", err)
	}
	return messages, nil
}

func (s *Store) InsertMessage(ctx context.Context, msg *dbmysql.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.MessageType == "" {
		msg.MessageType = dbmysql.MessageTypeText
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return mapError("insert message", err)
	}
	s.publish(ctx, backend.TableMessages, feed.EventInsert, msg)
	return nil
}

func (s *Store) InsertMessageRead(ctx context.Context, read *dbmysql.MessageRead) error {
	if err := s.db.WithContext(ctx).Create(read).Error; err != nil {
		return mapError("insert read receipt", err)
	}
	s.publish(ctx, backend.TableMessageReads, feed.EventInsert, read)
	return nil
}

func (s *Store) UpsertTypingIndicator(ctx context.Context, indicator *dbmysql.TypingIndicator) error {
	indicator.CreatedAt = time.Now().UTC()
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"created_at"}),
		}).
		Create(indicator).Error
	if err != nil {
		return mapError("upsert typing indicator", err)
	}
	s.publish(ctx, backend.TableTypingIndicators, feed.EventInsert, indicator)
	return nil
}

func (s *Store) DeleteTypingIndicator(ctx context.Context, chatID, userID string) error {
	err := s.db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Delete(&dbmysql.TypingIndicator{}).Error
	if err != nil {
		return mapError("delete typing indicator", err)
	}
	s.publish(ctx, backend.TableTypingIndicators, feed.EventDelete,
		dbmysql.TypingIndicator{ChatID: chatID, UserID: userID})
	return nil
}

func (s *Store) TypingIndicators(ctx context.Context, chatID, excludeUserID string) ([]dbmysql.TypingIndicator, error) {
	var indicators []dbmysql.TypingIndicator
	err := s.db.WithContext(ctx).
		Where("chat_id = ? AND user_id <> ?", chatID, excludeUserID).
		Find(&indicators).Error
	if err != nil {
		return nil, mapError("fetch typing indicators", err)
	}
	return indicators, nil
}

func (s *Store) SearchUsers(ctx context.Context, selfID, query string, limit int) ([]dbmysql.User, error) {
	if limit <= 0 {
		limit = 20
	}

	tx := s.db.WithContext(ctx).Where("id <> ?", selfID)
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("username LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var users []dbmysql.User
	if err := tx.Limit(limit).Find(&users).Error; err != nil {
		return nil, mapError("search users", err)
	}
	return users, nil
}

// publish emits a change event for a persisted row. A feed failure is
// logged, not returned: the row is already durable.
func (s *Store) publish(ctx context.Context, table string, eventType feed.EventType, row interface{}) {
	event, err := feed.NewRowEvent(table, eventType, row)
	if err != nil {
		log.Printf("Error encoding change event for table %s: %v", table, err)
		return
	}
	if err := s.feed.Publish(ctx, event); err != nil {
		log.Printf("Error publishing change event for table %s: %v", table, err)
	}
}

func sortByActivity(summaries []backend.ChatSummary) {
	activity := func(s backend.ChatSummary) time.Time {
		if s.LastMessage != nil {
			return s.LastMessage.CreatedAt
		}
		return s.Chat.UpdatedAt
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return activity(summaries[i]).After(activity(summaries[j]))
	})
}

const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w: %w", op, backend.ErrNotFound, err)
	case errors.As(err, &mysqlErr) && (mysqlErr.Number == mysqlDuplicateEntry || mysqlErr.Number == mysqlNoReferencedRow):
		return fmt.Errorf("%s: %w: %w", op, backend.ErrConstraintViolation, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, gorm.ErrInvalidDB):
		return fmt.Errorf("%s: %w: %w", op, backend.ErrBackendUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
