package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"chatty/internal/backend"
	"chatty/internal/common"
	"chatty/internal/config"
	"chatty/internal/dbmysql"
	"chatty/internal/feed"
	"chatty/internal/notif"
)

// State is the session lifecycle phase.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// ErrNoActiveChat is returned by operations that require a selected
// conversation.
var ErrNoActiveChat = errors.New("no active chat selected")

// Session is the live client state for one authenticated user: the
// conversation list, the active conversation's messages and typing
// indicators, kept current by change-feed subscriptions. Methods are
// safe for concurrent use; feed handlers run on feed goroutines.
type Session struct {
	store    backend.Store
	feed     feed.Feed
	blobs    backend.BlobStore
	notifier *notif.Manager

	userID         string
	typingTTL      time.Duration
	maxUploadBytes int64

	// afterFunc schedules the typing indicator expiry; tests replace it.
	afterFunc func(d time.Duration, f func()) *time.Timer

	mu           sync.Mutex
	state        State
	chats        []backend.ChatSummary
	activeChatID string
	messages     []dbmysql.Message
	typing       []dbmysql.TypingIndicator
	lastErr      error

	subs []feed.Subscription
}

// NewSession builds a session for the authenticated user. Start must be
// called before the session carries any state.
func NewSession(
	store backend.Store,
	f feed.Feed,
	blobs backend.BlobStore,
	notifier *notif.Manager,
	identity backend.Identity,
	cfg *config.Config,
) (*Session, error) {
	userID, err := identity.CurrentUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	return &Session{
		store:          store,
		feed:           f,
		blobs:          blobs,
		notifier:       notifier,
		userID:         userID,
		typingTTL:      cfg.TypingTTL(),
		maxUploadBytes: cfg.Session.MaxUploadBytes,
		afterFunc:      time.AfterFunc,
		state:          StateUninitialized,
	}, nil
}

// UserID returns the authenticated user the session belongs to.
func (s *Session) UserID() string {
	return s.userID
}

// Start loads the conversation list and subscribes to the change feed.
// A failed initial load still reaches Ready; the error is kept on
// LastError and the list stays empty until a change event triggers a
// successful refetch.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return errors.New("session already started")
	}
	s.state = StateLoading
	s.mu.Unlock()

	s.refreshChats(ctx)

	subscriptions := []struct {
		table     string
		eventType feed.EventType
		handler   feed.Handler
	}{
		{backend.TableChats, feed.EventAny, s.handleChatChange},
		{backend.TableMessages, feed.EventInsert, s.handleMessageInsert},
		{backend.TableTypingIndicators, feed.EventAny, s.handleTypingChange},
	}
	for _, sub := range subscriptions {
		registration, err := s.feed.Subscribe(sub.table, sub.eventType, sub.handler)
		if err != nil {
			s.Close()
			return fmt.Errorf("failed to subscribe to %s changes: %w", sub.table, err)
		}
		s.mu.Lock()
		s.subs = append(s.subs, registration)
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()
	return nil
}

// SelectChat makes chatID the active conversation: fetches its messages
// oldest-first, clears stale typing indicators and marks messages from
// other senders as read. Fetch errors leave the previous view in place
// and are surfaced on LastError.
func (s *Session) SelectChat(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("chat ID is required")
	}

	s.mu.Lock()
	s.activeChatID = chatID
	s.typing = nil
	s.mu.Unlock()

	messages, err := s.store.MessagesByChat(ctx, chatID)
	if err != nil {
		s.setErr(fmt.Errorf("failed to fetch messages for chat %s: %w", chatID, err))
		return err
	}

	s.mu.Lock()
	// A slow response for a previously selected chat must not overwrite
	// the current one.
	if s.activeChatID == chatID {
		s.messages = messages
	}
	s.mu.Unlock()

	s.markRead(ctx, messages)
	return nil
}

// ClearActiveChat deselects the conversation; messages and typing
// indicators are dropped.
func (s *Session) ClearActiveChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeChatID = ""
	s.messages = nil
	s.typing = nil
}

// markRead inserts a read receipt for every fetched message from another
// sender that the user has not read yet. Receipts are independent; one
// failure does not stop the rest.
func (s *Session) markRead(ctx context.Context, messages []dbmysql.Message) {
	for _, msg := range messages {
		if msg.SenderID == s.userID || hasReadReceipt(msg, s.userID) {
			continue
		}
		read := &dbmysql.MessageRead{MessageID: msg.ID, UserID: s.userID}
		if err := s.store.InsertMessageRead(ctx, read); err != nil {
			log.Printf("Error marking message %s as read: %v", msg.ID, err)
		}
	}
}

func hasReadReceipt(msg dbmysql.Message, userID string) bool {
	for _, read := range msg.ReadBy {
		if read.UserID == userID {
			return true
		}
	}
	return false
}

// SendMessage inserts a message into the active conversation. There is
// no optimistic append and no retry: the message appears in the view
// when its own change event arrives, and a failed send is reported once
// to the caller.
func (s *Session) SendMessage(ctx context.Context, content, messageType string) error {
	s.mu.Lock()
	chatID := s.activeChatID
	s.mu.Unlock()
	if chatID == "" {
		return ErrNoActiveChat
	}

	if err := common.ValidateMessage(content, messageType); err != nil {
		return err
	}

	msg := &dbmysql.Message{
		ChatID:      chatID,
		SenderID:    s.userID,
		Content:     content,
		MessageType: messageType,
	}
	if err := s.store.InsertMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// UploadAttachment stores the file under the active chat's blob
// namespace and returns its public locator. The caller attaches the
// locator to a message via SendAttachment or an explicit send.
func (s *Session) UploadAttachment(ctx context.Context, filename string, size int64, content io.Reader) (string, error) {
	s.mu.Lock()
	chatID := s.activeChatID
	s.mu.Unlock()
	if chatID == "" {
		return "", ErrNoActiveChat
	}

	if err := common.ValidateUpload(filename, size, s.maxUploadBytes); err != nil {
		return "", err
	}

	path := common.AttachmentPath(chatID, common.AttachmentObjectName(filename))
	url, err := s.blobs.Put(ctx, path, content)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	return url, nil
}

// SendAttachment uploads the file and sends a message carrying it. The
// message type follows the declared content type: image/* becomes an
// image message, everything else a file message.
func (s *Session) SendAttachment(ctx context.Context, filename, contentType string, size int64, content io.Reader) error {
	url, err := s.UploadAttachment(ctx, filename, size, content)
	if err != nil {
		return err
	}

	s.mu.Lock()
	chatID := s.activeChatID
	s.mu.Unlock()
	if chatID == "" {
		return ErrNoActiveChat
	}

	msg := &dbmysql.Message{
		ChatID:      chatID,
		SenderID:    s.userID,
		Content:     filename,
		MessageType: string(common.DetectAttachmentKind(contentType)),
		FileURL:     url,
		FileName:    filename,
		FileSize:    size,
	}
	if err := s.store.InsertMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to send attachment message: %w", err)
	}
	return nil
}

// NotifyTyping upserts the user's typing indicator for the active chat
// and schedules its deletion after the TTL. Every keystroke schedules
// its own deletion; rapid typing therefore deletes and re-creates the
// row instead of extending it.
func (s *Session) NotifyTyping(ctx context.Context) error {
	s.mu.Lock()
	chatID := s.activeChatID
	s.mu.Unlock()
	if chatID == "" {
		return ErrNoActiveChat
	}

	indicator := &dbmysql.TypingIndicator{ChatID: chatID, UserID: s.userID}
	if err := s.store.UpsertTypingIndicator(ctx, indicator); err != nil {
		return fmt.Errorf("failed to record typing indicator: %w", err)
	}

	s.afterFunc(s.typingTTL, func() {
		if err := s.store.DeleteTypingIndicator(context.Background(), chatID, s.userID); err != nil {
			log.Printf("Error expiring typing indicator for chat %s: %v", chatID, err)
		}
	})
	return nil
}

// SearchUsers looks up other users to start a conversation with.
func (s *Session) SearchUsers(ctx context.Context, query string) ([]dbmysql.User, error) {
	return s.store.SearchUsers(ctx, s.userID, query, 20)
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Chats returns a copy of the conversation list, most recent activity
// first.
func (s *Session) Chats() []backend.ChatSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]backend.ChatSummary, len(s.chats))
	copy(out, s.chats)
	return out
}

// ActiveChatID returns the selected conversation, or "".
func (s *Session) ActiveChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChatID
}

// Messages returns a copy of the active conversation's messages,
// oldest first.
func (s *Session) Messages() []dbmysql.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dbmysql.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// TypingUsers returns who else is typing in the active conversation.
func (s *Session) TypingUsers() []dbmysql.TypingIndicator {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dbmysql.TypingIndicator, len(s.typing))
	copy(out, s.typing)
	return out
}

// LastError returns the most recent background failure, if any.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close stops feed delivery. The session keeps its last state but no
// longer updates.
func (s *Session) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Error unsubscribing from change feed: %v", err)
		}
	}
}

// refreshChats refetches the conversation list. On failure the previous
// list is kept and the error recorded.
func (s *Session) refreshChats(ctx context.Context) {
	summaries, err := s.store.UserChats(ctx, s.userID)
	if err != nil {
		s.setErr(fmt.Errorf("failed to fetch conversation list: %w", err))
		return
	}

	s.mu.Lock()
	s.chats = summaries
	s.lastErr = nil
	s.mu.Unlock()
}

// handleChatChange refetches the whole list on any chats-table change.
// Coarse but correct: membership, names and ordering all come back from
// the same projection.
func (s *Session) handleChatChange(feed.Event) {
	s.refreshChats(context.Background())
}

// handleMessageInsert appends the new message if it belongs to the
// active conversation, refreshes the list (ordering and unread counts
// shift) and raises a notification for messages from other senders.
func (s *Session) handleMessageInsert(event feed.Event) {
	var msg dbmysql.Message
	if err := event.DecodeRow(&msg); err != nil {
		log.Printf("Error decoding message event: %v", err)
		return
	}

	s.mu.Lock()
	if s.activeChatID == msg.ChatID && !containsMessage(s.messages, msg.ID) {
		s.messages = append(s.messages, msg)
	}
	s.mu.Unlock()

	s.refreshChats(context.Background())

	if msg.SenderID != s.userID && s.notifier != nil {
		s.notifier.NotifyAsync(notif.MessageEvent{
			ChatID:     msg.ChatID,
			MessageID:  msg.ID,
			SenderID:   msg.SenderID,
			Preview:    msg.Content,
			ReceivedAt: time.Now(),
		})
	}
}

func containsMessage(messages []dbmysql.Message, id string) bool {
	for _, m := range messages {
		if m.ID == id {
			return true
		}
	}
	return false
}

// handleTypingChange refetches indicators for the active conversation,
// excluding the user's own.
func (s *Session) handleTypingChange(feed.Event) {
	s.mu.Lock()
	chatID := s.activeChatID
	s.mu.Unlock()
	if chatID == "" {
		return
	}

	indicators, err := s.store.TypingIndicators(context.Background(), chatID, s.userID)
	if err != nil {
		s.setErr(fmt.Errorf("failed to fetch typing indicators: %w", err))
		return
	}

	s.mu.Lock()
	// Ignore a late response if the selection moved on meanwhile.
	if s.activeChatID == chatID {
		s.typing = indicators
	}
	s.mu.Unlock()
}

func (s *Session) setErr(err error) {
	log.Printf("Session error: %v", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
