// Package chat is the client core: resolving direct conversations and
// running the live synchronization session a UI reads its state from.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"chatty/internal/backend"
	"chatty/internal/dbmysql"
)

// ErrSameUser is returned when a direct chat is requested between a user
// and themselves.
var ErrSameUser = errors.New("cannot start a direct chat with yourself")

// Resolver finds or creates the direct (one-to-one) chat between two
// users.
type Resolver struct {
	store backend.Store
}

func NewResolver(store backend.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the ID of the direct chat between selfID and otherID,
// creating it if none exists. The lookup scans selfID's memberships and
// matches the first chat whose member set is exactly the two users.
//
// Find and create are not atomic: two users resolving each other
// concurrently can each miss the other's in-flight chat and create a
// duplicate. Subsequent calls settle on whichever chat the membership
// scan returns first.
func (r *Resolver) Resolve(ctx context.Context, selfID, otherID string) (string, error) {
	if selfID == "" || otherID == "" {
		return "", errors.New("both user IDs are required")
	}
	if selfID == otherID {
		return "", ErrSameUser
	}

	memberships, err := r.store.ChatMembershipsByUser(ctx, selfID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch chats for user %s: %w", selfID, err)
	}

	for _, membership := range memberships {
		members, err := r.store.ChatMembers(ctx, membership.ChatID)
		if err != nil {
			log.Printf("Error checking members of chat %s: %v", membership.ChatID, err)
			continue
		}
		if isDirectChatBetween(members, selfID, otherID) {
			return membership.ChatID, nil
		}
	}

	chat := &dbmysql.Chat{IsGroup: false}
	if err := r.store.CreateChat(ctx, chat); err != nil {
		return "", fmt.Errorf("failed to create chat: %w", err)
	}

	// If this insert fails the chat row above is left memberless. It is
	// invisible to both users and harmless; the next Resolve call
	// creates a fresh chat.
	members := []dbmysql.ChatMember{
		{ChatID: chat.ID, UserID: selfID, Role: dbmysql.RoleAdmin},
		{ChatID: chat.ID, UserID: otherID, Role: dbmysql.RoleMember},
	}
	if err := r.store.AddChatMembers(ctx, members); err != nil {
		return "", fmt.Errorf("failed to add members to chat %s: %w", chat.ID, err)
	}

	return chat.ID, nil
}

func isDirectChatBetween(members []dbmysql.ChatMember, selfID, otherID string) bool {
	if len(members) != 2 {
		return false
	}
	var hasSelf, hasOther bool
	for _, m := range members {
		switch m.UserID {
		case selfID:
			hasSelf = true
		case otherID:
			hasOther = true
		}
	}
	return hasSelf && hasOther
}
