package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatty/internal/backend/mocks"
	"chatty/internal/dbmysql"
)

func TestResolver_FindsExistingDirectChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return([]dbmysql.ChatMember{
		{ChatID: "group-1", UserID: "alice"},
		{ChatID: "direct-1", UserID: "alice"},
	}, nil)
	store.EXPECT().ChatMembers(ctx, "group-1").Return([]dbmysql.ChatMember{
		{ChatID: "group-1", UserID: "alice"},
		{ChatID: "group-1", UserID: "bob"},
		{ChatID: "group-1", UserID: "carol"},
	}, nil)
	store.EXPECT().ChatMembers(ctx, "direct-1").Return([]dbmysql.ChatMember{
		{ChatID: "direct-1", UserID: "alice"},
		{ChatID: "direct-1", UserID: "bob"},
	}, nil)

	chatID, err := resolver.Resolve(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "direct-1", chatID)
}

func TestResolver_MemberOrderDoesNotMatter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "bob").Return([]dbmysql.ChatMember{
		{ChatID: "direct-1", UserID: "bob"},
	}, nil)
	store.EXPECT().ChatMembers(ctx, "direct-1").Return([]dbmysql.ChatMember{
		{ChatID: "direct-1", UserID: "alice"},
		{ChatID: "direct-1", UserID: "bob"},
	}, nil)

	chatID, err := resolver.Resolve(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "direct-1", chatID)
}

func TestResolver_CreatesChatWhenNoneExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return(nil, nil)
	store.EXPECT().CreateChat(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, chat *dbmysql.Chat) error {
			assert.False(t, chat.IsGroup)
			chat.ID = "chat-new"
			return nil
		})
	store.EXPECT().AddChatMembers(ctx, []dbmysql.ChatMember{
		{ChatID: "chat-new", UserID: "alice", Role: dbmysql.RoleAdmin},
		{ChatID: "chat-new", UserID: "bob", Role: dbmysql.RoleMember},
	}).Return(nil)

	chatID, err := resolver.Resolve(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "chat-new", chatID)
}

func TestResolver_SkipsChatWhoseMembersCannotBeFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return([]dbmysql.ChatMember{
		{ChatID: "broken", UserID: "alice"},
		{ChatID: "direct-1", UserID: "alice"},
	}, nil)
	store.EXPECT().ChatMembers(ctx, "broken").Return(nil, errors.New("timeout"))
	store.EXPECT().ChatMembers(ctx, "direct-1").Return([]dbmysql.ChatMember{
		{ChatID: "direct-1", UserID: "alice"},
		{ChatID: "direct-1", UserID: "bob"},
	}, nil)

	chatID, err := resolver.Resolve(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "direct-1", chatID)
}

func TestResolver_SequentialCallsReturnSameChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	// First call creates the chat.
	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return(nil, nil)
	store.EXPECT().CreateChat(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, chat *dbmysql.Chat) error {
			chat.ID = "chat-new"
			return nil
		})
	store.EXPECT().AddChatMembers(ctx, gomock.Any()).Return(nil)

	// Second call finds it.
	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return([]dbmysql.ChatMember{
		{ChatID: "chat-new", UserID: "alice"},
	}, nil)
	store.EXPECT().ChatMembers(ctx, "chat-new").Return([]dbmysql.ChatMember{
		{ChatID: "chat-new", UserID: "alice", Role: dbmysql.RoleAdmin},
		{ChatID: "chat-new", UserID: "bob", Role: dbmysql.RoleMember},
	}, nil)

	first, err := resolver.Resolve(ctx, "alice", "bob")
	require.NoError(t, err)
	second, err := resolver.Resolve(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolver_RejectsSameUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)

	_, err := resolver.Resolve(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSameUser)
}

func TestResolver_RejectsEmptyUserIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)

	_, err := resolver.Resolve(context.Background(), "", "bob")
	assert.Error(t, err)

	_, err = resolver.Resolve(context.Background(), "alice", "")
	assert.Error(t, err)
}

func TestResolver_MembershipFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return(nil, errors.New("backend down"))

	_, err := resolver.Resolve(ctx, "alice", "bob")
	assert.Error(t, err)
}

func TestResolver_CreateChatFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return(nil, nil)
	store.EXPECT().CreateChat(ctx, gomock.Any()).Return(errors.New("insert failed"))

	_, err := resolver.Resolve(ctx, "alice", "bob")
	assert.Error(t, err)
}

func TestResolver_AddMembersFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().ChatMembershipsByUser(ctx, "alice").Return(nil, nil)
	store.EXPECT().CreateChat(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, chat *dbmysql.Chat) error {
			chat.ID = "chat-new"
			return nil
		})
	store.EXPECT().AddChatMembers(ctx, gomock.Any()).Return(errors.New("insert failed"))

	_, err := resolver.Resolve(ctx, "alice", "bob")
	assert.Error(t, err)
}
