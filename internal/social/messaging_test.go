package social

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
)

func TestCheckSendMessage(t *testing.T) {
	receiver := &models.User{ID: bob, Username: "bob"}
	friends := Graph{Friendships: []models.Friendship{friendEdge(bob, alice, models.FriendshipAccepted)}}

	tests := []struct {
		name     string
		receiver *models.User
		graph    Graph
		wantErr  error
		wantCode apperrors.Code
	}{
		{"friends may message", receiver, friends, nil, ""},
		{"missing receiver", nil, friends, ErrReceiverNotFound, apperrors.CodeNotFound},
		{"self", &models.User{ID: alice}, friends, ErrMessageSelf, apperrors.CodeInvalidArgument},
		{
			"sender blocked receiver",
			receiver,
			Graph{Friendships: friends.Friendships, Blocks: []models.Block{{BlockerID: alice, BlockedID: bob}}},
			ErrMessagingBlocked, apperrors.CodePermissionDenied,
		},
		{
			"receiver blocked sender",
			receiver,
			Graph{Blocks: []models.Block{{BlockerID: bob, BlockedID: alice}}},
			ErrMessagingBlocked, apperrors.CodePermissionDenied,
		},
		{"strangers", receiver, Graph{}, ErrNotFriends, apperrors.CodePermissionDenied},
		{
			"pending request",
			receiver,
			Graph{Friendships: []models.Friendship{friendEdge(alice, bob, models.FriendshipPending)}},
			ErrNotFriends, apperrors.CodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSendMessage(alice, tt.receiver, tt.graph)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestRejectionReason(t *testing.T) {
	assert.Equal(t, "receiver_not_found", RejectionReason(ErrReceiverNotFound))
	assert.Equal(t, "self", RejectionReason(ErrMessageSelf))
	assert.Equal(t, "blocked", RejectionReason(ErrMessagingBlocked))
	assert.Equal(t, "not_friends", RejectionReason(ErrNotFriends))
	assert.Equal(t, "other", RejectionReason(ErrEmptyMessage))
	assert.NotErrorIs(t, ErrNotFriends, ErrMessagingBlocked)
}

func TestLoadConversation(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	counterpart := models.User{ID: bob, Username: "bob", DisplayName: "Bobby"}
	thread := []models.Message{
		{ID: 1, SenderID: bob, ReceiverID: alice, Content: "old", IsRead: true, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, SenderID: alice, ReceiverID: bob, Content: "recent", IsRead: true, CreatedAt: now.Add(-time.Hour)},
	}
	mine := models.DefaultConversationSettings(alice, bob)
	theirs := models.DefaultConversationSettings(bob, alice)

	t.Run("defaults show full history and the receipt", func(t *testing.T) {
		conv := LoadConversation(alice, counterpart, thread, mine, theirs, now)
		assert.Len(t, conv.Messages, 2)
		assert.False(t, conv.Ephemeral)
		assert.True(t, conv.ShowReadReceipt)
		assert.Equal(t, "Bobby", conv.DisplayName)
	})

	t.Run("ephemeral on either side hides old messages", func(t *testing.T) {
		eph := theirs
		eph.EphemeralMode = true
		conv := LoadConversation(alice, counterpart, thread, mine, eph, now)
		require.Len(t, conv.Messages, 1)
		assert.Equal(t, "recent", conv.Messages[0].Content)
		assert.True(t, conv.Ephemeral)

		eph = mine
		eph.EphemeralMode = true
		conv = LoadConversation(alice, counterpart, thread, eph, theirs, now)
		assert.Len(t, conv.Messages, 1)
	})

	t.Run("ephemeral boundary is exclusive", func(t *testing.T) {
		eph := mine
		eph.EphemeralMode = true
		edge := []models.Message{
			{ID: 1, SenderID: bob, ReceiverID: alice, CreatedAt: now.Add(-EphemeralWindow)},
			{ID: 2, SenderID: bob, ReceiverID: alice, CreatedAt: now.Add(-EphemeralWindow + time.Second)},
		}
		conv := LoadConversation(alice, counterpart, edge, eph, theirs, now)
		require.Len(t, conv.Messages, 1)
		assert.Equal(t, uint(2), conv.Messages[0].ID)
	})

	t.Run("counterpart receipts off hides the receipt", func(t *testing.T) {
		off := theirs
		off.ReadReceipts = false
		conv := LoadConversation(alice, counterpart, thread, mine, off, now)
		assert.False(t, conv.ShowReadReceipt)
	})

	t.Run("viewer's own receipts setting does not matter", func(t *testing.T) {
		off := mine
		off.ReadReceipts = false
		conv := LoadConversation(alice, counterpart, thread, off, theirs, now)
		assert.True(t, conv.ShowReadReceipt)
	})

	t.Run("no receipt when the last message is theirs", func(t *testing.T) {
		conv := LoadConversation(bob, models.User{ID: alice}, thread, theirs, mine, now)
		assert.False(t, conv.ShowReadReceipt)
	})

	t.Run("no receipt while unread", func(t *testing.T) {
		unread := append([]models.Message(nil), thread...)
		unread[1].IsRead = false
		conv := LoadConversation(alice, counterpart, unread, mine, theirs, now)
		assert.False(t, conv.ShowReadReceipt)
	})

	t.Run("no receipt on an empty thread", func(t *testing.T) {
		conv := LoadConversation(alice, counterpart, nil, mine, theirs, now)
		assert.Empty(t, conv.Messages)
		assert.False(t, conv.ShowReadReceipt)
	})

	t.Run("nickname replaces display name", func(t *testing.T) {
		nick := "bestie"
		named := mine
		named.Nickname = &nick
		conv := LoadConversation(alice, counterpart, thread, named, theirs, now)
		assert.Equal(t, "bestie", conv.DisplayName)
		assert.Equal(t, "bestie", conv.Counterpart.DisplayName)

		empty := ""
		named.Nickname = &empty
		conv = LoadConversation(alice, counterpart, thread, named, theirs, now)
		assert.Equal(t, "Bobby", conv.DisplayName)
	})

	t.Run("messages come back oldest first", func(t *testing.T) {
		reversed := []models.Message{thread[1], thread[0]}
		conv := LoadConversation(alice, counterpart, reversed, mine, theirs, now)
		assert.Equal(t, []uint{1, 2}, []uint{conv.Messages[0].ID, conv.Messages[1].ID})
	})
}

func TestSummarizeConversation(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	thread := []models.Message{
		{ID: 1, SenderID: bob, ReceiverID: alice, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, SenderID: bob, ReceiverID: alice, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, SenderID: alice, ReceiverID: bob, CreatedAt: now.Add(-time.Minute)},
	}
	mine := models.DefaultConversationSettings(alice, bob)
	theirs := models.DefaultConversationSettings(bob, alice)

	s := SummarizeConversation(alice, models.User{ID: bob, DisplayName: "Bob"}, thread, mine, theirs, now)
	assert.Equal(t, 2, s.UnreadCount)
	require.NotNil(t, s.LastMessage)
	assert.Equal(t, uint(3), s.LastMessage.ID)

	theirs.EphemeralMode = true
	s = SummarizeConversation(alice, models.User{ID: bob}, thread, mine, theirs, now)
	assert.Equal(t, 1, s.UnreadCount)
}

func TestSortSummaries(t *testing.T) {
	now := time.Now()
	summaries := []ConversationSummary{
		{DisplayName: "silent"},
		{DisplayName: "older", LastMessage: &models.Message{CreatedAt: now.Add(-time.Hour)}},
		{DisplayName: "newest", LastMessage: &models.Message{CreatedAt: now}},
	}

	SortSummaries(summaries)

	names := []string{summaries[0].DisplayName, summaries[1].DisplayName, summaries[2].DisplayName}
	assert.Equal(t, []string{"newest", "older", "silent"}, names)
}
