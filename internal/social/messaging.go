package social

import (
	"sort"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
)

// EphemeralWindow bounds the history shown while ephemeral mode is on.
const EphemeralWindow = 24 * time.Hour

// CheckSendMessage returns nil when senderID may message receiver, or the
// reason it may not. A nil receiver means the lookup found nobody.
func CheckSendMessage(senderID uint, receiver *models.User, g Graph) error {
	if receiver == nil {
		return ErrReceiverNotFound
	}
	if receiver.ID == senderID {
		return ErrMessageSelf
	}
	if g.BlockedEitherWay(senderID, receiver.ID) {
		return ErrMessagingBlocked
	}
	if !g.AreFriends(senderID, receiver.ID) {
		return ErrNotFriends
	}
	return nil
}

// RejectionReason names the check a CheckSendMessage error came from, for
// metrics labels. Unknown errors report "other".
func RejectionReason(err error) string {
	switch err {
	case ErrReceiverNotFound:
		return "receiver_not_found"
	case ErrMessageSelf:
		return "self"
	case ErrMessagingBlocked:
		return "blocked"
	case ErrNotFriends:
		return "not_friends"
	}
	return "other"
}

// Conversation is a thread as rendered for one of its participants.
type Conversation struct {
	Counterpart     UserView                    `json:"counterpart"`
	DisplayName     string                      `json:"display_name"`
	Messages        []models.Message            `json:"messages"`
	Ephemeral       bool                        `json:"ephemeral"`
	ShowReadReceipt bool                        `json:"show_read_receipt"`
	Settings        models.ConversationSettings `json:"settings"`
}

// LoadConversation renders thread for viewerID. mine and theirs are the
// viewer's and the counterpart's settings for this pair.
func LoadConversation(viewerID uint, counterpart models.User, thread []models.Message, mine, theirs models.ConversationSettings, now time.Time) Conversation {
	ephemeral := mine.EphemeralMode || theirs.EphemeralMode
	visible := visibleMessages(thread, ephemeral, now)

	conv := Conversation{
		Counterpart: AnnotateUser(counterpart, now),
		DisplayName: counterpart.DisplayName,
		Messages:    visible,
		Ephemeral:   ephemeral,
		Settings:    mine,
	}
	if nick := mine.NicknameOrEmpty(); nick != "" {
		conv.DisplayName = nick
		conv.Counterpart.DisplayName = nick
	}

	if n := len(visible); n > 0 && theirs.ReadReceipts {
		last := visible[n-1]
		conv.ShowReadReceipt = last.SenderID == viewerID && last.IsRead
	}
	return conv
}

// ConversationSummary is one row of the inbox.
type ConversationSummary struct {
	Counterpart UserView        `json:"counterpart"`
	DisplayName string          `json:"display_name"`
	LastMessage *models.Message `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}

// SummarizeConversation applies the same nickname and ephemeral rules as
// LoadConversation without marking anything read.
func SummarizeConversation(viewerID uint, counterpart models.User, thread []models.Message, mine, theirs models.ConversationSettings, now time.Time) ConversationSummary {
	conv := LoadConversation(viewerID, counterpart, thread, mine, theirs, now)

	summary := ConversationSummary{
		Counterpart: conv.Counterpart,
		DisplayName: conv.DisplayName,
	}
	for i := range conv.Messages {
		m := conv.Messages[i]
		if m.ReceiverID == viewerID && !m.IsRead {
			summary.UnreadCount++
		}
	}
	if n := len(conv.Messages); n > 0 {
		last := conv.Messages[n-1]
		summary.LastMessage = &last
	}
	return summary
}

// SortSummaries orders the inbox by latest activity, silent threads last.
func SortSummaries(summaries []ConversationSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func visibleMessages(thread []models.Message, ephemeral bool, now time.Time) []models.Message {
	out := make([]models.Message, 0, len(thread))
	for _, m := range thread {
		if ephemeral && now.Sub(m.CreatedAt) >= EphemeralWindow {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
