package models

// ConversationSettings holds one side's preferences for a conversation.
// Rows are unique per ordered (OwnerID, CounterpartID) pair.
type ConversationSettings struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	OwnerID       uint    `json:"owner_id" gorm:"not null;uniqueIndex:idx_conversation_owner_counterpart"`
	CounterpartID uint    `json:"counterpart_id" gorm:"not null;uniqueIndex:idx_conversation_owner_counterpart"`
	Nickname      *string `json:"nickname" gorm:"size:50"`
	ReadReceipts  bool    `json:"read_receipts" gorm:"not null"`
	EphemeralMode bool    `json:"ephemeral_mode" gorm:"not null"`
}

// DefaultConversationSettings returns the settings a conversation starts with:
// read receipts on, ephemeral mode off, no nickname.
func DefaultConversationSettings(ownerID, counterpartID uint) ConversationSettings {
	return ConversationSettings{
		OwnerID:       ownerID,
		CounterpartID: counterpartID,
		ReadReceipts:  true,
	}
}

// NicknameOrEmpty dereferences Nickname.
func (s ConversationSettings) NicknameOrEmpty() string {
	if s.Nickname == nil {
		return ""
	}
	return *s.Nickname
}

type UpdateConversationSettingsRequest struct {
	Nickname      string `json:"nickname" validate:"max=50"`
	ReadReceipts  bool   `json:"read_receipts"`
	EphemeralMode bool   `json:"ephemeral_mode"`
}
