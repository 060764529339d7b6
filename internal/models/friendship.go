package models

import (
	"time"

	"gorm.io/gorm"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship is a friend request between two users. Only the receiver may
// accept it. PairLow/PairHigh hold the ordered pair so the unique index
// covers both directions.
type Friendship struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	SenderID   uint             `json:"sender_id" gorm:"index;not null"`
	ReceiverID uint             `json:"receiver_id" gorm:"index;not null"`
	Status     FriendshipStatus `json:"status" gorm:"type:varchar(20);not null"`
	PairLow    uint             `json:"-" gorm:"not null;uniqueIndex:idx_friendship_pair"`
	PairHigh   uint             `json:"-" gorm:"not null;uniqueIndex:idx_friendship_pair"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// BeforeCreate fills the ordered pair key from sender and receiver.
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	f.PairLow, f.PairHigh = OrderedPair(f.SenderID, f.ReceiverID)
	if f.Status == "" {
		f.Status = FriendshipPending
	}
	return nil
}

// Involves reports whether the edge connects a and b, in either direction.
func (f *Friendship) Involves(a, b uint) bool {
	return (f.SenderID == a && f.ReceiverID == b) || (f.SenderID == b && f.ReceiverID == a)
}

func OrderedPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}
