package models

import "time"

// Block is directional: BlockerID has blocked BlockedID.
type Block struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlockerID uint      `json:"blocker_id" gorm:"not null;uniqueIndex:idx_block_pair"`
	BlockedID uint      `json:"blocked_id" gorm:"not null;uniqueIndex:idx_block_pair;index"`
	CreatedAt time.Time `json:"created_at"`
}
