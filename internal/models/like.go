package models

import "time"

type LikeTarget string

const (
	LikeTargetPost    LikeTarget = "post"
	LikeTargetComment LikeTarget = "comment"
)

func (k LikeTarget) Valid() bool {
	return k == LikeTargetPost || k == LikeTargetComment
}

// Like is unique per (user, target kind, target).
type Like struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_target"`
	TargetKind LikeTarget `json:"target_kind" gorm:"size:20;not null;uniqueIndex:idx_like_user_target;index:idx_like_target"`
	TargetID   string     `json:"target_id" gorm:"size:24;not null;uniqueIndex:idx_like_user_target;index:idx_like_target"`
	CreatedAt  time.Time  `json:"created_at"`
}
