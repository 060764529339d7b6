package models

import "time"

type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index:idx_message_pair;not null"`
	ReceiverID uint      `json:"receiver_id" gorm:"index:idx_message_pair;index;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
