package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mocks/mock_message_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories MessageRepository

// MessageRepository defines the interface for direct message operations
type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *models.Message) error
	// GetThread returns every message between a and b, oldest first.
	GetThread(ctx context.Context, a, b uint) ([]models.Message, error)
	// MarkThreadRead marks the messages from senderID to receiverID read.
	MarkThreadRead(ctx context.Context, senderID, receiverID uint) error
	GetUnreadCount(ctx context.Context, receiverID uint) (int64, error)
}

type postgresMessageRepository struct {
	db *gorm.DB
}

func NewPostgresMessageRepository(db *gorm.DB) MessageRepository {
	return &postgresMessageRepository{db: db}
}

func (r *postgresMessageRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	msg.IsRead = false
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("messageRepo.CreateMessage: %w", err)
	}
	return nil
}

func (r *postgresMessageRepository) GetThread(ctx context.Context, a, b uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("messageRepo.GetThread: %w", err)
	}
	return messages, nil
}

func (r *postgresMessageRepository) MarkThreadRead(ctx context.Context, senderID, receiverID uint) error {
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = false", senderID, receiverID).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("messageRepo.MarkThreadRead: %w", err)
	}
	return nil
}

func (r *postgresMessageRepository) GetUnreadCount(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = false", receiverID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("messageRepo.GetUnreadCount: %w", err)
	}
	return count, nil
}
