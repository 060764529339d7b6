package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mocks/mock_conversation_settings_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories ConversationSettingsRepository

// ConversationSettingsRepository stores each side's per-conversation settings.
type ConversationSettingsRepository interface {
	// EnsureSettings returns the owner's row for the pair, creating the
	// default row first if there is none.
	EnsureSettings(ctx context.Context, ownerID, counterpartID uint) (models.ConversationSettings, error)
	// FindSettings returns the stored row or unsaved defaults.
	FindSettings(ctx context.Context, ownerID, counterpartID uint) (models.ConversationSettings, error)
	UpdateSettings(ctx context.Context, settings *models.ConversationSettings) error
}

type postgresConversationSettingsRepository struct {
	db *gorm.DB
}

func NewPostgresConversationSettingsRepository(db *gorm.DB) ConversationSettingsRepository {
	return &postgresConversationSettingsRepository{db: db}
}

func (r *postgresConversationSettingsRepository) EnsureSettings(ctx context.Context, ownerID, counterpartID uint) (models.ConversationSettings, error) {
	db := r.db.WithContext(ctx)

	defaults := models.DefaultConversationSettings(ownerID, counterpartID)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "counterpart_id"}},
		DoNothing: true,
	}).Create(&defaults).Error
	if err != nil {
		return models.ConversationSettings{}, fmt.Errorf("settingsRepo.EnsureSettings: %w", err)
	}

	var settings models.ConversationSettings
	err = db.Where("owner_id = ? AND counterpart_id = ?", ownerID, counterpartID).First(&settings).Error
	if err != nil {
		return models.ConversationSettings{}, fmt.Errorf("settingsRepo.EnsureSettings: %w", err)
	}
	return settings, nil
}

func (r *postgresConversationSettingsRepository) FindSettings(ctx context.Context, ownerID, counterpartID uint) (models.ConversationSettings, error) {
	var settings models.ConversationSettings
	err := r.db.WithContext(ctx).Where("owner_id = ? AND counterpart_id = ?", ownerID, counterpartID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultConversationSettings(ownerID, counterpartID), nil
	}
	if err != nil {
		return models.ConversationSettings{}, fmt.Errorf("settingsRepo.FindSettings: %w", err)
	}
	return settings, nil
}

// UpdateSettings writes every column, so false flags and a cleared nickname
// are stored as given.
func (r *postgresConversationSettingsRepository) UpdateSettings(ctx context.Context, settings *models.ConversationSettings) error {
	err := r.db.WithContext(ctx).Model(&models.ConversationSettings{}).
		Where("owner_id = ? AND counterpart_id = ?", settings.OwnerID, settings.CounterpartID).
		Updates(map[string]interface{}{
			"nickname":       settings.Nickname,
			"read_receipts":  settings.ReadReceipts,
			"ephemeral_mode": settings.EphemeralMode,
		}).Error
	if err != nil {
		return fmt.Errorf("settingsRepo.UpdateSettings: %w", err)
	}
	return nil
}
