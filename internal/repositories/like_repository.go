package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mocks/mock_like_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories LikeRepository

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// ToggleLike removes the user's like on the target if present, otherwise
	// adds it, and reports whether the target is now liked.
	ToggleLike(ctx context.Context, userID uint, kind models.LikeTarget, targetID string) (bool, error)
	CountByTargets(ctx context.Context, kind models.LikeTarget, targetIDs []string) (map[string]int64, error)
	LikedTargets(ctx context.Context, userID uint, kind models.LikeTarget, targetIDs []string) (map[string]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) ToggleLike(ctx context.Context, userID uint, kind models.LikeTarget, targetID string) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		like := models.Like{UserID: userID, TargetKind: kind, TargetID: targetID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("likeRepo.ToggleLike: %w", err)
	}
	return liked, nil
}

// CountByTargets returns the like count per target id. Targets without likes
// are absent from the map.
func (r *PostgresLikeRepository) CountByTargets(ctx context.Context, kind models.LikeTarget, targetIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID string
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("target_id, COUNT(*) AS count").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("likeRepo.CountByTargets: %w", err)
	}
	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

// LikedTargets reports which of targetIDs userID has liked.
func (r *PostgresLikeRepository) LikedTargets(ctx context.Context, userID uint, kind models.LikeTarget, targetIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool)
	if userID == 0 || len(targetIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id IN ?", userID, kind, targetIDs).
		Pluck("target_id", &ids).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("likeRepo.LikedTargets: %w", err)
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
