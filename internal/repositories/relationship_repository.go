package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mocks/mock_relationship_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories RelationshipRepository

// RelationshipRepository stores friend and block edges. Every mutation is
// idempotent: repeating it leaves the store unchanged and returns nil.
type RelationshipRepository interface {
	// GraphFor loads every friend and block edge touching userID.
	GraphFor(ctx context.Context, userID uint) (social.Graph, error)
	AddFriend(ctx context.Context, senderID, receiverID uint) error
	AcceptFriend(ctx context.Context, receiverID, senderID uint) error
	RemoveFriend(ctx context.Context, userID, otherID uint) error
	Block(ctx context.Context, blockerID, blockedID uint) error
	Unblock(ctx context.Context, blockerID, blockedID uint) error
}

// PostgresRelationshipRepository implements RelationshipRepository for PostgreSQL
type PostgresRelationshipRepository struct {
	db *gorm.DB
}

// NewPostgresRelationshipRepository creates a new PostgresRelationshipRepository
func NewPostgresRelationshipRepository(db *gorm.DB) *PostgresRelationshipRepository {
	return &PostgresRelationshipRepository{db: db}
}

func (r *PostgresRelationshipRepository) GraphFor(ctx context.Context, userID uint) (social.Graph, error) {
	var g social.Graph
	db := r.db.WithContext(ctx)

	if err := db.Where("sender_id = ? OR receiver_id = ?", userID, userID).Find(&g.Friendships).Error; err != nil {
		return social.Graph{}, fmt.Errorf("relationshipRepo.GraphFor: %w", err)
	}
	if err := db.Where("blocker_id = ? OR blocked_id = ?", userID, userID).Find(&g.Blocks).Error; err != nil {
		return social.Graph{}, fmt.Errorf("relationshipRepo.GraphFor: %w", err)
	}
	return g, nil
}

// AddFriend creates a pending request unless any edge already joins the pair.
func (r *PostgresRelationshipRepository) AddFriend(ctx context.Context, senderID, receiverID uint) error {
	edge := models.Friendship{SenderID: senderID, ReceiverID: receiverID, Status: models.FriendshipPending}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_low"}, {Name: "pair_high"}},
			DoNothing: true,
		}).
		Create(&edge).Error
	if err != nil {
		return fmt.Errorf("relationshipRepo.AddFriend: %w", err)
	}
	return nil
}

// AcceptFriend flips a pending request from senderID to receiverID. Anything
// else, including a request in the other direction, is left alone.
func (r *PostgresRelationshipRepository) AcceptFriend(ctx context.Context, receiverID, senderID uint) error {
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, models.FriendshipPending).
		Update("status", models.FriendshipAccepted).Error
	if err != nil {
		return fmt.Errorf("relationshipRepo.AcceptFriend: %w", err)
	}
	return nil
}

// RemoveFriend deletes the edge between the pair, pending or accepted.
func (r *PostgresRelationshipRepository) RemoveFriend(ctx context.Context, userID, otherID uint) error {
	if err := deleteFriendship(r.db.WithContext(ctx), userID, otherID); err != nil {
		return fmt.Errorf("relationshipRepo.RemoveFriend: %w", err)
	}
	return nil
}

// Block drops any friend edge between the pair and records the block.
func (r *PostgresRelationshipRepository) Block(ctx context.Context, blockerID, blockedID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteFriendship(tx, blockerID, blockedID); err != nil {
			return err
		}
		block := models.Block{BlockerID: blockerID, BlockedID: blockedID}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blocker_id"}, {Name: "blocked_id"}},
			DoNothing: true,
		}).Create(&block).Error
	})
	if err != nil {
		return fmt.Errorf("relationshipRepo.Block: %w", err)
	}
	return nil
}

func (r *PostgresRelationshipRepository) Unblock(ctx context.Context, blockerID, blockedID uint) error {
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{}).Error
	if err != nil {
		return fmt.Errorf("relationshipRepo.Unblock: %w", err)
	}
	return nil
}

func deleteFriendship(db *gorm.DB, a, b uint) error {
	low, high := models.OrderedPair(a, b)
	return db.Where("pair_low = ? AND pair_high = ?", low, high).Delete(&models.Friendship{}).Error
}
