package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mocks/mock_comment_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories CommentRepository

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id uint) (*models.Comment, error)
	GetCommentsByPostIDs(ctx context.Context, postIDs []string) ([]models.Comment, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("commentRepo.CreateComment: %w", err)
	}
	return nil
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, notFoundOr(err, ErrCommentNotFound, "commentRepo.GetCommentByID")
	}
	return &comment, nil
}

// GetCommentsByPostIDs loads the comments of several posts, oldest first.
func (r *PostgresCommentRepository) GetCommentsByPostIDs(ctx context.Context, postIDs []string) ([]models.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("commentRepo.GetCommentsByPostIDs: %w", err)
	}
	return comments, nil
}
