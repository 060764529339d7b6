package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	TouchLastActive(ctx context.Context, id uint, at time.Time) error
	SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser inserts user. A duplicate username yields ErrUsernameTaken and
// a duplicate Firebase UID yields ErrFirebaseLinked.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("userRepo.CreateUser: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "userRepo.GetUserByID")
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "userRepo.GetUserByUsername")
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by Firebase UID from PostgreSQL
func (r *PostgresUserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "userRepo.GetUserByFirebaseUID")
	}
	return &user, nil
}

// GetUsersByIDs loads the users with the given ids in no particular order.
// Unknown ids are skipped.
func (r *PostgresUserRepository) GetUsersByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("userRepo.GetUsersByIDs: %w", err)
	}
	return users, nil
}

// UpdateUser saves every profile column of user.
func (r *PostgresUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("userRepo.UpdateUser: %w", err)
	}
	return nil
}

// TouchLastActive records activity without bumping updated_at.
func (r *PostgresUserRepository) TouchLastActive(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).UpdateColumn("last_active", at.UTC()).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsers matches username or display name as a case-insensitive
// substring. LIKE wildcards in query match literally.
func (r *PostgresUserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	err := r.db.WithContext(ctx).
		Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(display_name) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("username").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("userRepo.SearchUsers: %w", err)
	}
	return users, nil
}

func notFoundOr(err, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// uniqueViolation maps a unique-index violation on users to the sentinel for
// the offending column, or returns nil for any other error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return nil
		}
		if strings.Contains(pgErr.ConstraintName, "firebase_uid") {
			return ErrFirebaseLinked
		}
		return ErrUsernameTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return nil
}
