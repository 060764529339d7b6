package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_post_repository.go -package=mocks github.com/anonto42/y2k-space/backend/internal/repositories PostRepository

// PostRepository defines the interface for post data operations. Posts are
// immutable, so there is no update or delete.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByAuthorID(ctx context.Context, authorID uint) ([]models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the indexes the timeline queries rely on.
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now().UTC()
	if post.PostType == "" {
		post.PostType = models.DefaultPostType
	}
	if post.Visibility == "" {
		post.Visibility = models.VisibilityPublic
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("postRepo.CreatePost: %w", err)
	}
	return nil
}

// GetPostByID retrieves a post by ID. Malformed ids are reported as not found.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("postRepo.GetPostByID: %w", err)
	}
	return &post, nil
}

// GetPostsByAuthorID retrieves one author's posts, newest first.
func (r *MongoPostRepository) GetPostsByAuthorID(ctx context.Context, authorID uint) ([]models.Post, error) {
	return r.find(ctx, bson.M{"author_id": authorID})
}

// GetAllPosts retrieves every post, newest first.
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoPostRepository) find(ctx context.Context, filter interface{}) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("postRepo.find: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("postRepo.find: %w", err)
	}
	return posts, nil
}
