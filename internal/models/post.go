package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
)

const DefaultPostType = "message"

// Post represents a post stored in MongoDB. Posts are immutable once created.
type Post struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AuthorID   uint               `json:"author_id" bson:"author_id"`
	Content    string             `json:"content" bson:"content"` // already sanitized
	PostType   string             `json:"post_type" bson:"post_type"`
	Visibility Visibility         `json:"visibility" bson:"visibility"`
	ImageURL   string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content    string `json:"content" validate:"required_without=ImageURL,max=5000"`
	PostType   string `json:"post_type" validate:"omitempty,max=20"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=public friends"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
}
