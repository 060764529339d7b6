package handlers

import (
	"net/http"
	"strings"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository         repositories.PostRepository
	relationshipRepository repositories.RelationshipRepository
	enricher               *postEnricher
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	relationshipRepo repositories.RelationshipRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:         postRepo,
		relationshipRepository: relationshipRepo,
		enricher:               newPostEnricher(userRepo, commentRepo, likeRepo),
	}
}

// RegisterPostRoutes registers routes that need an authenticated user
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
}

// RegisterPublicRoutes registers routes that work with or without a viewer
func (h *PostHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost handles creating a new post. Content arrives already sanitized.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post := &models.Post{
		AuthorID:   getUserIDFromContext(c),
		Content:    strings.TrimSpace(req.Content),
		PostType:   req.PostType,
		Visibility: models.Visibility(req.Visibility),
		ImageURL:   req.ImageURL,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost returns one post if the viewer may see it. A post the viewer may
// not see is reported as missing.
func (h *PostHandler) GetPost(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	post, err := loadVisiblePost(ctx, h.postRepository, h.relationshipRepository, c.Param("id"), viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}

	enriched, err := h.enricher.enrichPosts(ctx, viewerID, []models.Post{*post})
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, enriched[0])
}
