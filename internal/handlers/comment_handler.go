package handlers

import (
	"net/http"
	"strings"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	postRepository         repositories.PostRepository
	relationshipRepository repositories.RelationshipRepository
	enricher               *postEnricher
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	relationshipRepo repositories.RelationshipRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		postRepository:         postRepo,
		relationshipRepository: relationshipRepo,
		enricher:               newPostEnricher(userRepo, commentRepo, likeRepo),
	}
}

// RegisterCommentRoutes registers routes that need an authenticated user
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
}

// RegisterPublicRoutes registers routes that work with or without a viewer
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

// CreateComment creates a new comment on a post the caller can see
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	post, err := loadVisiblePost(ctx, h.postRepository, h.relationshipRepository, c.Param("post_id"), userID)
	if err != nil {
		return toHTTPError(c, err)
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment content is required")
	}

	comment := &models.Comment{
		PostID:   post.ID.Hex(),
		AuthorID: userID,
		Content:  content,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID lists a visible post's comments, oldest first. Every
// comment is shown regardless of who wrote it.
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	post, err := loadVisiblePost(ctx, h.postRepository, h.relationshipRepository, c.Param("post_id"), viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}

	comments, err := h.commentRepository.GetCommentsByPostIDs(ctx, []string{post.ID.Hex()})
	if err != nil {
		return toHTTPError(c, err)
	}
	enriched, err := h.enricher.enrichComments(ctx, viewerID, comments)
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, enriched)
}
