package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	postRepository         repositories.PostRepository
	commentRepository      repositories.CommentRepository
	relationshipRepository repositories.RelationshipRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(
	likeRepo repositories.LikeRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	relationshipRepo repositories.RelationshipRepository,
) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		postRepository:         postRepo,
		commentRepository:      commentRepo,
		relationshipRepository: relationshipRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes/:kind/:id", h.ToggleLike)
}

// ToggleLike likes a post or comment, or removes the caller's like if it is
// already there. Targets the caller cannot see are reported as missing.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	kind := models.LikeTarget(c.Param("kind"))
	if !kind.Valid() {
		return toHTTPError(c, apperrors.InvalidArg("like target must be 'post' or 'comment'"))
	}

	targetID := c.Param("id")
	switch kind {
	case models.LikeTargetPost:
		post, err := loadVisiblePost(ctx, h.postRepository, h.relationshipRepository, targetID, userID)
		if err != nil {
			return toHTTPError(c, err)
		}
		targetID = post.ID.Hex()
	case models.LikeTargetComment:
		id, err := strconv.ParseUint(targetID, 10, 32)
		if err != nil {
			return toHTTPError(c, repositories.ErrCommentNotFound)
		}
		comment, err := h.commentRepository.GetCommentByID(ctx, uint(id))
		if err != nil {
			return toHTTPError(c, err)
		}
		if _, err := loadVisiblePost(ctx, h.postRepository, h.relationshipRepository, comment.PostID, userID); err != nil {
			if errors.Is(err, repositories.ErrPostNotFound) {
				return toHTTPError(c, repositories.ErrCommentNotFound)
			}
			return toHTTPError(c, err)
		}
		targetID = commentKey(comment.ID)
	}

	liked, err := h.likeRepository.ToggleLike(ctx, userID, kind, targetID)
	if err != nil {
		return toHTTPError(c, err)
	}
	counts, err := h.likeRepository.CountByTargets(ctx, kind, []string{targetID})
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"liked":      liked,
		"like_count": counts[targetID],
	})
}
