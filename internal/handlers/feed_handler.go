package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository         repositories.PostRepository
	relationshipRepository repositories.RelationshipRepository
	enricher               *postEnricher
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	relationshipRepo repositories.RelationshipRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:         postRepo,
		relationshipRepository: relationshipRepo,
		enricher:               newPostEnricher(userRepo, commentRepo, likeRepo),
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the home timeline: every post the viewer may see, newest
// first, one page at a time.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	posts, err := h.postRepository.GetAllPosts(ctx)
	if err != nil {
		return toHTTPError(c, err)
	}
	graph, err := viewerGraph(ctx, h.relationshipRepository, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}
	visible := social.FilterVisiblePosts(viewerID, posts, graph)

	totalItems := len(visible)
	start := (page - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}

	enriched, err := h.enricher.enrichPosts(ctx, viewerID, visible[start:end])
	if err != nil {
		return toHTTPError(c, err)
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": enriched,
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}
