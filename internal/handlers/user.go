package handlers

import (
	"net/http"
	"strings"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/labstack/echo/v4"
)

const searchLimit = 20

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository         repositories.UserRepository
	postRepository         repositories.PostRepository
	relationshipRepository repositories.RelationshipRepository
	enricher               *postEnricher
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	relationshipRepo repositories.RelationshipRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:         userRepo,
		postRepository:         postRepo,
		relationshipRepository: relationshipRepo,
		enricher:               newPostEnricher(userRepo, commentRepo, likeRepo),
	}
}

// RegisterProfileRoutes registers the authenticated user's own profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.GET("/users/search", h.SearchUsers)
}

// RegisterPublicRoutes registers routes that work with or without a viewer
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:username", h.GetUserProfile)
}

// ProfileResponse is a profile page: the user, how the viewer relates to
// them and the posts the viewer may see.
type ProfileResponse struct {
	User         *models.User        `json:"user"`
	Status       social.Presence     `json:"status"`
	Relationship social.Relationship `json:"relationship"`
	IsSelf       bool                `json:"is_self"`
	Posts        []EnrichedPost      `json:"posts"`
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":   user,
		"status": social.ResolvePresence(user.LastActive, timeNow()),
	})
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, getUserIDFromContext(c))
	if err != nil {
		return toHTTPError(c, err)
	}

	user.Username = req.Username
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		user.DisplayName = name
	}
	user.Bio = req.Bio
	user.AvatarURL = req.AvatarURL
	if user.AvatarURL == "" {
		user.AvatarURL = models.DefaultAvatarURL
	}
	user.MusicLink = req.MusicLink
	user.StatusNote = req.StatusNote

	if err := h.userRepository.UpdateUser(ctx, user); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserProfile renders another user's profile for the (optional) viewer.
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	target, err := h.userRepository.GetUserByUsername(ctx, c.Param("username"))
	if err != nil {
		return toHTTPError(c, err)
	}

	graph, err := viewerGraph(ctx, h.relationshipRepository, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}
	relationship, err := social.ResolveRelationship(viewerID, target.ID, graph)
	if err != nil {
		return toHTTPError(c, err)
	}

	posts, err := h.postRepository.GetPostsByAuthorID(ctx, target.ID)
	if err != nil {
		return toHTTPError(c, err)
	}
	enriched, err := h.enricher.enrichPosts(ctx, viewerID, social.FilterVisiblePosts(viewerID, posts, graph))
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		User:         target,
		Status:       social.ResolvePresence(target.LastActive, timeNow()),
		Relationship: relationship,
		IsSelf:       viewerID == target.ID,
		Posts:        enriched,
	})
}

// SearchUsers finds users by username or display name. Users who blocked the
// caller are left out.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	users, err := h.userRepository.SearchUsers(ctx, query, searchLimit)
	if err != nil {
		return toHTTPError(c, err)
	}
	graph, err := viewerGraph(ctx, h.relationshipRepository, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}

	now := timeNow()
	results := make([]social.UserView, 0, len(users))
	for _, u := range users {
		if graph.HasBlocked(u.ID, viewerID) {
			continue
		}
		results = append(results, social.AnnotateUser(u, now))
	}
	return c.JSON(http.StatusOK, results)
}
