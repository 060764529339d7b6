package handlers

import (
	"net/http"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

var errFriendBlocked = apperrors.Forbidden("a block exists between you and this user")

// FriendshipHandler handles friend requests and blocks
type FriendshipHandler struct {
	relationshipRepository repositories.RelationshipRepository
	userRepository         repositories.UserRepository
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(relationshipRepo repositories.RelationshipRepository, userRepo repositories.UserRepository) *FriendshipHandler {
	return &FriendshipHandler{
		relationshipRepository: relationshipRepo,
		userRepository:         userRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/requests/pending", h.GetPendingFriendRequests)
	g.POST("/friends/:id", h.AddFriend)
	g.POST("/friends/:id/accept", h.AcceptFriend)
	g.DELETE("/friends/:id", h.RemoveFriend)
	g.POST("/blocks/:id", h.BlockUser)
	g.DELETE("/blocks/:id", h.UnblockUser)
}

// target resolves the :id param to another existing user.
func (h *FriendshipHandler) target(c echo.Context) (uint, uint, error) {
	userID := getUserIDFromContext(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return 0, 0, err
	}
	if targetID == userID {
		return 0, 0, social.ErrSelfRelationship
	}
	if _, err := h.userRepository.GetUserByID(c.Request().Context(), targetID); err != nil {
		return 0, 0, err
	}
	return userID, targetID, nil
}

// AddFriend sends a friend request. Repeating it, or sending one while the
// other user has already asked, changes nothing.
func (h *FriendshipHandler) AddFriend(c echo.Context) error {
	userID, targetID, err := h.target(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	ctx := c.Request().Context()
	graph, err := h.relationshipRepository.GraphFor(ctx, userID)
	if err != nil {
		return toHTTPError(c, err)
	}
	if graph.BlockedEitherWay(userID, targetID) {
		return toHTTPError(c, errFriendBlocked)
	}

	if err := h.relationshipRepository.AddFriend(ctx, userID, targetID); err != nil {
		return toHTTPError(c, err)
	}
	return h.respondWithRelationship(c, userID, targetID)
}

// AcceptFriend accepts a pending request the caller received from :id.
func (h *FriendshipHandler) AcceptFriend(c echo.Context) error {
	userID, targetID, err := h.target(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.relationshipRepository.AcceptFriend(ctx, userID, targetID); err != nil {
		return toHTTPError(c, err)
	}
	return h.respondWithRelationship(c, userID, targetID)
}

// RemoveFriend unfriends, cancels or declines, whichever applies.
func (h *FriendshipHandler) RemoveFriend(c echo.Context) error {
	userID, targetID, err := h.target(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.relationshipRepository.RemoveFriend(ctx, userID, targetID); err != nil {
		return toHTTPError(c, err)
	}
	return h.respondWithRelationship(c, userID, targetID)
}

func (h *FriendshipHandler) BlockUser(c echo.Context) error {
	userID, targetID, err := h.target(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.relationshipRepository.Block(ctx, userID, targetID); err != nil {
		return toHTTPError(c, err)
	}
	return h.respondWithRelationship(c, userID, targetID)
}

func (h *FriendshipHandler) UnblockUser(c echo.Context) error {
	userID, targetID, err := h.target(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.relationshipRepository.Unblock(ctx, userID, targetID); err != nil {
		return toHTTPError(c, err)
	}
	return h.respondWithRelationship(c, userID, targetID)
}

// respondWithRelationship reports the pair's relationship after a mutation.
// When the target has blocked the caller the relationship is left empty.
func (h *FriendshipHandler) respondWithRelationship(c echo.Context, userID, targetID uint) error {
	graph, err := h.relationshipRepository.GraphFor(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(c, err)
	}
	relationship, _ := social.ResolveRelationship(userID, targetID, graph)
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":      targetID,
		"relationship": relationship,
	})
}

// GetFriends lists the caller's accepted friends with presence.
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	graph, err := h.relationshipRepository.GraphFor(ctx, userID)
	if err != nil {
		return toHTTPError(c, err)
	}
	friends, err := h.userRepository.GetUsersByIDs(ctx, graph.FriendIDs(userID))
	if err != nil {
		return toHTTPError(c, err)
	}

	now := timeNow()
	views := make([]social.UserView, 0, len(friends))
	for _, f := range friends {
		views = append(views, social.AnnotateUser(f, now))
	}
	return c.JSON(http.StatusOK, views)
}

// PendingRequest is a friend request waiting for the caller's answer.
type PendingRequest struct {
	models.Friendship
	Sender social.UserView `json:"sender"`
}

// GetPendingFriendRequests lists the requests the caller has received.
func (h *FriendshipHandler) GetPendingFriendRequests(c echo.Context) error {
	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	graph, err := h.relationshipRepository.GraphFor(ctx, userID)
	if err != nil {
		return toHTTPError(c, err)
	}
	pending := graph.PendingFor(userID)

	senderIDs := make([]uint, 0, len(pending))
	for _, p := range pending {
		senderIDs = append(senderIDs, p.SenderID)
	}
	senders, err := loadUserViews(ctx, h.userRepository, senderIDs, timeNow())
	if err != nil {
		return toHTTPError(c, err)
	}

	out := make([]PendingRequest, 0, len(pending))
	for _, p := range pending {
		out = append(out, PendingRequest{Friendship: p, Sender: senders[p.SenderID]})
	}
	return c.JSON(http.StatusOK, out)
}
