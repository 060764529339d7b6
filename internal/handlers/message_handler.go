package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/anonto42/y2k-space/backend/pkg/monitoring"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles direct messages and per-conversation settings
type MessageHandler struct {
	userRepository         repositories.UserRepository
	relationshipRepository repositories.RelationshipRepository
	messageRepository      repositories.MessageRepository
	settingsRepository     repositories.ConversationSettingsRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	userRepo repositories.UserRepository,
	relationshipRepo repositories.RelationshipRepository,
	messageRepo repositories.MessageRepository,
	settingsRepo repositories.ConversationSettingsRepository,
) *MessageHandler {
	return &MessageHandler{
		userRepository:         userRepo,
		relationshipRepository: relationshipRepo,
		messageRepository:      messageRepo,
		settingsRepository:     settingsRepo,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/messages", h.ListConversations)
	g.GET("/messages/unread-count", h.GetUnreadCount)
	g.GET("/messages/:username", h.GetConversation)
	g.POST("/messages/:username", h.SendMessage)
	g.PUT("/messages/:username/settings", h.UpdateSettings)
}

// ConversationResponse is a rendered conversation plus whether the viewer
// may currently send into it.
type ConversationResponse struct {
	social.Conversation
	CanSend       bool   `json:"can_send"`
	CannotSendWhy string `json:"cannot_send_reason,omitempty"`
}

// counterpart resolves :username to another existing user.
func (h *MessageHandler) counterpart(c echo.Context) (*models.User, error) {
	user, err := h.userRepository.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, social.ErrReceiverNotFound
		}
		return nil, err
	}
	if user.ID == getUserIDFromContext(c) {
		return nil, social.ErrMessageSelf
	}
	return user, nil
}

// ListConversations returns one entry per friend, most recent activity first.
// Listing does not create settings rows or mark anything read.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)
	now := timeNow()

	graph, err := h.relationshipRepository.GraphFor(ctx, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}
	friends, err := h.userRepository.GetUsersByIDs(ctx, graph.FriendIDs(viewerID))
	if err != nil {
		return toHTTPError(c, err)
	}

	summaries := make([]social.ConversationSummary, 0, len(friends))
	for _, friend := range friends {
		thread, err := h.messageRepository.GetThread(ctx, viewerID, friend.ID)
		if err != nil {
			return toHTTPError(c, err)
		}
		mine, err := h.settingsRepository.FindSettings(ctx, viewerID, friend.ID)
		if err != nil {
			return toHTTPError(c, err)
		}
		theirs, err := h.settingsRepository.FindSettings(ctx, friend.ID, viewerID)
		if err != nil {
			return toHTTPError(c, err)
		}
		summaries = append(summaries, social.SummarizeConversation(viewerID, friend, thread, mine, theirs, now))
	}
	social.SortSummaries(summaries)

	return c.JSON(http.StatusOK, summaries)
}

func (h *MessageHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.messageRepository.GetUnreadCount(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": count})
}

// GetConversation opens the thread with :username. Opening it marks the
// counterpart's messages read and creates both settings rows if missing.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	counterpart, err := h.counterpart(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	graph, err := h.relationshipRepository.GraphFor(ctx, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}
	if graph.HasBlocked(counterpart.ID, viewerID) {
		return toHTTPError(c, social.ErrAccessDenied)
	}

	if err := h.messageRepository.MarkThreadRead(ctx, counterpart.ID, viewerID); err != nil {
		return toHTTPError(c, err)
	}
	mine, err := h.settingsRepository.EnsureSettings(ctx, viewerID, counterpart.ID)
	if err != nil {
		return toHTTPError(c, err)
	}
	theirs, err := h.settingsRepository.EnsureSettings(ctx, counterpart.ID, viewerID)
	if err != nil {
		return toHTTPError(c, err)
	}
	thread, err := h.messageRepository.GetThread(ctx, viewerID, counterpart.ID)
	if err != nil {
		return toHTTPError(c, err)
	}

	resp := ConversationResponse{
		Conversation: social.LoadConversation(viewerID, *counterpart, thread, mine, theirs, timeNow()),
		CanSend:      true,
	}
	if err := social.CheckSendMessage(viewerID, counterpart, graph); err != nil {
		resp.CanSend = false
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			resp.CannotSendWhy = appErr.Message
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// SendMessage sends a direct message to :username. The checks run in a fixed
// order and each failure has its own reason.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	senderID := getUserIDFromContext(c)

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	var receiver *models.User
	user, err := h.userRepository.GetUserByUsername(ctx, c.Param("username"))
	switch {
	case err == nil:
		receiver = user
	case !errors.Is(err, repositories.ErrUserNotFound):
		return toHTTPError(c, err)
	}

	graph, err := h.relationshipRepository.GraphFor(ctx, senderID)
	if err != nil {
		return toHTTPError(c, err)
	}
	if err := social.CheckSendMessage(senderID, receiver, graph); err != nil {
		monitoring.MessagesRejected.WithLabelValues(social.RejectionReason(err)).Inc()
		return toHTTPError(c, err)
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return toHTTPError(c, social.ErrEmptyMessage)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	}
	if err := h.messageRepository.CreateMessage(ctx, msg); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// UpdateSettings stores the caller's settings for the conversation with
// :username. An empty nickname clears it.
func (h *MessageHandler) UpdateSettings(c echo.Context) error {
	var req models.UpdateConversationSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	viewerID := getUserIDFromContext(c)

	counterpart, err := h.counterpart(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	settings, err := h.settingsRepository.EnsureSettings(ctx, viewerID, counterpart.ID)
	if err != nil {
		return toHTTPError(c, err)
	}

	settings.Nickname = nil
	if nick := strings.TrimSpace(req.Nickname); nick != "" {
		settings.Nickname = &nick
	}
	settings.ReadReceipts = req.ReadReceipts
	settings.EphemeralMode = req.EphemeralMode

	if err := h.settingsRepository.UpdateSettings(ctx, &settings); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
