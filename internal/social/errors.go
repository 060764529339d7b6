package social

import "github.com/anonto42/y2k-space/backend/pkg/apperrors"

var (
	ErrAccessDenied     = apperrors.Forbidden("you cannot view this profile")
	ErrSelfRelationship = apperrors.InvalidArg("you cannot do that to yourself")
	ErrReceiverNotFound = apperrors.NotFound("this user does not exist")
	ErrMessageSelf      = apperrors.InvalidArg("you cannot send a message to yourself")
	ErrMessagingBlocked = apperrors.Forbidden("messages cannot be exchanged with this user")
	ErrNotFriends       = apperrors.Forbidden("you must be friends to send a message")
	ErrEmptyMessage     = apperrors.InvalidArg("message content is required")
)
