package repositories

import "github.com/anonto42/y2k-space/backend/pkg/apperrors"

var (
	ErrUserNotFound    = apperrors.NotFound("user not found")
	ErrPostNotFound    = apperrors.NotFound("post not found")
	ErrCommentNotFound = apperrors.NotFound("comment not found")
	ErrUsernameTaken   = apperrors.AlreadyExists("username is already taken")
	ErrFirebaseLinked  = apperrors.AlreadyExists("this Firebase account is already linked")
)
