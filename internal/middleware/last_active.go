package middleware

import (
	"context"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ActivityRecorder is the slice of the user store the middleware needs.
type ActivityRecorder interface {
	TouchLastActive(ctx context.Context, id uint, at time.Time) error
}

// LastActiveMiddleware records activity for the authenticated user before the
// handler runs. A failed write is logged and the request continues.
func LastActiveMiddleware(store ActivityRecorder, now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := c.Get(UserContextKey).(*models.JwtCustomClaims); ok && claims.UserID != 0 {
				if err := store.TouchLastActive(c.Request().Context(), claims.UserID, now()); err != nil {
					logger.Log.Warn("Failed to record last activity",
						zap.Uint("user_id", claims.UserID), zap.Error(err))
				}
			}
			return next(c)
		}
	}
}
