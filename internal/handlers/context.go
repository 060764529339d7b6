package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/middleware"
	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/anonto42/y2k-space/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// getUserIDFromContext returns the authenticated user's id, or 0 for an
// anonymous request.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get(middleware.UserContextKey).(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.InvalidArg("invalid " + name)
	}
	return uint(id), nil
}

// toHTTPError maps an application error onto an echo.HTTPError carrying
// {"code", "message"}. Anything that is not an AppError is logged and
// reported as a 500 without its details.
func toHTTPError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.CodeInternal && appErr.Cause != nil {
			logRequestError(c, err)
		}
		return echo.NewHTTPError(apperrors.HTTPStatus(appErr.Code), echo.Map{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
	}

	logRequestError(c, err)
	return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{
		"code":    apperrors.CodeInternal,
		"message": "internal server error",
	})
}

func logRequestError(c echo.Context, err error) {
	logger.Log.Error("Request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
}

// bindAndValidate binds the request body into req and runs the validator
// registered on the echo instance.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}
