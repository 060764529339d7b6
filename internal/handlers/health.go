package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is a backing store the health check can probe.
type Pinger func(ctx context.Context) error

// HealthHandler reports whether the service and its stores are reachable.
type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			deps[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "up"
	}

	health := "healthy"
	if status != http.StatusOK {
		health = "degraded"
	}
	return c.JSON(status, echo.Map{
		"status":       health,
		"service":      "y2k-space",
		"dependencies": deps,
	})
}
