package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	report := s.dbClient.Health(ctx)
	status := http.StatusOK
	state := "healthy"
	if !report.Healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	body := map[string]interface{}{
		"status":   state,
		"version":  version.Full(),
		"database": report,
	}
	if s.connManager != nil {
		body["ws_clients"] = s.connManager.Count()
	}
	return c.JSON(status, body)
}
