package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(requestLogger())
}

// requestLogger logs one line per request with method, path, status and
// latency. Webhook traffic logs at debug to keep the provider's retry
// storms out of the signal.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().(*echo.Response).Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"ms", time.Since(start).Milliseconds(),
			}
			if c.Request().URL.Path == "/webhook" {
				slog.Debug("request", attrs...)
			} else {
				slog.Info("request", attrs...)
			}
			return err
		}
	}
}
