package api

import (
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// maxSettingBody caps one settings value.
const maxSettingBody = 64 << 10

// getSettingHandler handles GET /api/v1/settings/:key.
func (s *Server) getSettingHandler(c *echo.Context) error {
	raw, err := s.settings.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// putSettingHandler handles PUT /api/v1/settings/:key. The body is the
// raw JSON value.
func (s *Server) putSettingHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSettingBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	if !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "value must be valid JSON")
	}

	if err := s.settings.SaveRaw(c.Request().Context(), c.Param("key"), body); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
