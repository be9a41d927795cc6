package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/services"
)

// upsertTemplateHandler handles POST /api/v1/templates.
func (s *Server) upsertTemplateHandler(c *echo.Context) error {
	var req UpsertTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	format := models.ParameterFormat(req.ParameterFormat)
	switch format {
	case "", models.ParameterPositional, models.ParameterNamed:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "parameterFormat must be positional or named")
	}

	row, err := s.templates.Upsert(c.Request().Context(), services.UpsertTemplateRequest{
		Name:            req.Name,
		Language:        req.Language,
		Category:        req.Category,
		ParameterFormat: format,
		Components:      req.Components,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// listTemplatesHandler handles GET /api/v1/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	rows, err := s.templates.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
