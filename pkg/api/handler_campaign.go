package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/services"
	"github.com/waflow/waflow/pkg/template"
)

// createCampaignHandler handles POST /api/v1/campaigns.
func (s *Server) createCampaignHandler(c *echo.Context) error {
	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	contacts := make([]services.ContactInput, 0, len(req.Contacts))
	for _, in := range req.Contacts {
		contacts = append(contacts, services.ContactInput{
			ContactID:    in.ContactID,
			Phone:        in.Phone,
			Name:         in.Name,
			Email:        in.Email,
			CustomFields: in.CustomFields,
		})
	}

	campaign, err := s.campaigns.CreateCampaign(c.Request().Context(), services.CreateCampaignRequest{
		Name:              req.Name,
		TemplateName:      req.TemplateName,
		TemplateVariables: req.TemplateVariables,
		ScheduledAt:       req.ScheduledAt,
		Contacts:          contacts,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, campaignResponse(campaign))
}

// listCampaignsHandler handles GET /api/v1/campaigns.
func (s *Server) listCampaignsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	rows, err := s.campaigns.ListCampaigns(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]CampaignResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, campaignResponse(row))
	}
	return c.JSON(http.StatusOK, out)
}

// getCampaignHandler handles GET /api/v1/campaigns/:id.
func (s *Server) getCampaignHandler(c *echo.Context) error {
	campaign, err := s.campaigns.GetCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, campaignResponse(campaign))
}

// startCampaignHandler handles POST /api/v1/campaigns/:id/start.
func (s *Server) startCampaignHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := s.campaigns.StartCampaign(ctx, id); err != nil {
		return mapServiceError(err)
	}
	s.publishCampaignProgress(ctx, id)
	return c.NoContent(http.StatusNoContent)
}

// pauseCampaignHandler handles POST /api/v1/campaigns/:id/pause.
func (s *Server) pauseCampaignHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := s.campaigns.PauseCampaign(ctx, id); err != nil {
		return mapServiceError(err)
	}
	s.publishCampaignProgress(ctx, id)
	return c.NoContent(http.StatusNoContent)
}

// resumeCampaignHandler handles POST /api/v1/campaigns/:id/resume.
func (s *Server) resumeCampaignHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := s.campaigns.ResumeSending(ctx, id); err != nil {
		return mapServiceError(err)
	}
	s.publishCampaignProgress(ctx, id)
	return c.NoContent(http.StatusNoContent)
}

// cancelCampaignHandler handles POST /campaigns/:id/cancel. Idempotent:
// a repeat cancel reports already_cancelled with 200; a terminal
// campaign conflicts with 409.
func (s *Server) cancelCampaignHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	outcome, err := s.campaigns.CancelCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, "campaign is in a terminal state")
		}
		return mapServiceError(err)
	}

	s.publishCampaignProgress(ctx, id)
	return c.JSON(http.StatusOK, CancelResponse{Status: string(outcome)})
}

// precheckHandler handles POST /campaigns/precheck: dry-run validation
// of phone numbers and template variable bindings for a contact list.
func (s *Server) precheckHandler(c *echo.Context) error {
	var req PrecheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.TemplateName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "templateName is required")
	}

	row, err := s.templates.GetByName(c.Request().Context(), req.TemplateName)
	if err != nil {
		return mapServiceError(err)
	}
	spec := services.SpecFor(row)

	resp := PrecheckResponse{
		Results: make([]PrecheckResultPayload, 0, len(req.Contacts)),
	}
	for _, in := range req.Contacts {
		result := template.Precheck(template.Contact{
			ContactID:    in.ContactID,
			Name:         in.Name,
			Phone:        in.Phone,
			Email:        in.Email,
			CustomFields: in.CustomFields,
		}, spec, req.TemplateVariables)

		resp.Totals.Total++
		if result.OK {
			resp.Totals.Valid++
		} else {
			resp.Totals.Skipped++
		}
		resp.Results = append(resp.Results, PrecheckResultPayload{
			OK:              result.OK,
			NormalizedPhone: result.NormalizedPhone,
			SkipCode:        result.SkipCode,
			Reason:          result.Reason,
			Missing:         result.Missing,
		})
	}
	resp.OK = resp.Totals.Skipped == 0

	return c.JSON(http.StatusOK, resp)
}

// listFlowSubmissionsHandler handles GET /api/v1/campaigns/:id/flow-submissions.
func (s *Server) listFlowSubmissionsHandler(c *echo.Context) error {
	rows, err := s.flows.ListByCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
