package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/pkg/engine"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/services"
)

// mapServiceError maps gateway and engine errors to HTTP error responses.
// The taxonomy is closed; anything unrecognized is a 500.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}

	switch {
	case errors.Is(err, engine.ErrMissingInboundMessage):
		return echo.NewHTTPError(http.StatusBadRequest, "missing_inbound_message")
	case errors.Is(err, engine.ErrInvalidWorkflow):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_workflow")
	case errors.Is(err, engine.ErrConversationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "conversation_not_found")
	case errors.Is(err, engine.ErrConversationWorkflowMismatch):
		return echo.NewHTTPError(http.StatusConflict, "conversation_workflow_mismatch")
	case errors.Is(err, engine.ErrConversationMissingResumeNode):
		return echo.NewHTTPError(http.StatusConflict, "conversation_missing_resume_node")
	case errors.Is(err, engine.ErrConversationConflict),
		errors.Is(err, services.ErrConversationConflict):
		return echo.NewHTTPError(http.StatusConflict, "conversation_conflict")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "state conflict")
	}

	var perr *provider.Error
	if errors.As(err, &perr) {
		switch perr.Class {
		case provider.ClassAuth:
			return echo.NewHTTPError(http.StatusUnauthorized, "provider authentication failed")
		case provider.ClassPolicyRejected:
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "provider rejected the message")
		case provider.ClassRateLimited:
			return echo.NewHTTPError(http.StatusTooManyRequests, "provider rate limit")
		}
	}

	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
