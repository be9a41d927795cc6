package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// maxWebhookBody caps one webhook payload.
const maxWebhookBody = 4 << 20

// verifyWebhookHandler handles GET /webhook: the provider's subscription
// verification challenge. The challenge is echoed iff the verify token
// matches.
func (s *Server) verifyWebhookHandler(c *echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if !s.ingestor.VerifyChallenge(c.Request().Context(), mode, token) {
		return echo.NewHTTPError(http.StatusForbidden, "verification failed")
	}
	return c.String(http.StatusOK, challenge)
}

// webhookHandler handles POST /webhook. It always answers 200 once the
// body has been read — the provider must never be taught to back off —
// and routes the payload through the ingestor.
func (s *Server) webhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.NoContent(http.StatusOK)
	}

	signature := c.Request().Header.Get("X-Hub-Signature-256")
	s.ingestor.HandleWebhook(c.Request().Context(), body, signature)
	return c.NoContent(http.StatusOK)
}
