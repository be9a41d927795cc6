package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/waflow/waflow/ent"
)

// reportHeader is the fixed CSV header of the campaign report.
var reportHeader = []string{
	"contact_id", "name", "phone", "email", "status",
	"message_id", "sent_at", "delivered_at", "read_at", "error",
}

// utf8BOM lets spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reportCSVHandler handles GET /campaigns/:id/report.csv.
func (s *Server) reportCSVHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := s.campaigns.GetCampaign(ctx, id); err != nil {
		return mapServiceError(err)
	}
	rows, err := s.campaigns.ContactsForReport(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="campaign-%s-report.csv"`, id))
	c.Response().WriteHeader(http.StatusOK)

	return WriteCampaignReport(c.Response(), rows)
}

// WriteCampaignReport writes the report CSV: UTF-8 BOM, fixed header,
// RFC 4180 quoting (encoding/csv), timestamps in RFC 3339 UTC.
func WriteCampaignReport(w io.Writer, rows []*ent.CampaignContact) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.ContactID,
			row.Name,
			row.Phone,
			row.Email,
			string(row.Status),
			strPtr(row.MessageID),
			timePtr(row.SentAt),
			timePtr(row.DeliveredAt),
			timePtr(row.ReadAt),
			strPtr(row.ErrorMessage),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func strPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func timePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
