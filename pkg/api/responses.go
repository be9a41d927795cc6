package api

import (
	"time"

	"github.com/waflow/waflow/ent"
)

// ExecutionResponse is the shape of workflow run and resume results.
type ExecutionResponse struct {
	ExecutionID string                 `json:"executionId"`
	Status      string                 `json:"status"`
	Output      map[string]interface{} `json:"output,omitempty"`
}

// CancelResponse reports a campaign cancel outcome.
type CancelResponse struct {
	Status string `json:"status"`
}

// PrecheckResultPayload is one entry of a precheck response.
type PrecheckResultPayload struct {
	OK              bool     `json:"ok"`
	NormalizedPhone string   `json:"normalizedPhone,omitempty"`
	SkipCode        string   `json:"skipCode,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Missing         []string `json:"missing,omitempty"`
}

// PrecheckTotals summarizes a precheck response.
type PrecheckTotals struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Skipped int `json:"skipped"`
}

// PrecheckResponse is the body of POST /campaigns/precheck.
type PrecheckResponse struct {
	OK      bool                    `json:"ok"`
	Totals  PrecheckTotals          `json:"totals"`
	Results []PrecheckResultPayload `json:"results"`
}

// CampaignResponse is the API view of a campaign.
type CampaignResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TemplateName string     `json:"templateName"`
	Status       string     `json:"status"`
	Recipients   int        `json:"recipients"`
	Sent         int        `json:"sent"`
	Delivered    int        `json:"delivered"`
	Read         int        `json:"read"`
	Failed       int        `json:"failed"`
	Skipped      int        `json:"skipped"`
	CreatedAt    time.Time  `json:"createdAt"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

func campaignResponse(c *ent.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		TemplateName: c.TemplateName,
		Status:       string(c.Status),
		Recipients:   c.Recipients,
		Sent:         c.Sent,
		Delivered:    c.Delivered,
		Read:         c.Read,
		Failed:       c.Failed,
		Skipped:      c.Skipped,
		CreatedAt:    c.CreatedAt,
		ScheduledAt:  c.ScheduledAt,
		StartedAt:    c.StartedAt,
		CompletedAt:  c.CompletedAt,
		CancelledAt:  c.CancelledAt,
	}
}
