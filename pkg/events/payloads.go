// Package events pushes live progress to dashboards: mutations are
// broadcast over PostgreSQL NOTIFY so every replica's WebSocket clients
// see them, whichever pod performed the write. Events are transient —
// clients reload via REST after a disconnect.
package events

import "time"

// Channel is the NOTIFY channel all progress events ride on.
const Channel = "waflow_events"

// Event kinds.
const (
	KindCampaignProgress = "campaign.progress"
	KindRunStatus        = "run.status"
)

// Envelope wraps every broadcast payload.
type Envelope struct {
	Kind string      `json:"kind"`
	TS   time.Time   `json:"ts"`
	Data interface{} `json:"data"`
}

// CampaignProgressPayload reports a campaign's live counters.
type CampaignProgressPayload struct {
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
	Recipients int    `json:"recipients"`
	Sent       int    `json:"sent"`
	Delivered  int    `json:"delivered"`
	Read       int    `json:"read"`
	Failed     int    `json:"failed"`
	Skipped    int    `json:"skipped"`
}

// RunStatusPayload reports a workflow run transition.
type RunStatusPayload struct {
	RunID      string `json:"run_id"`
	WorkflowID string `json:"workflow_id"`
	Status     string `json:"status"`
}
