// Package dispatcher drives campaign sends: claiming batches of pending
// recipients, prechecking each, and fanning sends out through the rate
// controller until the campaign completes, pauses, or is cancelled.
package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/waflow/waflow/pkg/config"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
	"github.com/waflow/waflow/pkg/template"
)

// Sentinel errors for dispatcher operations.
var (
	// ErrNoCampaigns indicates no claimable campaign exists.
	ErrNoCampaigns = errors.New("no campaigns available")
)

// Campaign statuses the dispatcher branches on (stringly, matching the
// campaigns enum).
const (
	StatusSending   = "sending"
	StatusPaused    = "paused"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Campaign is the dispatcher's view of a claimed campaign.
type Campaign struct {
	ID           string
	Name         string
	TemplateName string

	// TemplateVariables maps template variable names to their bindings
	// (literals or contact field references).
	TemplateVariables map[string]string
}

// Contact is the dispatcher's view of a claimed recipient row.
type Contact struct {
	RowID        string
	ContactID    string
	Phone        string
	Name         string
	Email        string
	Attempts     int
	CustomFields map[string]interface{}
}

// Result mirrors the gateway's contact transition input.
type Result struct {
	Status     models.ContactStatus
	MessageID  string
	Error      string
	SkipCode   string
	SkipReason string
}

// Store is the persistence surface the dispatcher drives campaigns
// through. Implemented by the services gateway.
type Store interface {
	ClaimCampaign(ctx context.Context, podID string, staleBefore time.Time) (*Campaign, error)
	Heartbeat(ctx context.Context, campaignID, podID string) error
	Release(ctx context.Context, campaignID, podID string) error
	CampaignStatus(ctx context.Context, campaignID string) (string, error)

	ClaimPending(ctx context.Context, campaignID string, batchSize int) ([]Contact, error)
	MarkResult(ctx context.Context, rowID string, result Result) error
	Requeue(ctx context.Context, rowID string, budget int) (bool, error)
	FinalizeIfDone(ctx context.Context, campaignID string) (string, error)

	MaterializeScheduled(ctx context.Context, now time.Time) ([]string, error)
	ReapStaleSending(ctx context.Context, cutoff time.Time) (int, error)
}

// TemplateSource resolves a campaign's template into its precheck spec.
type TemplateSource interface {
	SpecByName(ctx context.Context, name string) (template.Spec, error)
}

// TemplateSender delivers one template message.
type TemplateSender interface {
	SendTemplate(ctx context.Context, to string, spec template.Spec, values map[string]string, mediaURL string) (*provider.SendResult, error)
}

// RateController gates sends per sender. Implemented by turbo.Controller.
type RateController interface {
	Acquire(ctx context.Context, senderID string) error
	ReportOK(ctx context.Context, senderID string)
	ReportRateLimited(ctx context.Context, senderID string)
	Config() config.TurboConfig
}

// Rehoster refreshes stale header media. Implemented by template.Rehoster.
type Rehoster interface {
	Refresh(ctx context.Context, campaignID string, spec template.Spec) (url string, ok bool, err error)
}
