package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/campaigncontact"
	"github.com/waflow/waflow/ent/statusevent"
	"github.com/waflow/waflow/pkg/models"
)

// StatusService applies webhook status events: dedup on (message_id,
// status), then forward-only projection onto the matching contact row.
type StatusService struct {
	client *ent.Client
}

// NewStatusService creates a new StatusService.
func NewStatusService(client *ent.Client) *StatusService {
	return &StatusService{client: client}
}

// StatusEventInput is one normalized webhook status signal.
type StatusEventInput struct {
	MessageID string
	Status    models.WebhookStatus
	Timestamp time.Time
	Error     string
	Payload   map[string]interface{}
}

// ApplyOutcome reports what an ApplyStatusEvent call did.
type ApplyOutcome string

// Apply outcomes.
const (
	// OutcomeApplied means the event was new and its projection ran.
	OutcomeApplied ApplyOutcome = "applied"
	// OutcomeDuplicate means the (message_id, status) pair was seen
	// before; only last_received_at moved.
	OutcomeDuplicate ApplyOutcome = "duplicate"
	// OutcomeUnmatched means no contact row carries the message id yet;
	// the caller should retry later via reconciliation.
	OutcomeUnmatched ApplyOutcome = "unmatched"
)

// ApplyStatusEvent upserts the dedup record and projects the event onto
// the contact row holding the message id. The operation is idempotent:
// applied N times it equals applied once, in any order.
func (s *StatusService) ApplyStatusEvent(ctx context.Context, in StatusEventInput) (ApplyOutcome, error) {
	if in.MessageID == "" {
		return "", NewValidationError("message_id", "required")
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	create := s.client.StatusEvent.Create().
		SetID(uuid.New().String()).
		SetMessageID(in.MessageID).
		SetStatus(statusevent.Status(in.Status)).
		SetEventTs(ts)
	if in.Payload != nil {
		create.SetPayload(in.Payload)
	}
	if err := create.Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			return "", fmt.Errorf("recording status event: %w", err)
		}
		// Retry from the provider: refresh last_received_at, skip the
		// projection — it already ran for this pair.
		_, uerr := s.client.StatusEvent.Update().
			Where(
				statusevent.MessageIDEQ(in.MessageID),
				statusevent.StatusEQ(statusevent.Status(in.Status)),
			).
			SetLastReceivedAt(time.Now()).
			Save(ctx)
		if uerr != nil {
			return "", fmt.Errorf("refreshing status event: %w", uerr)
		}
		return OutcomeDuplicate, nil
	}

	matched, err := s.project(ctx, in, ts)
	if err != nil {
		return "", err
	}
	if !matched {
		return OutcomeUnmatched, nil
	}
	return OutcomeApplied, nil
}

// Reproject retries the contact-row projection for an event that arrived
// before its send was recorded. Used by the reconciliation queue.
func (s *StatusService) Reproject(ctx context.Context, in StatusEventInput) (bool, error) {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return s.project(ctx, in, ts)
}

// project applies the forward-only transition. Returns false when no
// contact row carries the message id.
func (s *StatusService) project(ctx context.Context, in StatusEventInput, ts time.Time) (bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.CampaignContact.Query().
		Where(campaigncontact.MessageIDEQ(in.MessageID)).
		ForUpdate().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("querying contact by message id: %w", err)
	}

	current := models.ContactStatus(row.Status)
	proj := models.ProjectStatus(current, models.StatusTimestamps{
		SentAt:      row.SentAt,
		DeliveredAt: row.DeliveredAt,
		ReadAt:      row.ReadAt,
	}, in.Status, ts)

	if !proj.Changed && in.Status != models.WebhookFailed {
		return true, nil
	}

	update := tx.CampaignContact.UpdateOneID(row.ID)
	if proj.Status != current {
		update.SetStatus(campaigncontact.Status(proj.Status))
	}
	if proj.SentAt != nil {
		update.SetSentAt(*proj.SentAt)
	}
	if proj.DeliveredAt != nil {
		update.SetDeliveredAt(*proj.DeliveredAt)
	}
	if proj.ReadAt != nil {
		update.SetReadAt(*proj.ReadAt)
	}
	if in.Status == models.WebhookFailed && proj.Status == models.ContactFailed && in.Error != "" {
		update.SetErrorMessage(in.Error)
	}
	if err := update.Exec(ctx); err != nil {
		return false, fmt.Errorf("projecting status onto contact row: %w", err)
	}

	if proj.Status != current {
		if err := applyCounterDelta(ctx, tx, row.CampaignID, current, proj.Status, ts); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit projection: %w", err)
	}
	return true, nil
}

// ContactByMessageID resolves the contact row a provider message id
// belongs to, or ErrNotFound.
func (s *StatusService) ContactByMessageID(ctx context.Context, messageID string) (*ent.CampaignContact, error) {
	row, err := s.client.CampaignContact.Query().
		Where(campaigncontact.MessageIDEQ(messageID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying contact by message id: %w", err)
	}
	return row, nil
}
