package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/campaign"
	"github.com/waflow/waflow/ent/campaigncontact"
	"github.com/waflow/waflow/pkg/models"
)

// CampaignService manages campaigns and their per-recipient rows. It owns
// the atomic operations the dispatcher and ingestor lean on: batch claim,
// forward-only result transitions, and counter aggregation.
type CampaignService struct {
	client *ent.Client
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(client *ent.Client) *CampaignService {
	return &CampaignService{client: client}
}

// ContactInput is one recipient of a new campaign.
type ContactInput struct {
	ContactID    string
	Phone        string
	Name         string
	Email        string
	CustomFields map[string]interface{}
}

// CreateCampaignRequest carries a new campaign and its recipient list.
type CreateCampaignRequest struct {
	Name              string
	TemplateName      string
	TemplateVariables map[string]string
	ScheduledAt       *time.Time
	Contacts          []ContactInput
}

// CreateCampaign creates a campaign in draft (or scheduled, when
// ScheduledAt is set) together with its pending contact rows.
func (s *CampaignService) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*ent.Campaign, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.TemplateName == "" {
		return nil, NewValidationError("template_name", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.Campaign.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetTemplateName(req.TemplateName).
		SetRecipients(len(req.Contacts))
	if req.TemplateVariables != nil {
		create.SetTemplateVariables(req.TemplateVariables)
	}
	if req.ScheduledAt != nil {
		create.SetStatus(campaign.StatusScheduled).
			SetScheduledAt(*req.ScheduledAt)
	}
	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	if len(req.Contacts) > 0 {
		bulk := make([]*ent.CampaignContactCreate, 0, len(req.Contacts))
		for _, in := range req.Contacts {
			cc := tx.CampaignContact.Create().
				SetID(uuid.New().String()).
				SetCampaignID(c.ID).
				SetPhone(in.Phone)
			if in.ContactID != "" {
				cc.SetContactID(in.ContactID)
			}
			if in.Name != "" {
				cc.SetName(in.Name)
			}
			if in.Email != "" {
				cc.SetEmail(in.Email)
			}
			if in.CustomFields != nil {
				cc.SetCustomFields(in.CustomFields)
			}
			bulk = append(bulk, cc)
		}
		if _, err := tx.CampaignContact.CreateBulk(bulk...).Save(ctx); err != nil {
			return nil, fmt.Errorf("creating campaign contacts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit campaign creation: %w", err)
	}
	return c, nil
}

// GetCampaign returns a campaign by id.
func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns returns campaigns, newest first.
func (s *CampaignService) ListCampaigns(ctx context.Context, limit int) ([]*ent.Campaign, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.client.Campaign.Query().
		Order(ent.Desc(campaign.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	return rows, nil
}

// StartCampaign moves a draft or scheduled campaign into sending.
func (s *CampaignService) StartCampaign(ctx context.Context, id string) error {
	n, err := s.client.Campaign.Update().
		Where(
			campaign.IDEQ(id),
			campaign.StatusIn(campaign.StatusDraft, campaign.StatusScheduled),
		).
		SetStatus(campaign.StatusSending).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("starting campaign: %w", err)
	}
	if n == 0 {
		if _, err := s.GetCampaign(ctx, id); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}

// PauseCampaign flips sending → paused. The dispatch loop observes it at
// the next batch boundary.
func (s *CampaignService) PauseCampaign(ctx context.Context, id string) error {
	n, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(id), campaign.StatusEQ(campaign.StatusSending)).
		SetStatus(campaign.StatusPaused).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("pausing campaign: %w", err)
	}
	if n == 0 {
		if _, err := s.GetCampaign(ctx, id); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}

// ResumeSending flips paused → sending.
func (s *CampaignService) ResumeSending(ctx context.Context, id string) error {
	n, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(id), campaign.StatusEQ(campaign.StatusPaused)).
		SetStatus(campaign.StatusSending).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resuming campaign: %w", err)
	}
	if n == 0 {
		if _, err := s.GetCampaign(ctx, id); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}

// CancelOutcome distinguishes a fresh cancel from an idempotent retry.
type CancelOutcome string

// Cancel outcomes.
const (
	CancelFresh   CancelOutcome = "cancelled"
	CancelAlready CancelOutcome = "already_cancelled"
)

// CancelCampaign cancels a sending or paused campaign: remaining pending
// rows become skipped (skip_code cancelled), scheduling fields clear, and
// counters follow. Cancelling an already-cancelled campaign succeeds with
// CancelAlready; cancelling a terminal campaign returns ErrConflict.
// In-flight sending rows are left to finish naturally.
func (s *CampaignService) CancelCampaign(ctx context.Context, id string) (CancelOutcome, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("querying campaign: %w", err)
	}

	switch c.Status {
	case campaign.StatusCancelled:
		return CancelAlready, nil
	case campaign.StatusSending, campaign.StatusPaused:
		// cancellable
	default:
		return "", ErrConflict
	}

	now := time.Now()
	skipped, err := tx.CampaignContact.Update().
		Where(
			campaigncontact.CampaignIDEQ(id),
			campaigncontact.StatusEQ(campaigncontact.StatusPending),
		).
		SetStatus(campaigncontact.StatusSkipped).
		SetSkipCode("cancelled").
		SetSkipReason("campaign cancelled").
		SetSkippedAt(now).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("skipping pending rows: %w", err)
	}

	if err := tx.Campaign.UpdateOneID(id).
		SetStatus(campaign.StatusCancelled).
		SetCancelledAt(now).
		ClearScheduledAt().
		ClearPodID().
		AddSkipped(skipped).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("cancelling campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit cancel: %w", err)
	}
	return CancelFresh, nil
}

// MaterializeScheduled transitions due scheduled campaigns into sending
// and stamps first_dispatch_at. Returns the ids it released.
func (s *CampaignService) MaterializeScheduled(ctx context.Context, now time.Time) ([]string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	due, err := tx.Campaign.Query().
		Where(
			campaign.StatusEQ(campaign.StatusScheduled),
			campaign.ScheduledAtLTE(now),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying due campaigns: %w", err)
	}

	ids := make([]string, 0, len(due))
	for _, c := range due {
		if err := tx.Campaign.UpdateOneID(c.ID).
			SetStatus(campaign.StatusSending).
			SetStartedAt(now).
			SetFirstDispatchAt(now).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("materializing campaign %s: %w", c.ID, err)
		}
		ids = append(ids, c.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit materialization: %w", err)
	}
	return ids, nil
}

// ClaimCampaign claims one sending campaign for a dispatcher replica:
// either unowned or with a heartbeat older than staleBefore. Returns
// ErrNotFound when nothing is claimable.
func (s *CampaignService) ClaimCampaign(ctx context.Context, podID string, staleBefore time.Time) (*ent.Campaign, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Campaign.Query().
		Where(
			campaign.StatusEQ(campaign.StatusSending),
			campaign.Or(
				campaign.PodIDIsNil(),
				campaign.LastDispatchAtLT(staleBefore),
			),
		).
		Order(ent.Asc(campaign.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying claimable campaign: %w", err)
	}

	c, err = c.Update().
		SetPodID(podID).
		SetLastDispatchAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit campaign claim: %w", err)
	}
	return c, nil
}

// Heartbeat stamps the dispatch heartbeat on a campaign this pod drives.
func (s *CampaignService) Heartbeat(ctx context.Context, campaignID, podID string) error {
	_, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID), campaign.PodIDEQ(podID)).
		SetLastDispatchAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("heartbeating campaign: %w", err)
	}
	return nil
}

// ReleaseCampaign clears this pod's ownership of a campaign.
func (s *CampaignService) ReleaseCampaign(ctx context.Context, campaignID, podID string) error {
	_, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID), campaign.PodIDEQ(podID)).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("releasing campaign: %w", err)
	}
	return nil
}

// ClaimPending atomically moves up to batchSize pending rows to sending
// and returns them. A non-positive batch size claims nothing.
func (s *CampaignService) ClaimPending(ctx context.Context, campaignID string, batchSize int) ([]*ent.CampaignContact, error) {
	if batchSize <= 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.CampaignContact.Query().
		Where(
			campaigncontact.CampaignIDEQ(campaignID),
			campaigncontact.StatusEQ(campaigncontact.StatusPending),
		).
		Order(ent.Asc(campaigncontact.FieldID)).
		Limit(batchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying pending rows: %w", err)
	}

	now := time.Now()
	claimed := make([]*ent.CampaignContact, 0, len(rows))
	for _, row := range rows {
		updated, err := row.Update().
			SetStatus(campaigncontact.StatusSending).
			SetClaimedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("claiming row %s: %w", row.ID, err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// ContactResult is the outcome of one send attempt or skip decision.
type ContactResult struct {
	Status     models.ContactStatus
	MessageID  string
	Error      string
	SkipCode   string
	SkipReason string
}

// MarkContactResult applies a forward-only transition to a contact row
// and adjusts the campaign counters. A regression returns ErrRegression
// without side effects.
func (s *CampaignService) MarkContactResult(ctx context.Context, rowID string, result ContactResult) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.CampaignContact.Query().
		Where(campaigncontact.IDEQ(rowID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("querying contact row: %w", err)
	}

	from := models.ContactStatus(row.Status)
	to := result.Status
	if models.StatusRank(to) <= models.StatusRank(from) {
		return ErrRegression
	}

	now := time.Now()
	update := tx.CampaignContact.UpdateOneID(rowID).
		SetStatus(campaigncontact.Status(to))
	switch to {
	case models.ContactSent:
		update.SetSentAt(now)
		if result.MessageID != "" {
			update.SetMessageID(result.MessageID)
		}
	case models.ContactFailed:
		if result.Error != "" {
			update.SetErrorMessage(result.Error)
		}
	case models.ContactSkipped:
		update.SetSkippedAt(now).
			SetSkipCode(result.SkipCode).
			SetSkipReason(result.SkipReason)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating contact row: %w", err)
	}

	if err := applyCounterDelta(ctx, tx, row.CampaignID, from, to, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contact result: %w", err)
	}
	return nil
}

// RequeueContact bounces a sending row back to pending after a
// rate_limited outcome, bounded by budget attempts. When the budget is
// exhausted the row fails with error rate_limited and requeued is false.
func (s *CampaignService) RequeueContact(ctx context.Context, rowID string, budget int) (bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.CampaignContact.Query().
		Where(campaigncontact.IDEQ(rowID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("querying contact row: %w", err)
	}
	if row.Status != campaigncontact.StatusSending {
		return false, ErrConflict
	}

	if row.Attempts+1 >= budget {
		if err := tx.CampaignContact.UpdateOneID(rowID).
			SetStatus(campaigncontact.StatusFailed).
			SetErrorMessage("rate_limited").
			AddAttempts(1).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failing exhausted row: %w", err)
		}
		if err := applyCounterDelta(ctx, tx, row.CampaignID, models.ContactSending, models.ContactFailed, time.Now()); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit requeue: %w", err)
		}
		return false, nil
	}

	if err := tx.CampaignContact.UpdateOneID(rowID).
		SetStatus(campaigncontact.StatusPending).
		ClearClaimedAt().
		AddAttempts(1).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("requeueing row: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit requeue: %w", err)
	}
	return true, nil
}

// PendingCount returns how many rows of a campaign are still pending.
func (s *CampaignService) PendingCount(ctx context.Context, campaignID string) (int, error) {
	n, err := s.client.CampaignContact.Query().
		Where(
			campaigncontact.CampaignIDEQ(campaignID),
			campaigncontact.StatusEQ(campaigncontact.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting pending rows: %w", err)
	}
	return n, nil
}

// InFlightCount returns how many rows of a campaign are claimed but not
// yet resolved.
func (s *CampaignService) InFlightCount(ctx context.Context, campaignID string) (int, error) {
	n, err := s.client.CampaignContact.Query().
		Where(
			campaigncontact.CampaignIDEQ(campaignID),
			campaigncontact.StatusEQ(campaigncontact.StatusSending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting in-flight rows: %w", err)
	}
	return n, nil
}

// FinalizeIfDone closes a sending campaign once no pending or sending
// rows remain: Failed when nothing was delivered and at least one row
// failed, Completed otherwise. Returns the terminal status, or "" if the
// campaign is not finished yet.
func (s *CampaignService) FinalizeIfDone(ctx context.Context, campaignID string) (string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(campaignID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("querying campaign: %w", err)
	}
	if c.Status != campaign.StatusSending {
		return "", nil
	}

	open, err := tx.CampaignContact.Query().
		Where(
			campaigncontact.CampaignIDEQ(campaignID),
			campaigncontact.StatusIn(campaigncontact.StatusPending, campaigncontact.StatusSending),
		).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("counting open rows: %w", err)
	}
	if open > 0 {
		return "", nil
	}

	terminal := campaign.StatusCompleted
	if c.Sent+c.Delivered+c.Read == 0 && c.Failed > 0 {
		terminal = campaign.StatusFailed
	}
	if err := tx.Campaign.UpdateOneID(campaignID).
		SetStatus(terminal).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(ctx); err != nil {
		return "", fmt.Errorf("finalizing campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit finalize: %w", err)
	}
	return string(terminal), nil
}

// ReapStaleSending returns rows stuck in sending since before cutoff to
// pending, incrementing their attempt count. Used by the startup and
// periodic reaper.
func (s *CampaignService) ReapStaleSending(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.CampaignContact.Update().
		Where(
			campaigncontact.StatusEQ(campaigncontact.StatusSending),
			campaigncontact.ClaimedAtNotNil(),
			campaigncontact.ClaimedAtLT(cutoff),
		).
		SetStatus(campaigncontact.StatusPending).
		ClearClaimedAt().
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("reaping stale sending rows: %w", err)
	}
	return n, nil
}

// ContactsForReport returns every contact row of a campaign in claim
// order for CSV export.
func (s *CampaignService) ContactsForReport(ctx context.Context, campaignID string) ([]*ent.CampaignContact, error) {
	rows, err := s.client.CampaignContact.Query().
		Where(campaigncontact.CampaignIDEQ(campaignID)).
		Order(ent.Asc(campaigncontact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying report rows: %w", err)
	}
	return rows, nil
}

// isCountedBucket reports whether a contact status has a campaign counter
// column. pending and sending are not counted; recipients covers them.
func isCountedBucket(s models.ContactStatus) bool {
	switch s {
	case models.ContactSent, models.ContactDelivered, models.ContactRead,
		models.ContactFailed, models.ContactSkipped:
		return true
	}
	return false
}

// applyCounterDelta moves one row between campaign counter buckets.
func applyCounterDelta(ctx context.Context, tx *ent.Tx, campaignID string, from, to models.ContactStatus, now time.Time) error {
	update := tx.Campaign.UpdateOneID(campaignID)
	changed := false

	if isCountedBucket(from) {
		switch from {
		case models.ContactSent:
			update.AddSent(-1)
		case models.ContactDelivered:
			update.AddDelivered(-1)
		case models.ContactRead:
			update.AddRead(-1)
		case models.ContactFailed:
			update.AddFailed(-1)
		case models.ContactSkipped:
			update.AddSkipped(-1)
		}
		changed = true
	}
	if isCountedBucket(to) {
		switch to {
		case models.ContactSent:
			update.AddSent(1).SetLastSentAt(now)
		case models.ContactDelivered:
			update.AddDelivered(1)
		case models.ContactRead:
			update.AddRead(1)
		case models.ContactFailed:
			update.AddFailed(1)
		case models.ContactSkipped:
			update.AddSkipped(1)
		}
		changed = true
	}
	if !changed {
		return nil
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating campaign counters: %w", err)
	}
	return nil
}
