package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/flowsubmission"
)

// FlowSubmissionService stores interactive-form responses keyed by the
// provider message id of the reply.
type FlowSubmissionService struct {
	client *ent.Client
}

// NewFlowSubmissionService creates a new FlowSubmissionService.
func NewFlowSubmissionService(client *ent.Client) *FlowSubmissionService {
	return &FlowSubmissionService{client: client}
}

// UpsertSubmissionRequest carries one flow reply.
type UpsertSubmissionRequest struct {
	MessageID  string
	FlowID     string
	Phone      string
	CampaignID string
	ContactID  string
	Raw        json.RawMessage
	Mapped     map[string]interface{}
}

// Upsert records a flow submission. Replays of the same message id keep
// the first row and refresh the mapped payload.
func (s *FlowSubmissionService) Upsert(ctx context.Context, req UpsertSubmissionRequest) (*ent.FlowSubmission, error) {
	if req.MessageID == "" {
		return nil, NewValidationError("message_id", "required")
	}

	var raw map[string]interface{}
	if len(req.Raw) > 0 {
		if err := json.Unmarshal(req.Raw, &raw); err != nil {
			return nil, NewValidationError("raw", "not a JSON object")
		}
	} else {
		raw = map[string]interface{}{}
	}

	existing, err := s.client.FlowSubmission.Query().
		Where(flowsubmission.MessageIDEQ(req.MessageID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying flow submission: %w", err)
	}
	if existing != nil {
		update := existing.Update()
		if req.Mapped != nil {
			update.SetMapped(req.Mapped)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating flow submission: %w", err)
		}
		return updated, nil
	}

	create := s.client.FlowSubmission.Create().
		SetID(uuid.New().String()).
		SetMessageID(req.MessageID).
		SetPhone(req.Phone).
		SetRaw(raw)
	if req.FlowID != "" {
		create.SetFlowID(req.FlowID)
	}
	if req.CampaignID != "" {
		create.SetCampaignID(req.CampaignID)
	}
	if req.ContactID != "" {
		create.SetContactID(req.ContactID)
	}
	if req.Mapped != nil {
		create.SetMapped(req.Mapped)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent replay; fetch the winner.
			return s.client.FlowSubmission.Query().
				Where(flowsubmission.MessageIDEQ(req.MessageID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("creating flow submission: %w", err)
	}
	return row, nil
}

// ListByCampaign returns the submissions associated with a campaign.
func (s *FlowSubmissionService) ListByCampaign(ctx context.Context, campaignID string) ([]*ent.FlowSubmission, error) {
	rows, err := s.client.FlowSubmission.Query().
		Where(flowsubmission.CampaignIDEQ(campaignID)).
		Order(ent.Desc(flowsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing flow submissions: %w", err)
	}
	return rows, nil
}
