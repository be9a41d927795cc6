package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/waflow/waflow/pkg/ingest"
	wtemplate "github.com/waflow/waflow/pkg/template"
)

// IngestStatuses adapts StatusService to the ingestor's StatusApplier
// interface, translating outcome vocabularies.
type IngestStatuses struct {
	statuses *StatusService
}

// NewIngestStatuses wraps a StatusService for the ingestor.
func NewIngestStatuses(statuses *StatusService) *IngestStatuses {
	return &IngestStatuses{statuses: statuses}
}

// ApplyStatusEvent implements ingest.StatusApplier.
func (s *IngestStatuses) ApplyStatusEvent(ctx context.Context, ev ingest.StatusEvent) (ingest.Outcome, error) {
	outcome, err := s.statuses.ApplyStatusEvent(ctx, StatusEventInput{
		MessageID: ev.MessageID,
		Status:    ev.Status,
		Timestamp: ev.Timestamp,
		Error:     ev.Error,
	})
	if err != nil {
		return "", err
	}
	switch outcome {
	case OutcomeDuplicate:
		return ingest.OutcomeDuplicate, nil
	case OutcomeUnmatched:
		return ingest.OutcomeUnmatched, nil
	default:
		return ingest.OutcomeApplied, nil
	}
}

// Reproject implements ingest.StatusApplier.
func (s *IngestStatuses) Reproject(ctx context.Context, ev ingest.StatusEvent) (bool, error) {
	return s.statuses.Reproject(ctx, StatusEventInput{
		MessageID: ev.MessageID,
		Status:    ev.Status,
		Timestamp: ev.Timestamp,
		Error:     ev.Error,
	})
}

// IngestConversations adapts ConversationService to the ingestor's
// lookup interface.
type IngestConversations struct {
	convs *ConversationService
}

// NewIngestConversations wraps a ConversationService for the ingestor.
func NewIngestConversations(convs *ConversationService) *IngestConversations {
	return &IngestConversations{convs: convs}
}

// WaitingByPhone implements ingest.ConversationLookup.
func (s *IngestConversations) WaitingByPhone(ctx context.Context, phone string) (*ingest.WaitingConversation, error) {
	conv, err := s.convs.WaitingByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingest.WaitingConversation{
		ID:         conv.ID,
		WorkflowID: conv.WorkflowID,
	}, nil
}

// IngestFlows adapts FlowSubmissionService to the ingestor's recorder
// interface.
type IngestFlows struct {
	flows *FlowSubmissionService
}

// NewIngestFlows wraps a FlowSubmissionService for the ingestor.
func NewIngestFlows(flows *FlowSubmissionService) *IngestFlows {
	return &IngestFlows{flows: flows}
}

// RecordSubmission implements ingest.FlowRecorder.
func (s *IngestFlows) RecordSubmission(ctx context.Context, in ingest.FlowSubmissionInput) error {
	_, err := s.flows.Upsert(ctx, UpsertSubmissionRequest{
		MessageID: in.MessageID,
		FlowID:    in.FlowID,
		Phone:     in.Phone,
		Raw:       in.Raw,
	})
	return err
}

// CampaignMediaRehost reacts to media-expiry failure webhooks: it
// resolves the failed message back to its campaign's template and
// refreshes the header media so subsequent sends use a live URL.
type CampaignMediaRehost struct {
	statuses  *StatusService
	campaigns *CampaignService
	templates *TemplateService
	rehoster  *wtemplate.Rehoster
}

// NewCampaignMediaRehost wires the reactive rehost path for the ingestor.
func NewCampaignMediaRehost(statuses *StatusService, campaigns *CampaignService, templates *TemplateService, rehoster *wtemplate.Rehoster) *CampaignMediaRehost {
	return &CampaignMediaRehost{
		statuses:  statuses,
		campaigns: campaigns,
		templates: templates,
		rehoster:  rehoster,
	}
}

// RehostForMessage implements ingest.MediaRehoster. Best-effort: every
// failure is logged, none propagates.
func (s *CampaignMediaRehost) RehostForMessage(ctx context.Context, messageID string) {
	row, err := s.statuses.ContactByMessageID(ctx, messageID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("Failed to resolve message for rehost", "message_id", messageID, "error", err)
		}
		return
	}

	c, err := s.campaigns.GetCampaign(ctx, row.CampaignID)
	if err != nil {
		slog.Error("Failed to load campaign for rehost", "campaign_id", row.CampaignID, "error", err)
		return
	}

	tmpl, err := s.templates.GetByName(ctx, c.TemplateName)
	if err != nil {
		slog.Warn("No template registered for rehost", "template", c.TemplateName)
		return
	}

	if _, _, err := s.rehoster.Refresh(ctx, c.ID, SpecFor(tmpl)); err != nil {
		slog.Warn("Reactive media rehost failed", "campaign_id", c.ID, "error", err)
	}
}
