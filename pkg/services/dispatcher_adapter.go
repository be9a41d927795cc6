package services

import (
	"context"
	"errors"
	"time"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/pkg/dispatcher"
	wtemplate "github.com/waflow/waflow/pkg/template"
)

// DispatcherStore adapts CampaignService to the dispatcher's Store
// interface.
type DispatcherStore struct {
	campaigns *CampaignService
}

// NewDispatcherStore wraps a CampaignService for the dispatcher.
func NewDispatcherStore(campaigns *CampaignService) *DispatcherStore {
	return &DispatcherStore{campaigns: campaigns}
}

// ClaimCampaign implements dispatcher.Store.
func (s *DispatcherStore) ClaimCampaign(ctx context.Context, podID string, staleBefore time.Time) (*dispatcher.Campaign, error) {
	c, err := s.campaigns.ClaimCampaign(ctx, podID, staleBefore)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, dispatcher.ErrNoCampaigns
		}
		return nil, err
	}
	return campaignView(c), nil
}

// Heartbeat implements dispatcher.Store.
func (s *DispatcherStore) Heartbeat(ctx context.Context, campaignID, podID string) error {
	return s.campaigns.Heartbeat(ctx, campaignID, podID)
}

// Release implements dispatcher.Store.
func (s *DispatcherStore) Release(ctx context.Context, campaignID, podID string) error {
	return s.campaigns.ReleaseCampaign(ctx, campaignID, podID)
}

// CampaignStatus implements dispatcher.Store.
func (s *DispatcherStore) CampaignStatus(ctx context.Context, campaignID string) (string, error) {
	c, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	return string(c.Status), nil
}

// ClaimPending implements dispatcher.Store.
func (s *DispatcherStore) ClaimPending(ctx context.Context, campaignID string, batchSize int) ([]dispatcher.Contact, error) {
	rows, err := s.campaigns.ClaimPending(ctx, campaignID, batchSize)
	if err != nil {
		return nil, err
	}
	out := make([]dispatcher.Contact, 0, len(rows))
	for _, row := range rows {
		out = append(out, dispatcher.Contact{
			RowID:        row.ID,
			ContactID:    row.ContactID,
			Phone:        row.Phone,
			Name:         row.Name,
			Email:        row.Email,
			Attempts:     row.Attempts,
			CustomFields: row.CustomFields,
		})
	}
	return out, nil
}

// MarkResult implements dispatcher.Store. A regression (e.g. a webhook
// projected delivered before the send recorded sent) is absorbed as a
// no-op.
func (s *DispatcherStore) MarkResult(ctx context.Context, rowID string, result dispatcher.Result) error {
	err := s.campaigns.MarkContactResult(ctx, rowID, ContactResult{
		Status:     result.Status,
		MessageID:  result.MessageID,
		Error:      result.Error,
		SkipCode:   result.SkipCode,
		SkipReason: result.SkipReason,
	})
	if errors.Is(err, ErrRegression) {
		return nil
	}
	return err
}

// Requeue implements dispatcher.Store.
func (s *DispatcherStore) Requeue(ctx context.Context, rowID string, budget int) (bool, error) {
	return s.campaigns.RequeueContact(ctx, rowID, budget)
}

// FinalizeIfDone implements dispatcher.Store.
func (s *DispatcherStore) FinalizeIfDone(ctx context.Context, campaignID string) (string, error) {
	return s.campaigns.FinalizeIfDone(ctx, campaignID)
}

// MaterializeScheduled implements dispatcher.Store.
func (s *DispatcherStore) MaterializeScheduled(ctx context.Context, now time.Time) ([]string, error) {
	return s.campaigns.MaterializeScheduled(ctx, now)
}

// ReapStaleSending implements dispatcher.Store.
func (s *DispatcherStore) ReapStaleSending(ctx context.Context, cutoff time.Time) (int, error) {
	return s.campaigns.ReapStaleSending(ctx, cutoff)
}

func campaignView(c *ent.Campaign) *dispatcher.Campaign {
	return &dispatcher.Campaign{
		ID:                c.ID,
		Name:              c.Name,
		TemplateName:      c.TemplateName,
		TemplateVariables: c.TemplateVariables,
	}
}

// DispatcherTemplates adapts TemplateService to dispatcher.TemplateSource.
type DispatcherTemplates struct {
	templates *TemplateService
}

// NewDispatcherTemplates wraps a TemplateService for the dispatcher.
func NewDispatcherTemplates(templates *TemplateService) *DispatcherTemplates {
	return &DispatcherTemplates{templates: templates}
}

// SpecByName implements dispatcher.TemplateSource.
func (s *DispatcherTemplates) SpecByName(ctx context.Context, name string) (wtemplate.Spec, error) {
	row, err := s.templates.GetByName(ctx, name)
	if err != nil {
		return wtemplate.Spec{}, err
	}
	return SpecFor(row), nil
}

// ensure the adapters satisfy their interfaces
var (
	_ dispatcher.Store          = (*DispatcherStore)(nil)
	_ dispatcher.TemplateSource = (*DispatcherTemplates)(nil)
)
