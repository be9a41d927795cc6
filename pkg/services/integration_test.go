//go:build integration

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/ent/campaign"
	"github.com/waflow/waflow/ent/campaigncontact"
	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/test/util"
)

func seedCampaign(t *testing.T, svc *CampaignService, n int) string {
	contacts := make([]ContactInput, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, ContactInput{
			Phone: fmt.Sprintf("+55119876543%02d", i),
			Name:  "Contato",
		})
	}
	c, err := svc.CreateCampaign(context.Background(), CreateCampaignRequest{
		Name:         "it-campaign",
		TemplateName: "promo",
		Contacts:     contacts,
	})
	require.NoError(t, err)
	require.NoError(t, svc.StartCampaign(context.Background(), c.ID))
	return c.ID
}

func TestClaimPending(t *testing.T) {
	client := util.NewTestClient(t)
	svc := NewCampaignService(client)
	ctx := context.Background()

	id := seedCampaign(t, svc, 5)

	// Zero-size claim: nothing moves.
	rows, err := svc.ClaimPending(ctx, id, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = svc.ClaimPending(ctx, id, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, campaigncontact.StatusSending, row.Status)
		assert.NotNil(t, row.ClaimedAt)
	}

	remaining, err := svc.PendingCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestMarkContactResultForwardOnly(t *testing.T) {
	client := util.NewTestClient(t)
	svc := NewCampaignService(client)
	ctx := context.Background()

	id := seedCampaign(t, svc, 1)
	rows, err := svc.ClaimPending(ctx, id, 1)
	require.NoError(t, err)
	rowID := rows[0].ID

	require.NoError(t, svc.MarkContactResult(ctx, rowID, ContactResult{
		Status:    models.ContactSent,
		MessageID: "wamid.X1",
	}))

	// Moving back to sending is a regression.
	err = svc.MarkContactResult(ctx, rowID, ContactResult{Status: models.ContactSending})
	assert.ErrorIs(t, err, ErrRegression)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Sent)
}

func TestCancelCampaignIdempotent(t *testing.T) {
	client := util.NewTestClient(t)
	svc := NewCampaignService(client)
	ctx := context.Background()

	id := seedCampaign(t, svc, 4)
	_, err := svc.ClaimPending(ctx, id, 1)
	require.NoError(t, err)

	outcome, err := svc.CancelCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, CancelFresh, outcome)

	// cancel(cancel(c)) == cancel(c)
	outcome, err = svc.CancelCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, CancelAlready, outcome)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCancelled, c.Status)
	assert.Equal(t, 3, c.Skipped, "pending rows skip; the in-flight row does not")
}

func TestApplyStatusEventIdempotent(t *testing.T) {
	client := util.NewTestClient(t)
	campaigns := NewCampaignService(client)
	statuses := NewStatusService(client)
	ctx := context.Background()

	id := seedCampaign(t, campaigns, 1)
	rows, err := campaigns.ClaimPending(ctx, id, 1)
	require.NoError(t, err)
	require.NoError(t, campaigns.MarkContactResult(ctx, rows[0].ID, ContactResult{
		Status:    models.ContactSent,
		MessageID: "wamid.Y1",
	}))

	ev := StatusEventInput{MessageID: "wamid.Y1", Status: models.WebhookDelivered, Timestamp: time.Now()}

	outcome, err := statuses.ApplyStatusEvent(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)

	for i := 0; i < 3; i++ {
		outcome, err = statuses.ApplyStatusEvent(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, outcome)
	}

	row, err := statuses.ContactByMessageID(ctx, "wamid.Y1")
	require.NoError(t, err)
	assert.Equal(t, campaigncontact.StatusDelivered, row.Status)
	assert.NotNil(t, row.DeliveredAt)
}

func TestConversationConflict(t *testing.T) {
	client := util.NewTestClient(t)
	svc := NewConversationService(client)
	ctx := context.Background()

	req := OpenPausedRequest{
		WorkflowID:   "wf-1",
		RunID:        "run-1",
		Phone:        "+5511987654321",
		ResumeNodeID: "n2",
		VariableKey:  "nome",
	}
	_, err := svc.OpenPaused(ctx, req)
	require.NoError(t, err)

	req.RunID = "run-2"
	_, err = svc.OpenPaused(ctx, req)
	assert.ErrorIs(t, err, ErrConversationConflict)

	// Another phone is fine.
	req.Phone = "+5511987654399"
	_, err = svc.OpenPaused(ctx, req)
	assert.NoError(t, err)
}
