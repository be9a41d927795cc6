package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyAll folds a sequence of webhook events over a row state.
func applyAll(current ContactStatus, ts StatusTimestamps, events []WebhookStatus, at time.Time) (ContactStatus, StatusTimestamps) {
	for _, ev := range events {
		p := ProjectStatus(current, ts, ev, at)
		current = p.Status
		if p.SentAt != nil {
			ts.SentAt = p.SentAt
		}
		if p.DeliveredAt != nil {
			ts.DeliveredAt = p.DeliveredAt
		}
		if p.ReadAt != nil {
			ts.ReadAt = p.ReadAt
		}
	}
	return current, ts
}

func TestProjectStatusForwardOnly(t *testing.T) {
	at := time.Now()

	p := ProjectStatus(ContactSent, StatusTimestamps{}, WebhookDelivered, at)
	assert.Equal(t, ContactDelivered, p.Status)
	assert.NotNil(t, p.DeliveredAt)

	// delivered never regresses to sent
	p = ProjectStatus(ContactDelivered, StatusTimestamps{DeliveredAt: &at}, WebhookSent, at)
	assert.Equal(t, ContactDelivered, p.Status)
}

func TestProjectStatusOutOfOrder(t *testing.T) {
	at := time.Now()

	// read → delivered → sent must still land on read with every
	// timestamp stamped.
	status, ts := applyAll(ContactSent, StatusTimestamps{}, []WebhookStatus{
		WebhookRead, WebhookDelivered, WebhookSent,
	}, at)

	assert.Equal(t, ContactRead, status)
	require.NotNil(t, ts.SentAt)
	require.NotNil(t, ts.DeliveredAt)
	require.NotNil(t, ts.ReadAt)

	// Replaying the full sequence changes nothing.
	status2, ts2 := applyAll(status, ts, []WebhookStatus{
		WebhookRead, WebhookDelivered, WebhookSent,
	}, at.Add(time.Hour))
	assert.Equal(t, status, status2)
	assert.Equal(t, ts.SentAt, ts2.SentAt)
	assert.Equal(t, ts.DeliveredAt, ts2.DeliveredAt)
	assert.Equal(t, ts.ReadAt, ts2.ReadAt)
}

func TestProjectStatusReadBackfillsDelivered(t *testing.T) {
	at := time.Now()
	p := ProjectStatus(ContactSent, StatusTimestamps{}, WebhookRead, at)
	assert.Equal(t, ContactRead, p.Status)
	assert.NotNil(t, p.ReadAt)
	assert.NotNil(t, p.DeliveredAt, "delivered_at must be non-null whenever status is read")
}

func TestProjectStatusFailed(t *testing.T) {
	at := time.Now()

	p := ProjectStatus(ContactSent, StatusTimestamps{}, WebhookFailed, at)
	assert.Equal(t, ContactFailed, p.Status)

	// failed never claws back a delivery fact
	p = ProjectStatus(ContactRead, StatusTimestamps{ReadAt: &at, DeliveredAt: &at}, WebhookFailed, at)
	assert.Equal(t, ContactRead, p.Status)

	p = ProjectStatus(ContactDelivered, StatusTimestamps{DeliveredAt: &at}, WebhookFailed, at)
	assert.Equal(t, ContactDelivered, p.Status)
}

func TestStatusRankOrdering(t *testing.T) {
	ladder := []ContactStatus{ContactPending, ContactSending, ContactSent, ContactDelivered, ContactRead}
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, StatusRank(ladder[i]), StatusRank(ladder[i-1]),
			"%s must rank above %s", ladder[i], ladder[i-1])
	}
	assert.Greater(t, StatusRank(ContactFailed), StatusRank(ContactRead))
	assert.Greater(t, StatusRank(ContactSkipped), StatusRank(ContactRead))
}
