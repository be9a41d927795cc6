package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/pkg/models"
)

const statusWebhook = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "1010",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15550001111", "phone_number_id": "2020"},
        "statuses": [
          {"id": "wamid.A1", "status": "delivered", "timestamp": "1700000000", "recipient_id": "5511987654321"},
          {"id": "wamid.A2", "status": "failed", "timestamp": "1700000100", "recipient_id": "5511987654322",
           "errors": [{"code": 131052, "title": "Media download error", "message": "Media download error",
                       "error_data": {"details": "Failed to download media from weblink"}}]}
        ]
      }
    }]
  }]
}`

const inboundWebhook = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "1010",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "metadata": {"display_phone_number": "15550001111", "phone_number_id": "2020"},
        "messages": [
          {"id": "wamid.B1", "from": "5511987654321", "timestamp": "1700000200", "type": "text",
           "text": {"body": " Ana "}},
          {"id": "wamid.B2", "from": "5511987654321", "timestamp": "1700000300", "type": "interactive",
           "interactive": {"type": "list_reply", "list_reply": {"id": "opt-2", "title": "Tomorrow"}}},
          {"id": "wamid.B3", "from": "5511987654321", "timestamp": "1700000400", "type": "interactive",
           "interactive": {"type": "nfm_reply", "nfm_reply": {"response_json": "{\"field\":\"value\"}", "name": "flow"}}}
        ]
      }
    }]
  }]
}`

func TestParseWebhookStatuses(t *testing.T) {
	statuses, inbound, err := ParseWebhook([]byte(statusWebhook))
	require.NoError(t, err)
	assert.Empty(t, inbound)
	require.Len(t, statuses, 2)

	assert.Equal(t, "wamid.A1", statuses[0].MessageID)
	assert.Equal(t, models.WebhookDelivered, statuses[0].Status)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), statuses[0].Timestamp)
	assert.Nil(t, statuses[0].Err)

	assert.Equal(t, models.WebhookFailed, statuses[1].Status)
	require.NotNil(t, statuses[1].Err)
	assert.Equal(t, ClassMediaExpired, statuses[1].Err.Class)
}

func TestParseWebhookInbound(t *testing.T) {
	statuses, inbound, err := ParseWebhook([]byte(inboundWebhook))
	require.NoError(t, err)
	assert.Empty(t, statuses)
	require.Len(t, inbound, 3)

	assert.Equal(t, "5511987654321", inbound[0].From)
	assert.Equal(t, "2020", inbound[0].To)
	assert.Equal(t, " Ana ", inbound[0].Text)

	assert.Equal(t, "opt-2", inbound[1].ReplyID)
	assert.Equal(t, "Tomorrow", inbound[1].Text)

	assert.JSONEq(t, `{"field":"value"}`, string(inbound[2].FlowResponse))
}

func TestParseWebhookGarbage(t *testing.T) {
	_, _, err := ParseWebhook([]byte("not json"))
	assert.Error(t, err)

	statuses, inbound, err := ParseWebhook([]byte(`{"object":"whatsapp_business_account","entry":[]}`))
	assert.NoError(t, err)
	assert.Empty(t, statuses)
	assert.Empty(t, inbound)
}
