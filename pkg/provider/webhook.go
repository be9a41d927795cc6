package provider

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/waflow/waflow/pkg/models"
)

// Inbound webhook decoding. The provider posts one envelope that can mix
// status notifications and inbound messages; ParseWebhook flattens it
// into the two normalized streams the ingestor consumes.

// StatusNotification is a normalized delivery signal for a message id.
type StatusNotification struct {
	MessageID   string
	RecipientID string
	Status      models.WebhookStatus
	Timestamp   time.Time
	// Err is the classified failure when Status is failed, nil otherwise.
	Err *Error
}

// InboundMessage is a normalized user message.
type InboundMessage struct {
	MessageID string
	From      string
	To        string // sender phone_number_id the message arrived on
	Type      string // text, interactive, button, ...
	Text      string
	// ReplyID/ReplyTitle are set for interactive list/button replies.
	ReplyID    string
	ReplyTitle string
	// FlowResponse is the decoded response_json of a flow (interactive
	// form) reply, nil for ordinary messages.
	FlowResponse json.RawMessage
	Timestamp    time.Time
}

// webhookEnvelope is the provider-native webhook shape.
type webhookEnvelope struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string       `json:"field"`
			Value webhookValue `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type webhookValue struct {
	MessagingProduct string `json:"messaging_product"`
	Metadata         struct {
		DisplayPhoneNumber string `json:"display_phone_number"`
		PhoneNumberID      string `json:"phone_number_id"`
	} `json:"metadata"`
	Statuses []struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		Timestamp   string `json:"timestamp"`
		RecipientID string `json:"recipient_id"`
		Errors      []struct {
			Code      int    `json:"code"`
			Title     string `json:"title"`
			Message   string `json:"message"`
			ErrorData struct {
				Details string `json:"details"`
			} `json:"error_data"`
		} `json:"errors"`
	} `json:"statuses"`
	Messages []struct {
		ID        string `json:"id"`
		From      string `json:"from"`
		Timestamp string `json:"timestamp"`
		Type      string `json:"type"`
		Text      *struct {
			Body string `json:"body"`
		} `json:"text"`
		Button *struct {
			Text    string `json:"text"`
			Payload string `json:"payload"`
		} `json:"button"`
		Interactive *struct {
			Type      string `json:"type"`
			ListReply *struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"list_reply"`
			ButtonReply *struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"button_reply"`
			NfmReply *struct {
				ResponseJSON json.RawMessage `json:"response_json"`
				Name         string          `json:"name"`
			} `json:"nfm_reply"`
		} `json:"interactive"`
	} `json:"messages"`
}

// ParseWebhook decodes a webhook body into normalized statuses and
// inbound messages. A parseable envelope with unknown content yields two
// empty slices, not an error.
func ParseWebhook(body []byte) ([]StatusNotification, []InboundMessage, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, err
	}

	var statuses []StatusNotification
	var inbound []InboundMessage

	for _, entry := range env.Entry {
		for _, change := range entry.Changes {
			v := change.Value
			for _, s := range v.Statuses {
				n := StatusNotification{
					MessageID:   s.ID,
					RecipientID: s.RecipientID,
					Status:      models.WebhookStatus(s.Status),
					Timestamp:   unixString(s.Timestamp),
				}
				if len(s.Errors) > 0 {
					fe := s.Errors[0]
					apiErr := &apiError{Code: fe.Code, Message: fe.Message}
					if apiErr.Message == "" {
						apiErr.Message = fe.Title
					}
					apiErr.ErrorData.Details = fe.ErrorData.Details
					n.Err = classify(0, apiErr, nil)
				}
				statuses = append(statuses, n)
			}
			for _, m := range v.Messages {
				im := InboundMessage{
					MessageID: m.ID,
					From:      m.From,
					To:        v.Metadata.PhoneNumberID,
					Type:      m.Type,
					Timestamp: unixString(m.Timestamp),
				}
				switch {
				case m.Text != nil:
					im.Text = m.Text.Body
				case m.Button != nil:
					im.Text = m.Button.Text
					im.ReplyID = m.Button.Payload
				case m.Interactive != nil && m.Interactive.ListReply != nil:
					im.ReplyID = m.Interactive.ListReply.ID
					im.ReplyTitle = m.Interactive.ListReply.Title
					im.Text = m.Interactive.ListReply.Title
				case m.Interactive != nil && m.Interactive.ButtonReply != nil:
					im.ReplyID = m.Interactive.ButtonReply.ID
					im.ReplyTitle = m.Interactive.ButtonReply.Title
					im.Text = m.Interactive.ButtonReply.Title
				case m.Interactive != nil && m.Interactive.NfmReply != nil:
					raw := m.Interactive.NfmReply.ResponseJSON
					// The provider sends response_json as a JSON-encoded string;
					// unwrap it so FlowResponse holds the object itself.
					var encoded string
					if json.Unmarshal(raw, &encoded) == nil {
						raw = json.RawMessage(encoded)
					}
					im.FlowResponse = raw
				}
				inbound = append(inbound, im)
			}
		}
	}
	return statuses, inbound, nil
}

// unixString parses the provider's string-encoded unix timestamps,
// falling back to now for absent or malformed values.
func unixString(s string) time.Time {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil && sec > 0 {
		return time.Unix(sec, 0).UTC()
	}
	return time.Now().UTC()
}
