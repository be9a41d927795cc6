package provider

import (
	"context"

	"github.com/waflow/waflow/pkg/models"
)

// TextSender adapts the client to the narrow send surface workflow
// actions use: plain text and interactive lists addressed by phone.
type TextSender struct {
	client *Client
}

// NewTextSender wraps a client.
func NewTextSender(client *Client) *TextSender {
	return &TextSender{client: client}
}

// SendText sends a plain text message and returns the provider message id.
func (s *TextSender) SendText(ctx context.Context, to, body string) (string, error) {
	res, err := s.client.Send(ctx, NewTextMessage(to, body))
	if err != nil {
		return "", err
	}
	return res.MessageID, nil
}

// SendList sends an interactive list message.
func (s *TextSender) SendList(ctx context.Context, to string, list models.ListMessage) (string, error) {
	res, err := s.client.Send(ctx, NewListMessage(to, list))
	if err != nil {
		return "", err
	}
	return res.MessageID, nil
}
