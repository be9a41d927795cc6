package template

import (
	"context"

	"github.com/waflow/waflow/pkg/provider"
)

// MessageClient is the provider surface template sends go through.
type MessageClient interface {
	Send(ctx context.Context, msg *provider.Message) (*provider.SendResult, error)
}

// Sender builds and delivers template messages: resolved values are
// ordered into provider components, header media rides on the supplied
// URL (the rehost path passes a refreshed one).
type Sender struct {
	client MessageClient
}

// NewSender wraps a provider client for template sends.
func NewSender(client MessageClient) *Sender {
	return &Sender{client: client}
}

// SendTemplate delivers one template message to a normalized phone.
func (s *Sender) SendTemplate(ctx context.Context, to string, spec Spec, values map[string]string, mediaURL string) (*provider.SendResult, error) {
	components := BuildComponents(spec, values, mediaURL)
	msg := provider.NewTemplateMessage(to, spec.Name, spec.Language, components)
	return s.client.Send(ctx, msg)
}
