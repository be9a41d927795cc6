package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"
)

// Publisher broadcasts progress events via NOTIFY. Best-effort: a failed
// publish is logged and never fails the triggering operation.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the shared connection pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishCampaignProgress broadcasts a campaign counters snapshot.
func (p *Publisher) PublishCampaignProgress(ctx context.Context, payload CampaignProgressPayload) {
	p.notify(ctx, Envelope{Kind: KindCampaignProgress, TS: time.Now().UTC(), Data: payload})
}

// PublishRunStatus broadcasts a workflow run transition.
func (p *Publisher) PublishRunStatus(ctx context.Context, payload RunStatusPayload) {
	p.notify(ctx, Envelope{Kind: KindRunStatus, TS: time.Now().UTC(), Data: payload})
}

func (p *Publisher) notify(ctx context.Context, env Envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		slog.Warn("Failed to marshal event payload", "kind", env.Kind, "error", err)
		return
	}
	// NOTIFY payloads are capped at 8000 bytes; progress envelopes are
	// far below it.
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", Channel, string(raw)); err != nil {
		slog.Warn("Failed to publish event", "kind", env.Kind, "error", err)
	}
}
