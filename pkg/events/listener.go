package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// reconnectDelay spaces reconnect attempts after the LISTEN connection
// drops.
const reconnectDelay = 3 * time.Second

// NotifyListener holds one dedicated connection in LISTEN and forwards
// payloads to the connection manager. All replicas listen; each serves
// only its own WebSocket clients.
type NotifyListener struct {
	dsn     string
	manager *ConnectionManager
}

// NewNotifyListener creates a listener on the given DSN.
func NewNotifyListener(dsn string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{dsn: dsn, manager: manager}
}

// Run listens until ctx is cancelled, reconnecting on connection loss.
func (l *NotifyListener) Run(ctx context.Context) {
	for {
		if err := l.listenOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("Event listener disconnected, reconnecting", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *NotifyListener) listenOnce(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}
	slog.Info("Event listener attached", "channel", Channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.manager.Broadcast([]byte(notification.Payload))
	}
}
