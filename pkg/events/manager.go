package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// writeTimeout bounds one WebSocket send; a stalled client is dropped
// rather than backing up the broadcast loop.
const writeTimeout = 5 * time.Second

// Connection is a single WebSocket client.
type Connection struct {
	ID     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// ConnectionManager fans broadcast payloads out to the WebSocket clients
// of this replica.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*Connection
}

// NewConnectionManager creates an empty manager.
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{connections: make(map[string]*Connection)}
}

// HandleConnection owns one client's lifecycle after upgrade: register,
// drain the (ignored) read side to observe close, unregister. Blocks
// until the connection ends.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:     uuid.New().String(),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
	slog.Debug("WebSocket client connected", "connection_id", c.ID)

	defer func() {
		cancel()
		m.mu.Lock()
		delete(m.connections, c.ID)
		m.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "")
		slog.Debug("WebSocket client disconnected", "connection_id", c.ID)
	}()

	// Clients only receive; a read returning an error means the peer
	// went away.
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast sends one payload to every connected client. Slow or dead
// clients are cancelled, which unwinds their HandleConnection.
func (m *ConnectionManager) Broadcast(payload []byte) {
	m.mu.RLock()
	targets := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		targets = append(targets, c)
	}
	m.mu.RUnlock()

	for _, c := range targets {
		writeCtx, cancel := context.WithTimeout(c.ctx, writeTimeout)
		err := c.conn.Write(writeCtx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			slog.Debug("Dropping unresponsive WebSocket client", "connection_id", c.ID, "error", err)
			c.cancel()
		}
	}
}

// Count returns the number of connected clients.
func (m *ConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}
