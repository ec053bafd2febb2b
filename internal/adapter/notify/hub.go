// Package notify delivers settlement notifications: every notification is
// pushed to the user's open websocket connections and queued for storage.
package notify

import (
	"context"
	"net/http"
	"sync"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	maxReadBytes = 512

	persistQueueSize = 256
	persistWait      = 5 * time.Second
	drainLimit       = 10 * time.Second
)

// Hub implements ports.Notifier.
type Hub struct {
	repo     ports.NotificationRepository
	buffer   int
	upgrader websocket.Upgrader
	log      zerolog.Logger
	persist  chan domain.Notification
	done     chan struct{}

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool
}

var _ ports.Notifier = (*Hub)(nil)

type client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan domain.Notification
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// NewHub creates a hub. buffer is the per-connection queue; a connection that
// falls further behind is dropped.
func NewHub(repo ports.NotificationRepository, buffer int, log zerolog.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	h := &Hub{
		repo:   repo,
		buffer: buffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log:     log,
		persist: make(chan domain.Notification, persistQueueSize),
		done:    make(chan struct{}),
		clients: make(map[uuid.UUID]map[*client]struct{}),
	}
	go h.store()
	return h
}

// Notify pushes n to the user's live connections and queues it for storage.
// It never blocks on the store; failures are logged and never reach the caller.
func (h *Hub) Notify(_ context.Context, n domain.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.log.Warn().Str("user_id", n.UserID.String()).Msg("hub closed, notification dropped")
		return
	}
	select {
	case h.persist <- n:
	default:
		h.log.Error().
			Str("user_id", n.UserID.String()).
			Str("type", string(n.Type)).
			Msg("notification store queue full, not persisted")
	}

	for c := range h.clients[n.UserID] {
		select {
		case c.send <- n:
		default:
			h.log.Warn().Str("user_id", n.UserID.String()).Msg("notification queue full, dropping connection")
			go h.unregister(c)
		}
	}
}

// ServeWS upgrades the request and streams userID's notifications until the
// client disconnects or the hub closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan domain.Notification, h.buffer),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		return conn.Close()
	}

	go h.writePump(c)
	h.readPump(c)
	return nil
}

// Connections returns the number of open connections for userID.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close disconnects every client and waits for queued notifications to be
// stored.
func (h *Hub) Close() {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		close(h.persist)
	}
	for userID, set := range h.clients {
		for c := range set {
			c.close()
		}
		delete(h.clients, userID)
	}
	h.mu.Unlock()

	select {
	case <-h.done:
	case <-time.After(drainLimit):
		h.log.Warn().Int("pending", len(h.persist)).Msg("notification queue not drained before shutdown")
	}
}

// store is the single writer behind Notify.
func (h *Hub) store() {
	defer close(h.done)
	for n := range h.persist {
		ctx, cancel := context.WithTimeout(context.Background(), persistWait)
		if err := h.repo.Create(ctx, &n); err != nil {
			h.log.Error().Err(err).
				Str("user_id", n.UserID.String()).
				Str("type", string(n.Type)).
				Msg("failed to store notification")
		}
		cancel()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.log.Debug().Str("user_id", c.userID.String()).Int("connections", len(set)).Msg("notification stream opened")
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.userID]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
	h.mu.Unlock()
	c.close()
}

// readPump discards client messages and watches for disconnects.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(maxReadBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Err(err).Str("user_id", c.userID.String()).Msg("notification stream read error")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case n, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(n); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
