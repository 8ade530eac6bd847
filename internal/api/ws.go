package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// Hub fans run-completed events out to connected shells over websocket.
// Shells use the feed to refresh their status bar without polling; losing a
// client must never affect a report run, so writes are best-effort.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates a Hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The shell is a local desktop process; cross-origin checks
			// do not apply.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  log.Component("ws"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Serve upgrades the request and registers the client until it disconnects.
// GET /ws
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.WithField("clients", count).Debug("shell connected")

	// Drain control frames; the feed is one-way.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish sends one event to every connected shell, dropping clients whose
// connection has gone away.
func (h *Hub) Publish(event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("event marshal failed")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mu.Unlock()
}
