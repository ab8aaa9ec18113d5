package main

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// hub pushes settled re-renders to connected browsers. Broadcast runs on
// the loop goroutine; connection churn happens on HTTP handler
// goroutines, so the set is guarded by a mutex.
type hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		logger: logger.With("component", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the connection and keeps it until the client
// disconnects. Clients only receive; incoming messages are discarded.
func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("client connected", "remote", conn.RemoteAddr().String())

	// Read loop to observe the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	h.logger.Debug("client disconnected", "remote", conn.RemoteAddr().String())
}

// Broadcast sends html to every connected client. Failed writes drop the
// connection; its read loop observes the close and cleans up.
func (h *hub) Broadcast(html string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			h.logger.Debug("write failed, dropping client", "error", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Close drops all connections and rejects new ones.
func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.conns {
		conn.Close()
	}
	h.conns = map[*websocket.Conn]struct{}{}
}
