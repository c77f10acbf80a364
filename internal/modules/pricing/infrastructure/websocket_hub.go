package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"kortyPricing/internal/modules/pricing/application/port"
	"kortyPricing/internal/modules/pricing/domain"
)

// Hub fans pricing broadcasts out to every connected websocket client. The
// pricing stream has a single channel, so there is no per-topic subscription
// bookkeeping; every attached client receives every broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Attach(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("ws client attached", slog.String("remote", c.remote), slog.Int("clients", n))
}

func (h *Hub) detach(c *Client) {
	h.mu.Lock()
	_, attached := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	if !attached {
		return
	}
	c.close()
	slog.Info("ws client detached", slog.String("remote", c.remote), slog.Int("clients", n))
}

// Broadcast sends the message to every client. A client whose send buffer is
// full is dropped rather than allowed to stall the others.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(data) {
			go h.detach(c)
		}
	}
}

var _ port.Broadcaster = (*Hub)(nil)
