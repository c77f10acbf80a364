package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"kortyPricing/internal/modules/pricing/domain"
)

const (
	pingInterval  = 30 * time.Second
	pongWait      = 60 * time.Second
	writeDeadline = 5 * time.Second
	maxReadBytes  = 1 << 12
)

// Client wraps one websocket connection. The pricing stream is one-way:
// clients receive broadcasts and send nothing but control frames.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	remote string

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, buf int) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, buf),
		remote: conn.RemoteAddr().String(),
	}
}

// Send queues one message for the client, detaching it when the queue is
// unavailable.
func (c *Client) Send(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("ws marshal error", slog.Any("error", err))
		return
	}
	if !c.enqueue(data) {
		go c.hub.detach(c)
	}
}

// enqueue hands data to the write pump, reporting false when the client is
// closed or its buffer is full. The closed check and the channel send happen
// under the same mutex close holds.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		slog.Warn("ws send buffer full", slog.String("remote", c.remote))
		return false
	}
}

// close is idempotent. closed is marked under the mutex before the channel
// is closed, so enqueue never sends on a closed channel.
func (c *Client) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()
	_ = c.conn.Close()
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("ws write error", slog.String("remote", c.remote), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				slog.Warn("ws ping error", slog.String("remote", c.remote), slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump drains inbound frames to keep control handling alive and detaches
// the client when the connection drops.
func (c *Client) ReadPump() {
	defer c.hub.detach(c)

	c.conn.SetReadLimit(maxReadBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("ws read closed", slog.String("remote", c.remote), slog.Any("error", err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
