// Package ws delivers domain events to connected browser sessions. Clients
// subscribe to their own user channel; delivery is fire-and-forget (missed
// events resurface as state on the next fetch).
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one connected WebSocket session subscribed to a set of channels
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	userID   string
	channels map[string]bool
}

// ChannelAuthorizer decides whether userID may subscribe to channel. It is
// consulted for every channel outside the user's own "user:" channel.
type ChannelAuthorizer func(ctx context.Context, userID, channel string) bool

// Hub routes published events to the clients subscribed to their channel
type Hub struct {
	mu        sync.RWMutex
	clients   map[*Client]bool
	authorize ChannelAuthorizer
	log       *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		log:     log,
	}
}

// SetChannelAuthorizer installs the check applied to subscribe commands.
// Without one, only the caller's own "user:" channel is allowed.
func (h *Hub) SetChannelAuthorizer(fn ChannelAuthorizer) {
	h.authorize = fn
}

// Publish sends an event to every client subscribed to channel
func (h *Hub) Publish(channel string, message map[string]interface{}) {
	payload := map[string]interface{}{
		"channel": channel,
		"event":   message,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("Failed to marshal ws event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if !c.channels[channel] {
			continue
		}
		select {
		case c.send <- data:
		default:
			// Slow consumer; drop the event rather than block publishers
			h.log.Warn("Dropping ws event for slow client", zap.String("channel", channel))
		}
	}
}

// Serve upgrades the request and subscribes the connection to the user's
// channel until it closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:     conn,
		send:     make(chan []byte, 64),
		userID:   userID,
		channels: map[string]bool{"user:" + userID: true},
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go h.writePump(client)
	h.readPump(client)
}

func (h *Hub) readPump(c *Client) {
	defer h.drop(c)
	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var cmd struct {
			Action  string `json:"action"`
			Channel string `json:"channel"`
		}
		if err := c.conn.ReadJSON(&cmd); err != nil {
			return
		}
		switch cmd.Action {
		case "subscribe":
			if !h.canSubscribe(c, cmd.Channel) {
				h.log.Warn("Rejected ws subscribe",
					zap.String("userId", c.userID),
					zap.String("channel", cmd.Channel))
				continue
			}
			h.mu.Lock()
			c.channels[cmd.Channel] = true
			h.mu.Unlock()
		case "unsubscribe":
			h.mu.Lock()
			delete(c.channels, cmd.Channel)
			h.mu.Unlock()
		}
	}
}

// canSubscribe allows a client its own user channel unconditionally; every
// other channel must pass the installed authorizer.
func (h *Hub) canSubscribe(c *Client, channel string) bool {
	if strings.HasPrefix(channel, "user:") {
		return channel == "user:"+c.userID
	}
	if h.authorize == nil {
		return false
	}
	return h.authorize(context.Background(), c.userID, channel)
}

func (h *Hub) writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	c.conn.Close()
}
