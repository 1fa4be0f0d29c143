// Package ws pushes live admissions and inbox events to admin dashboards.
package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// Event types pushed on the admin feed.
const (
	EventMessageCreated   = "message.created"
	EventMessageUpdated   = "message.updated"
	EventMessageDeleted   = "message.deleted"
	EventApplicantCreated = "applicant.created"
	EventApplicantUpdated = "applicant.updated"
	EventApplicantDeleted = "applicant.deleted"
)

// Event is one frame sent to dashboard clients.
type Event struct {
	Type string    `json:"type"`
	Data any       `json:"data,omitempty"`
	At   time.Time `json:"at"`
}

// AdminHub fans events out to every connected admin dashboard.
type AdminHub struct {
	register   chan *adminClient
	unregister chan *adminClient
	broadcast  chan []byte
	stop       chan struct{}
	clients    map[*adminClient]struct{}
	count      atomic.Int64
	log        *zap.Logger
}

func NewAdminHub(log *zap.Logger) *AdminHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminHub{
		register:   make(chan *adminClient),
		unregister: make(chan *adminClient),
		broadcast:  make(chan []byte, 256),
		stop:       make(chan struct{}),
		clients:    make(map[*adminClient]struct{}),
		log:        log,
	}
}

// Run owns the client set until Stop is called.
func (h *AdminHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case client := <-h.unregister:
			h.drop(client)
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					h.log.Warn("ws: dropping slow admin client")
					h.drop(client)
				}
			}
		case <-h.stop:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

func (h *AdminHub) drop(client *adminClient) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	client.conn.Close()
	h.count.Store(int64(len(h.clients)))
}

func (h *AdminHub) Stop() {
	close(h.stop)
}

// Clients reports how many dashboards are connected.
func (h *AdminHub) Clients() int {
	if h == nil {
		return 0
	}
	return int(h.count.Load())
}

// Publish queues an event for every connected client. It never blocks the
// caller: when the queue is full the event is dropped.
func (h *AdminHub) Publish(eventType string, data any) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(Event{Type: eventType, Data: data, At: time.Now().UTC()})
	if err != nil {
		h.log.Error("ws: failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn("ws: broadcast queue full, event dropped", zap.String("type", eventType))
	}
}

type adminClient struct {
	hub  *AdminHub
	conn *websocket.Conn
	send chan []byte
}

func newAdminClient(hub *AdminHub, conn *websocket.Conn) *adminClient {
	return &adminClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *adminClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stop:
		}
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *adminClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
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
