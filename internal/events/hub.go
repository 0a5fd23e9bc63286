package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pahana/bookshop-order-service/internal/entities"
)

const (
	defaultWriteTimeout = 5 * time.Second
	clientQueueSize     = 64
)

// Conn часть *websocket.Conn, в которую пишет хаб
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type client struct {
	conn Conn
	send chan []byte
}

// Hub рассылает события заказов подключённым websocket клиентам. У каждого клиента
// своя очередь и своя пишущая горутина, так что медленный клиент не тормозит остальных.
type Hub struct {
	logger       *slog.Logger
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[Conn]*client
	writers sync.WaitGroup
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:       logger.With(slog.String("component", "ws_hub")),
		writeTimeout: defaultWriteTimeout,
		clients:      make(map[Conn]*client),
	}
}

func (h *Hub) Add(conn Conn) {
	c := &client{conn: conn, send: make(chan []byte, clientQueueSize)}

	h.mu.Lock()
	h.clients[conn] = c
	n := len(h.clients)
	h.mu.Unlock()

	h.writers.Add(1)
	go func() {
		defer h.writers.Done()
		h.writeLoop(c)
	}()

	subscribers.Set(float64(n))
	h.logger.Debug("subscriber connected", slog.Int("subscribers", n))
}

// Remove отключает клиента; соединение закроет его пишущая горутина.
func (h *Hub) Remove(conn Conn) {
	h.mu.Lock()
	ok := h.detach(conn)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		subscribers.Set(float64(n))
		h.logger.Debug("subscriber disconnected", slog.Int("subscribers", n))
	}
}

// detach вызывается под h.mu
func (h *Hub) detach(conn Conn) bool {
	c, ok := h.clients[conn]
	if !ok {
		return false
	}
	delete(h.clients, conn)
	close(c.send)
	return true
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish только раскладывает событие по очередям клиентов и не ждёт сети.
// Клиент с переполненной очередью отключается.
func (h *Hub) Publish(_ context.Context, e entities.OrderEvent) error {
	data, err := json.Marshal(NewMessage(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	h.mu.Lock()
	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping slow subscriber")
			h.detach(conn)
		}
	}
	n := len(h.clients)
	h.mu.Unlock()

	subscribers.Set(float64(n))
	published.WithLabelValues("websocket", "ok").Inc()
	return nil
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("dropping subscriber", slog.Any("error", err))
			h.Remove(c.conn)
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(time.Second))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "bye"))
}

// Close отключает всех клиентов и ждёт, пока их горутины допишут очереди.
func (h *Hub) Close() error {
	h.mu.Lock()
	for conn := range h.clients {
		h.detach(conn)
	}
	h.mu.Unlock()

	h.writers.Wait()
	subscribers.Set(0)
	return nil
}
