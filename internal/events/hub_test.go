package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	control  []int
	writeErr error
	closed   bool

	// если задан, WriteMessage ждёт его закрытия
	block chan struct{}
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	if c.block != nil {
		<-c.block
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	if messageType != websocket.TextMessage {
		c.control = append(c.control, messageType)
		return nil
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func testEvent() entities.OrderEvent {
	return entities.OrderEvent{
		EventID:   "evt_1",
		Type:      entities.EventOrderCreated,
		OrderID:   "ord_1",
		UserID:    "cust001",
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHub() *events.Hub {
	return events.NewHub(discardLogger())
}

func TestHub_Publish(t *testing.T) {
	hub := newHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Add(a)
	hub.Add(b)

	require.NoError(t, hub.Publish(context.Background(), testEvent()))

	for _, c := range []*fakeConn{a, b} {
		require.Eventually(t, func() bool { return len(c.received()) == 1 }, time.Second, 5*time.Millisecond)

		var msg events.Message
		require.NoError(t, json.Unmarshal(c.received()[0], &msg))
		assert.Equal(t, "order.created", msg.Type)
		assert.Equal(t, "ord_1", msg.OrderID)
		assert.Equal(t, "Pending", msg.Status)
	}

	require.NoError(t, hub.Close())
}

func TestHub_DropsFailingSubscriber(t *testing.T) {
	hub := newHub()
	ok, broken := &fakeConn{}, &fakeConn{writeErr: errors.New("broken pipe")}
	hub.Add(ok)
	hub.Add(broken)

	require.NoError(t, hub.Publish(context.Background(), testEvent()))

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, broken.isClosed, time.Second, 5*time.Millisecond)
	assert.False(t, ok.isClosed())

	require.NoError(t, hub.Close())
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := newHub()
	slow := &fakeConn{block: make(chan struct{})}
	hub.Add(slow)

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, hub.Publish(context.Background(), testEvent()))
	}
	assert.Less(t, time.Since(start), time.Second)

	// очередь переполнилась, клиент отключён
	assert.Equal(t, 0, hub.Len())

	close(slow.block)
	require.Eventually(t, slow.isClosed, time.Second, 5*time.Millisecond)
	require.NoError(t, hub.Close())
}

func TestHub_RemoveAndClose(t *testing.T) {
	hub := newHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Add(a)
	hub.Add(b)

	hub.Remove(a)
	assert.Equal(t, 1, hub.Len())
	require.Eventually(t, a.isClosed, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Close())
	assert.True(t, b.isClosed())
	assert.Equal(t, []int{websocket.CloseMessage}, b.control)
	assert.Equal(t, 0, hub.Len())
}

type publisherFunc func(ctx context.Context, e entities.OrderEvent) error

func (f publisherFunc) Publish(ctx context.Context, e entities.OrderEvent) error { return f(ctx, e) }

func TestMulti(t *testing.T) {
	errBroker := errors.New("broker down")
	var delivered int

	p := events.Multi(
		publisherFunc(func(context.Context, entities.OrderEvent) error { return errBroker }),
		publisherFunc(func(context.Context, entities.OrderEvent) error { delivered++; return nil }),
	)

	err := p.Publish(context.Background(), testEvent())
	assert.ErrorIs(t, err, errBroker)
	assert.Equal(t, 1, delivered)
}
