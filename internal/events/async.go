package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
)

var (
	ErrQueueFull       = errors.New("event queue is full")
	ErrPublisherClosed = errors.New("event publisher is closed")
)

// asyncPublisher ставит событие в очередь и сразу возвращает управление,
// доставкой занимается отдельная горутина.
type asyncPublisher struct {
	logger  *slog.Logger
	sink    string
	next    Publisher
	timeout time.Duration

	queue chan entities.OrderEvent
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func NewAsync(logger *slog.Logger, sink string, next Publisher, size int, timeout time.Duration) *asyncPublisher {
	p := &asyncPublisher{
		logger:  logger.With(slog.String("component", "event_queue"), slog.String("sink", sink)),
		sink:    sink,
		next:    next,
		timeout: timeout,
		queue:   make(chan entities.OrderEvent, size),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *asyncPublisher) Publish(_ context.Context, e entities.OrderEvent) error {
	select {
	case <-p.stop:
		return ErrPublisherClosed
	default:
	}

	select {
	case p.queue <- e:
		queued.WithLabelValues(p.sink).Inc()
		return nil
	default:
		published.WithLabelValues(p.sink, "dropped").Inc()
		return ErrQueueFull
	}
}

func (p *asyncPublisher) run() {
	defer close(p.done)

	for {
		select {
		case e := <-p.queue:
			queued.WithLabelValues(p.sink).Dec()
			p.deliver(e)
		case <-p.stop:
			// дописываем то, что успели поставить в очередь до остановки
			for {
				select {
				case e := <-p.queue:
					queued.WithLabelValues(p.sink).Dec()
					p.deliver(e)
				default:
					return
				}
			}
		}
	}
}

func (p *asyncPublisher) deliver(e entities.OrderEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.next.Publish(ctx, e); err != nil {
		p.logger.Warn("failed to deliver order event",
			slog.String("order_id", e.OrderID),
			slog.String("type", string(e.Type)),
			slog.Any("error", err),
		)
	}
}

// Close дожидается отправки очереди и закрывает нижележащий паблишер.
func (p *asyncPublisher) Close() error {
	p.once.Do(func() { close(p.stop) })
	<-p.done

	if c, ok := p.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
