package events

import (
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
)

// Message событие заказа в том виде, в каком его получают Kafka и websocket клиенты
type Message struct {
	EventID   string `json:"eventId"`
	Type      string `json:"type"`
	OrderID   string `json:"orderId"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func NewMessage(e entities.OrderEvent) Message {
	return Message{
		EventID:   e.EventID,
		Type:      string(e.Type),
		OrderID:   e.OrderID,
		UserID:    e.UserID,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
	}
}
