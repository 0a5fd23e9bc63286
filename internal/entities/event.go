package entities

import "time"

type EventType string

const (
	EventOrderCreated EventType = "order.created"
	EventOrderUpdated EventType = "order.updated"
	EventOrderDeleted EventType = "order.deleted"
)

type OrderEvent struct {
	EventID   string
	Type      EventType
	OrderID   string
	UserID    string
	Status    OrderStatus
	CreatedAt time.Time
}
