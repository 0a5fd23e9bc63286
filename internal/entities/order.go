package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Подставляются, если пользователя нет в users
const (
	DefaultCustomerName  = "Customer"
	DefaultCustomerPhone = "N/A"
)

type Order struct {
	OrderID         string
	UserID          string
	Branch          string
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	PaymentMethod   string
	DeliveryAddress string

	// копируются из users в момент создания заказа
	CustomerName  string
	CustomerPhone string

	OfferID         string
	TaxAmount       *decimal.Decimal
	DeliveryCharges *decimal.Decimal
	DiscountAmount  *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []Item
}

type Item struct {
	ItemID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderUpdate: nil - поле не меняется
type OrderUpdate struct {
	Status          *OrderStatus
	PaymentMethod   *string
	DeliveryAddress *string
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentMethod == nil && u.DeliveryAddress == nil
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrEmptyUpdate    = errors.New("nothing to update")
	ErrNoRowsAffected = errors.New("no rows affected")
)

var ErrCustomerNotFound = errors.New("customer not found")
