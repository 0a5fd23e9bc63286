package entities

import "github.com/shopspring/decimal"

// PlaceOrderInput запрос на создание заказа. Числа приходят как есть, в виде строк,
// и разбираются уже в сервисе.
type PlaceOrderInput struct {
	UserID          string
	UserEmail       string
	Branch          string
	PaymentMethod   string
	DeliveryAddress string
	OfferID         string

	Items []ItemInput

	TaxAmount       string
	DeliveryCharges string
	DiscountAmount  string
	FinalAmount     string
}

type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    string
	Price       string
}

type PlaceOrderResult struct {
	OrderID     string
	FinalAmount decimal.Decimal
}

type Customer struct {
	Name  string
	Phone string
}
