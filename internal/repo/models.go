package repo

import (
	"database/sql"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID         string              `db:"order_id"`
	UserID          string              `db:"user_id"`
	Branch          string              `db:"branch"`
	TotalAmount     decimal.Decimal     `db:"total_amount"`
	Status          string              `db:"status"`
	PaymentMethod   string              `db:"payment_method"`
	DeliveryAddress string              `db:"delivery_address"`
	CustomerName    sql.NullString      `db:"customer_name"`
	CustomerPhone   sql.NullString      `db:"customer_phone"`
	OfferID         sql.NullString      `db:"offer_id"`
	TaxAmount       decimal.NullDecimal `db:"tax_amount"`
	DeliveryCharges decimal.NullDecimal `db:"delivery_charges"`
	DiscountAmount  decimal.NullDecimal `db:"discount_amount"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

type Item struct {
	ItemID      string          `db:"item_id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TotalPrice  decimal.Decimal `db:"total_price"`
}

type Customer struct {
	Username    sql.NullString `db:"username"`
	PhoneNumber sql.NullString `db:"phone_number"`
}

// SalesRow строка orders LEFT JOIN order_items, колонки позиции могут быть NULL
type SalesRow struct {
	OrderID       string              `db:"order_id"`
	CustomerName  sql.NullString      `db:"customer_name"`
	CustomerPhone sql.NullString      `db:"customer_phone"`
	TotalAmount   decimal.Decimal     `db:"total_amount"`
	Status        string              `db:"status"`
	CreatedAt     time.Time           `db:"created_at"`
	ProductName   sql.NullString      `db:"product_name"`
	Quantity      sql.NullInt64       `db:"quantity"`
	UnitPrice     decimal.NullDecimal `db:"unit_price"`
}

type ProductSales struct {
	ProductName   string          `db:"product_name"`
	TotalQuantity int64           `db:"total_quantity"`
	TotalRevenue  decimal.Decimal `db:"total_revenue"`
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ItemID:      i.ItemID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		TotalPrice:  i.TotalPrice,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Branch:          o.Branch,
		TotalAmount:     o.TotalAmount,
		Status:          entities.OrderStatus(o.Status),
		PaymentMethod:   o.PaymentMethod,
		DeliveryAddress: o.DeliveryAddress,
		CustomerName:    nullStringToString(o.CustomerName),
		CustomerPhone:   nullStringToString(o.CustomerPhone),
		OfferID:         nullStringToString(o.OfferID),
		TaxAmount:       nullDecimalToPtr(o.TaxAmount),
		DeliveryCharges: nullDecimalToPtr(o.DeliveryCharges),
		DiscountAmount:  nullDecimalToPtr(o.DiscountAmount),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]entities.Item, 0, len(items)),
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func SalesRowToEntity(r SalesRow) entities.SalesRow {
	row := entities.SalesRow{
		OrderID:       r.OrderID,
		CustomerName:  nullStringToString(r.CustomerName),
		CustomerPhone: nullStringToString(r.CustomerPhone),
		TotalAmount:   r.TotalAmount,
		Status:        entities.OrderStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		ProductName:   nullStringToString(r.ProductName),
	}
	if r.Quantity.Valid {
		row.Quantity = int(r.Quantity.Int64)
	}
	if r.UnitPrice.Valid {
		row.UnitPrice = r.UnitPrice.Decimal
	}
	return row
}

func ProductSalesToEntity(p ProductSales) entities.ProductSales {
	return entities.ProductSales{
		ProductName:   p.ProductName,
		TotalQuantity: int(p.TotalQuantity),
		TotalRevenue:  p.TotalRevenue,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullDecimalToPtr(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
