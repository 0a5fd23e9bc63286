package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tax := decimal.RequireFromString("315")

	o := Order{
		OrderID:         "ord_1",
		UserID:          "cust001",
		Branch:          "Main Branch",
		TotalAmount:     decimal.RequireFromString("5000"),
		Status:          "Pending",
		PaymentMethod:   "Online Payment",
		DeliveryAddress: "123 Test Street",
		CustomerName:    sql.NullString{String: "nimal", Valid: true},
		TaxAmount:       decimal.NullDecimal{Decimal: tax, Valid: true},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := []Item{
		{ItemID: "item_1", OrderID: "ord_1", ProductID: "prod_001", ProductName: "Book", Quantity: 2, UnitPrice: decimal.RequireFromString("1500"), TotalPrice: decimal.RequireFromString("3000")},
	}

	got := OrderToEntity(o, items)

	assert.Equal(t, entities.OrderStatusPending, got.Status)
	assert.Equal(t, "nimal", got.CustomerName)
	assert.Empty(t, got.CustomerPhone)
	assert.Empty(t, got.OfferID)
	require.NotNil(t, got.TaxAmount)
	assert.True(t, tax.Equal(*got.TaxAmount))
	assert.Nil(t, got.DeliveryCharges)
	assert.Nil(t, got.DiscountAmount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "prod_001", got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderToEntity_NoItems(t *testing.T) {
	got := OrderToEntity(Order{OrderID: "ord_1"}, nil)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestSalesRowToEntity(t *testing.T) {
	tests := []struct {
		name string
		row  SalesRow
		want entities.SalesRow
	}{
		{
			name: "with item",
			row: SalesRow{
				OrderID:     "ord_1",
				TotalAmount: decimal.NewFromInt(3000),
				Status:      "Delivered",
				ProductName: sql.NullString{String: "Book", Valid: true},
				Quantity:    sql.NullInt64{Int64: 2, Valid: true},
				UnitPrice:   decimal.NullDecimal{Decimal: decimal.NewFromInt(1500), Valid: true},
			},
			want: entities.SalesRow{
				OrderID:     "ord_1",
				TotalAmount: decimal.NewFromInt(3000),
				Status:      entities.OrderStatusDelivered,
				ProductName: "Book",
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(1500),
			},
		},
		{
			name: "order without items",
			row: SalesRow{
				OrderID:     "ord_2",
				TotalAmount: decimal.Zero,
				Status:      "Pending",
			},
			want: entities.SalesRow{
				OrderID:     "ord_2",
				TotalAmount: decimal.Zero,
				Status:      entities.OrderStatusPending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalesRowToEntity(tt.row)
			assert.Equal(t, tt.want.OrderID, got.OrderID)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.ProductName, got.ProductName)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
			assert.True(t, tt.want.UnitPrice.Equal(got.UnitPrice))
			assert.True(t, tt.want.TotalAmount.Equal(got.TotalAmount))
		})
	}
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))

	assert.False(t, nullDecimal(nil).Valid)
	d := decimal.NewFromInt(175)
	nd := nullDecimal(&d)
	assert.True(t, nd.Valid)
	assert.True(t, d.Equal(nd.Decimal))

	assert.Nil(t, nullDecimalToPtr(decimal.NullDecimal{}))
}
