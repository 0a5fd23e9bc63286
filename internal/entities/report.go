package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod struct {
	From time.Time
	To   time.Time
}

type SalesRow struct {
	OrderID       string
	CustomerName  string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
}

type SalesReport struct {
	Period       ReportPeriod
	Rows         []SalesRow
	TotalOrders  int
	TotalRevenue decimal.Decimal
}

type ProductSales struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

type FinancialReport struct {
	Period        ReportPeriod
	TotalRevenue  decimal.Decimal
	OrderCount    int
	AvgOrderValue decimal.Decimal
	TopProducts   []ProductSales
}

var ErrInvalidPeriod = errors.New("invalid report period")

// To включается целиком, поэтому верхняя граница - следующий день
func (p ReportPeriod) Until() time.Time {
	return p.To.AddDate(0, 0, 1)
}
