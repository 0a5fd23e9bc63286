package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// LooseNumber принимает и число, и строку с числом. Разбор откладывается до сервиса,
// поэтому нечисловое значение не ломает декодирование всего запроса.
type LooseNumber string

func (n *LooseNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = LooseNumber(s)
		return nil
	}
	*n = LooseNumber(b)
	return nil
}

// PlaceOrderRequest тело запроса на создание заказа
type PlaceOrderRequest struct {
	UserID          *string          `json:"userId" validate:"required" swaggertype:"string" example:"cust001"`
	UserEmail       string           `json:"userEmail,omitempty" example:"customer@example.com"`
	Items           []PlaceOrderItem `json:"items" validate:"required"`
	Branch          *string          `json:"branch" validate:"required" swaggertype:"string" example:"Main Branch"`
	PaymentMethod   *string          `json:"paymentMethod" validate:"required" swaggertype:"string" example:"Online Payment"`
	DeliveryAddress *string          `json:"deliveryAddress" validate:"required" swaggertype:"string" example:"123 Test Street, Colombo"`
	OfferID         string           `json:"offerId,omitempty"`
	TaxAmount       LooseNumber      `json:"taxAmount,omitempty" swaggertype:"number"`
	DeliveryCharges LooseNumber      `json:"deliveryCharges,omitempty" swaggertype:"number"`
	DiscountAmount  LooseNumber      `json:"discountAmount,omitempty" swaggertype:"number"`
	FinalAmount     LooseNumber      `json:"finalAmount,omitempty" swaggertype:"number"`
}

// PlaceOrderItem позиция в запросе на создание заказа
type PlaceOrderItem struct {
	ProductID   string      `json:"productId" example:"prod_001"`
	ProductName string      `json:"productName" example:"Sample Book 1"`
	Quantity    LooseNumber `json:"quantity" swaggertype:"integer" example:"2"`
	Price       LooseNumber `json:"price" swaggertype:"number" example:"1500"`
}

// PlaceOrderResponse ответ на создание заказа
type PlaceOrderResponse struct {
	Message     string  `json:"message" example:"Order created successfully"`
	OrderID     string  `json:"orderId" example:"ord_5f0c7c4e-6a53-4a8e-9a51-0c1f6c7d1c11"`
	FinalAmount float64 `json:"finalAmount" example:"5000"`
}

// UpdateOrderRequest частичное обновление заказа
type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty" swaggertype:"string" example:"Confirmed"`
	PaymentMethod   *string `json:"paymentMethod,omitempty" swaggertype:"string"`
	DeliveryAddress *string `json:"deliveryAddress,omitempty" swaggertype:"string"`
}

// Order заказ с позициями
type Order struct {
	OrderID         string   `json:"orderId"`
	UserID          string   `json:"userId"`
	Branch          string   `json:"branch"`
	TotalAmount     float64  `json:"totalAmount"`
	Status          string   `json:"status"`
	PaymentMethod   string   `json:"paymentMethod"`
	DeliveryAddress string   `json:"deliveryAddress"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	OfferID         string   `json:"offerId,omitempty"`
	TaxAmount       *float64 `json:"taxAmount,omitempty"`
	DeliveryCharges *float64 `json:"deliveryCharges,omitempty"`
	DiscountAmount  *float64 `json:"discountAmount,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
	Items           []Item   `json:"items"`
}

// Item позиция заказа
type Item struct {
	ItemID      string  `json:"itemId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// SalesReport отчёт о продажах за период
type SalesReport struct {
	ReportType   string     `json:"reportType" example:"Sales Report"`
	StartDate    string     `json:"startDate" example:"2025-01-01"`
	EndDate      string     `json:"endDate" example:"2025-01-31"`
	GeneratedAt  string     `json:"generatedAt"`
	SalesData    []SalesRow `json:"salesData"`
	TotalOrders  int        `json:"totalOrders"`
	TotalRevenue float64    `json:"totalRevenue"`
}

type SalesRow struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// FinancialReport финансовый отчёт за период
type FinancialReport struct {
	ReportType    string        `json:"reportType" example:"Financial Report"`
	StartDate     string        `json:"startDate" example:"2025-01-01"`
	EndDate       string        `json:"endDate" example:"2025-01-31"`
	GeneratedAt   string        `json:"generatedAt"`
	FinancialData FinancialData `json:"financialData"`
}

type FinancialData struct {
	TotalRevenue  float64        `json:"totalRevenue"`
	OrderCount    int            `json:"orderCount"`
	AvgOrderValue float64        `json:"avgOrderValue"`
	TopProducts   []ProductSales `json:"topProducts"`
}

type ProductSales struct {
	ProductName   string  `json:"productName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

func PlaceOrderRequestToEntity(r PlaceOrderRequest) entities.PlaceOrderInput {
	items := make([]entities.ItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.ItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    string(it.Quantity),
			Price:       string(it.Price),
		})
	}

	return entities.PlaceOrderInput{
		UserID:          deref(r.UserID),
		UserEmail:       r.UserEmail,
		Branch:          deref(r.Branch),
		PaymentMethod:   deref(r.PaymentMethod),
		DeliveryAddress: deref(r.DeliveryAddress),
		OfferID:         r.OfferID,
		Items:           items,
		TaxAmount:       string(r.TaxAmount),
		DeliveryCharges: string(r.DeliveryCharges),
		DiscountAmount:  string(r.DiscountAmount),
		FinalAmount:     string(r.FinalAmount),
	}
}

func UpdateOrderRequestToEntity(r UpdateOrderRequest) entities.OrderUpdate {
	upd := entities.OrderUpdate{
		PaymentMethod:   r.PaymentMethod,
		DeliveryAddress: r.DeliveryAddress,
	}
	if r.Status != nil {
		status := entities.OrderStatus(*r.Status)
		upd.Status = &status
	}
	return upd
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ItemID:      i.ItemID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.InexactFloat64(),
		TotalPrice:  i.TotalPrice.InexactFloat64(),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Branch:          o.Branch,
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		Status:          string(o.Status),
		PaymentMethod:   o.PaymentMethod,
		DeliveryAddress: o.DeliveryAddress,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		OfferID:         o.OfferID,
		TaxAmount:       decimalPtrToFloat(o.TaxAmount),
		DeliveryCharges: decimalPtrToFloat(o.DeliveryCharges),
		DiscountAmount:  decimalPtrToFloat(o.DiscountAmount),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
		Items:           items,
	}
}

func SalesReportEntityToJSON(r entities.SalesReport, generatedAt time.Time) SalesReport {
	rows := make([]SalesRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, SalesRow{
			OrderID:       row.OrderID,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			TotalAmount:   row.TotalAmount.InexactFloat64(),
			Status:        string(row.Status),
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
			ProductName:   row.ProductName,
			Quantity:      row.Quantity,
			Price:         row.UnitPrice.InexactFloat64(),
		})
	}

	return SalesReport{
		ReportType:   "Sales Report",
		StartDate:    r.Period.From.Format(dateLayout),
		EndDate:      r.Period.To.Format(dateLayout),
		GeneratedAt:  generatedAt.Format(time.RFC3339),
		SalesData:    rows,
		TotalOrders:  r.TotalOrders,
		TotalRevenue: r.TotalRevenue.InexactFloat64(),
	}
}

func FinancialReportEntityToJSON(r entities.FinancialReport, generatedAt time.Time) FinancialReport {
	top := make([]ProductSales, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		top = append(top, ProductSales{
			ProductName:   p.ProductName,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue.InexactFloat64(),
		})
	}

	return FinancialReport{
		ReportType:  "Financial Report",
		StartDate:   r.Period.From.Format(dateLayout),
		EndDate:     r.Period.To.Format(dateLayout),
		GeneratedAt: generatedAt.Format(time.RFC3339),
		FinancialData: FinancialData{
			TotalRevenue:  r.TotalRevenue.InexactFloat64(),
			OrderCount:    r.OrderCount,
			AvgOrderValue: r.AvgOrderValue.InexactFloat64(),
			TopProducts:   top,
		},
	}
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
