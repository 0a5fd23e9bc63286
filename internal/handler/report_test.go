package handler_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	mocks "github.com/pahana/bookshop-order-service/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

var january = entities.ReportPeriod{
	From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
}

func salesReport() entities.SalesReport {
	created := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	return entities.SalesReport{
		Period: january,
		Rows: []entities.SalesRow{
			{OrderID: "ord_1", CustomerName: "Nimal", TotalAmount: decimal.NewFromInt(5000), Status: entities.OrderStatusPending, CreatedAt: created, ProductName: "Book 1", Quantity: 2, UnitPrice: decimal.NewFromInt(1500)},
			{OrderID: "ord_1", CustomerName: "Nimal", TotalAmount: decimal.NewFromInt(5000), Status: entities.OrderStatusPending, CreatedAt: created, ProductName: "Book 2", Quantity: 1, UnitPrice: decimal.NewFromInt(2000)},
		},
		TotalOrders:  1,
		TotalRevenue: decimal.NewFromInt(5000),
	}
}

func TestHTTPHandler_SalesReport(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockReportService)
		wantStatus   int
		wantBody     []string
	}{
		{
			name:  "success",
			query: "?startDate=2025-01-01&endDate=2025-01-31",
			mockBehavior: func(svc *mocks.MockReportService) {
				svc.EXPECT().SalesReport(mock.Anything, january).Return(salesReport(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"reportType":"Sales Report"`,
				`"startDate":"2025-01-01"`,
				`"endDate":"2025-01-31"`,
				`"totalOrders":1`,
				`"totalRevenue":5000`,
				`"productName":"Book 2"`,
			},
		},
		{
			name:         "missing dates",
			query:        "?startDate=2025-01-01",
			mockBehavior: func(svc *mocks.MockReportService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"error":"start date and end date are required"`},
		},
		{
			name:         "bad date",
			query:        "?startDate=01/01/2025&endDate=2025-01-31",
			mockBehavior: func(svc *mocks.MockReportService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`invalid startDate`},
		},
		{
			name:  "inverted period",
			query: "?startDate=2025-02-01&endDate=2025-01-01",
			mockBehavior: func(svc *mocks.MockReportService) {
				svc.EXPECT().SalesReport(mock.Anything, mock.Anything).
					Return(entities.SalesReport{}, entities.ErrInvalidPeriod).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`endDate must not be before startDate`},
		},
		{
			name:  "internal error",
			query: "?startDate=2025-01-01&endDate=2025-01-31",
			mockBehavior: func(svc *mocks.MockReportService) {
				svc.EXPECT().SalesReport(mock.Anything, mock.Anything).
					Return(entities.SalesReport{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`Failed to generate sales report: db error`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReportService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, mocks.NewMockOrderService(t), svc), http.MethodGet, "/orders/sales-report"+tc.query, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}

func TestHTTPHandler_SalesReport_XLSX(t *testing.T) {
	svc := mocks.NewMockReportService(t)
	svc.EXPECT().SalesReport(mock.Anything, january).Return(salesReport(), nil).Once()

	rr := serve(newRouter(t, mocks.NewMockOrderService(t), svc), http.MethodGet,
		"/orders/sales-report?startDate=2025-01-01&endDate=2025-01-31&format=xlsx", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "sales-report_2025-01-01_2025-01-31.xlsx")

	body := rr.Body.Bytes()
	file, err := xlsx.OpenReaderAt(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	// заголовок, две позиции и итог
	require.Len(t, sheet.Rows, 4)
	assert.Equal(t, "Order ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Book 2", sheet.Rows[2].Cells[6].String())
}

func TestHTTPHandler_FinancialReport(t *testing.T) {
	svc := mocks.NewMockReportService(t)
	svc.EXPECT().FinancialReport(mock.Anything, january).Return(entities.FinancialReport{
		Period:        january,
		TotalRevenue:  decimal.NewFromInt(15000),
		OrderCount:    3,
		AvgOrderValue: decimal.NewFromInt(5000),
		TopProducts: []entities.ProductSales{
			{ProductName: "Book 1", TotalQuantity: 7, TotalRevenue: decimal.NewFromInt(10500)},
		},
	}, nil).Once()

	rr := serve(newRouter(t, mocks.NewMockOrderService(t), svc), http.MethodGet,
		"/orders/financial-report?startDate=2025-01-01&endDate=2025-01-31", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"reportType":"Financial Report"`)
	assert.Contains(t, body, `"totalRevenue":15000`)
	assert.Contains(t, body, `"orderCount":3`)
	assert.Contains(t, body, `"avgOrderValue":5000`)
	assert.Contains(t, body, `"topProducts":[{"productName":"Book 1","totalQuantity":7,"totalRevenue":10500}]`)
}

func TestHTTPHandler_FinancialReport_MissingDates(t *testing.T) {
	rr := serve(newRouter(t, mocks.NewMockOrderService(t), mocks.NewMockReportService(t)), http.MethodGet,
		"/orders/financial-report", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
