package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/internal/handler"
	mocks "github.com/pahana/bookshop-order-service/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, orders *mocks.MockOrderService, reports *mocks.MockReportService) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, reports)

	r := chi.NewRouter()
	r.Route("/orders", h.Init)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

const validOrderBody = `{
	"userId": "cust001",
	"userEmail": "customer@example.com",
	"items": [
		{"productId": "prod_001", "productName": "Sample Book 1", "quantity": 2, "price": 1500.00},
		{"productId": "prod_002", "productName": "Sample Book 2", "quantity": "1", "price": "2000"}
	],
	"branch": "Main Branch",
	"paymentMethod": "Online Payment",
	"deliveryAddress": "123 Test Street, Colombo"
}`

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     []string
	}{
		{
			name: "success",
			body: validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(in entities.PlaceOrderInput) bool {
						return in.UserID == "cust001" &&
							in.Branch == "Main Branch" &&
							len(in.Items) == 2 &&
							in.Items[0].Quantity == "2" &&
							in.Items[0].Price == "1500.00" &&
							in.Items[1].Quantity == "1" &&
							in.Items[1].Price == "2000" &&
							in.FinalAmount == ""
					})).
					Return(entities.PlaceOrderResult{OrderID: "ord_1", FinalAmount: decimal.NewFromInt(5000)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody: []string{
				`"message":"Order created successfully"`,
				`"orderId":"ord_1"`,
				`"finalAmount":5000`,
			},
		},
		{
			name: "optional amounts forwarded",
			body: `{"userId":"u1","items":[],"branch":"b","paymentMethod":"Cash","deliveryAddress":"a",
				"taxAmount":140,"deliveryCharges":"175","discountAmount":null,"finalAmount":5315}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(in entities.PlaceOrderInput) bool {
						return in.TaxAmount == "140" && in.DeliveryCharges == "175" &&
							in.DiscountAmount == "" && in.FinalAmount == "5315"
					})).
					Return(entities.PlaceOrderResult{OrderID: "ord_2", FinalAmount: decimal.NewFromInt(5315)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"finalAmount":5315`},
		},
		{
			name:         "missing branch",
			body:         `{"userId":"u1","items":[],"paymentMethod":"Cash","deliveryAddress":"a"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"error":"Missing required fields: branch"`, `"branch":"required"`},
		},
		{
			name:         "null user and items",
			body:         `{"userId":null,"items":null,"branch":"b","paymentMethod":"Cash","deliveryAddress":"a"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`Missing required fields: userId, items`},
		},
		{
			name:         "malformed json",
			body:         `{"userId":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"error":"invalid request body"`},
		},
		{
			name: "persistence failure",
			body: validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.Anything).
					Return(entities.PlaceOrderResult{}, errors.New("failed to save item 2: db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"error":"failed to create order: failed to save item 2: db error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc, mocks.NewMockReportService(t)), http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	created := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	validOrder := entities.Order{
		OrderID:     "ord_1",
		UserID:      "cust001",
		TotalAmount: decimal.NewFromInt(5000),
		Status:      entities.OrderStatusPending,
		CreatedAt:   created,
		UpdatedAt:   created,
		Items: []entities.Item{
			{ItemID: "item_1", ProductID: "prod_001", Quantity: 2, UnitPrice: decimal.NewFromInt(1500), TotalPrice: decimal.NewFromInt(3000)},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "ord_1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "ord_1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderId":"ord_1"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "ord_1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "ord_1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc, mocks.NewMockReportService(t)), http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID_Body(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	created := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().GetOrderByID(mock.Anything, "ord_1").Return(entities.Order{
		OrderID:       "ord_1",
		TotalAmount:   decimal.NewFromInt(5000),
		Status:        entities.OrderStatusPending,
		CustomerName:  "Customer",
		CustomerPhone: "N/A",
		CreatedAt:     created,
		UpdatedAt:     created,
		Items: []entities.Item{
			{ItemID: "item_1", Quantity: 2, UnitPrice: decimal.NewFromInt(1500), TotalPrice: decimal.NewFromInt(3000)},
		},
	}, nil).Once()

	rr := serve(newRouter(t, svc, mocks.NewMockReportService(t)), http.MethodGet, "/orders/ord_1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `"totalAmount":5000`)
	assert.Contains(t, body, `"customerName":"Customer"`)
	assert.Contains(t, body, `"customerPhone":"N/A"`)
	assert.Contains(t, body, `"createdAt":"2025-01-10T12:00:00Z"`)
	assert.Contains(t, body, `"unitPrice":1500`)
	assert.NotContains(t, body, `"taxAmount"`)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		ListOrders(mock.Anything, "cust001").
		Return([]entities.Order{{OrderID: "ord_2"}, {OrderID: "ord_1"}}, nil).Once()
	svc.EXPECT().
		ListOrders(mock.Anything, "").
		Return(nil, nil).Once()

	router := newRouter(t, svc, mocks.NewMockReportService(t))

	rr := serve(router, http.MethodGet, "/orders?userId=cust001", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"orderId":"ord_2"`)

	rr = serve(router, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHTTPHandler_UpdateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"Confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, "ord_1", mock.MatchedBy(func(upd entities.OrderUpdate) bool {
						return upd.Status != nil && *upd.Status == entities.OrderStatusConfirmed &&
							upd.PaymentMethod == nil && upd.DeliveryAddress == nil
					})).
					Return(entities.Order{OrderID: "ord_1", Status: entities.OrderStatusConfirmed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Confirmed"`,
		},
		{
			name: "invalid status",
			body: `{"status":"Shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, "ord_1", mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"invalid order status"`,
		},
		{
			name: "not found",
			body: `{"deliveryAddress":"42 Galle Road"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, "ord_1", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"order not found"`,
		},
		{
			name:         "malformed json",
			body:         `status=Confirmed`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc, mocks.NewMockReportService(t)), http.MethodPut, "/orders/ord_1", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().DeleteOrder(mock.Anything, "ord_1").Return(nil).Once()
	svc.EXPECT().DeleteOrder(mock.Anything, "missing").Return(entities.ErrOrderNotFound).Once()

	router := newRouter(t, svc, mocks.NewMockReportService(t))

	rr := serve(router, http.MethodDelete, "/orders/ord_1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(router, http.MethodDelete, "/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
