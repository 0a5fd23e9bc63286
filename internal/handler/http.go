package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/internal/middleware"
	"github.com/pahana/bookshop-order-service/pkg/utils"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, in entities.PlaceOrderInput) (entities.PlaceOrderResult, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	reports  ReportService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, reports ReportService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		orders:   orders,
		reports:  reports,
	}
}

// в ошибках валидации поля называются по json тегам
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/", h.PlaceOrder)
	r.Get("/", h.ListOrders)
	r.Get("/sales-report", h.SalesReport)
	r.Get("/financial-report", h.FinancialReport)
	r.Get("/{order_id}", h.GetOrderByID)
	r.Put("/{order_id}", h.UpdateOrder)
	r.Delete("/{order_id}", h.DeleteOrder)
}

// PlaceOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Сохраняет заказ с позициями в одной транзакции и очищает корзину пользователя
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      PlaceOrderRequest  true  "Заказ"
// @Success      201    {object}  PlaceOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Нет доступа"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if authUser, ok := middleware.UserIDFromContext(ctx); ok && authUser != *req.UserID {
		h.logger.WarnContext(ctx, "order placed for another user",
			slog.String("token_user", authUser), slog.String("userId", *req.UserID))
	}

	res, err := h.orders.PlaceOrder(ctx, PlaceOrderRequestToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err), slog.String("userId", *req.UserID))
		utils.WriteError(w, "failed to create order: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PlaceOrderResponse{
		Message:     "Order created successfully",
		OrderID:     res.OrderID,
		FinalAmount: res.FinalAmount.InexactFloat64(),
	}, http.StatusCreated)
}

// ListOrders возвращает заказы.
// @Summary      Список заказов
// @Description  Возвращает заказы с позициями, новые первыми. Можно отфильтровать по пользователю
// @Tags         orders
// @Produce      json
// @Param        userId  query     string  false  "Идентификатор пользователя"
// @Success      200     {array}   Order
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("userId")

	orders, err := h.orders.ListOrders(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("userId", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает заказ вместе с позициями
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200       {object}  Order
// @Failure      404       {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("orderId", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder обновляет статус, способ оплаты или адрес доставки.
// @Summary      Обновить заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string              true  "Идентификатор заказа"
// @Param        update    body      UpdateOrderRequest  true  "Изменяемые поля"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404       {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders/{order_id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateOrder(ctx, orderID, UpdateOrderRequestToEntity(req))
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrEmptyUpdate):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.String("orderId", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	}
}

// DeleteOrder удаляет заказ вместе с позициями.
// @Summary      Удалить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	err := h.orders.DeleteOrder(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.String("orderId", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
