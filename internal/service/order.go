package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/pkg/trm"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItem(ctx context.Context, orderID string, item entities.Item) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string) ([]entities.Order, error)

	UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate, updatedAt time.Time) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type CustomerRepo interface {
	GetCustomer(ctx context.Context, userID string) (entities.Customer, error)
}

type CartRepo interface {
	ClearCart(ctx context.Context, userID string) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

const clearCartSavepoint = "clear_cart"

// Timeouts ограничивают время оформления заказа и отдельно публикацию события о нём
type Timeouts struct {
	Order   time.Duration
	Publish time.Duration
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	customers CustomerRepo
	carts     CartRepo
	events    EventPublisher
	timeouts  Timeouts
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	customers CustomerRepo,
	carts CartRepo,
	events EventPublisher,
	timeouts Timeouts,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		customers: customers,
		carts:     carts,
		events:    events,
		timeouts:  timeouts,
	}
}

// PlaceOrder сохраняет заказ и позиции в одной транзакции, корзина чистится по возможности.
// Отмена со стороны клиента не прерывает запись, ограничивает её только таймаут сервиса.
func (s *orderService) PlaceOrder(ctx context.Context, in entities.PlaceOrderInput) (entities.PlaceOrderResult, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeouts.Order)
	defer cancel()

	logger := s.logger.With(slog.String("user_id", in.UserID))

	items := normalizeItems(logger, in.Items)
	if len(items) == 0 {
		// заказ без позиций всё равно сохраняется
		logger.Warn("order has no valid items", slog.Int("submitted", len(in.Items)))
	}

	total := itemsTotal(items)
	if final := optionalAmount(logger, "finalAmount", in.FinalAmount); final != nil {
		total = *final
	}

	customer := s.resolveCustomer(ctx, logger, in.UserID)

	now := time.Now().UTC()
	order := entities.Order{
		OrderID:         newOrderID(),
		UserID:          in.UserID,
		Branch:          in.Branch,
		TotalAmount:     total,
		Status:          entities.OrderStatusPending,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		OfferID:         in.OfferID,
		TaxAmount:       optionalAmount(logger, "taxAmount", in.TaxAmount),
		DeliveryCharges: optionalAmount(logger, "deliveryCharges", in.DeliveryCharges),
		DiscountAmount:  optionalAmount(logger, "discountAmount", in.DiscountAmount),
		CreatedAt:       now,
		UpdatedAt:       now,
		Items:           items,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		for i, item := range order.Items {
			if err := s.orders.SaveItem(ctx, order.OrderID, item); err != nil {
				return fmt.Errorf("failed to save item %d: %w", i+1, err)
			}
		}

		err := s.txManager.Savepoint(ctx, clearCartSavepoint, func(ctx context.Context) error {
			removed, err := s.carts.ClearCart(ctx, order.UserID)
			if err != nil {
				return err
			}
			logger.Debug("cart cleared", slog.Int64("removed", removed))
			return nil
		})
		if err != nil {
			cartClearFailures.Inc()
			logger.Warn("failed to clear cart", slog.Any("error", err))
		}

		return nil
	})
	if err != nil {
		ordersFailed.Inc()
		return entities.PlaceOrderResult{}, err
	}

	ordersPlaced.Inc()
	logger.Info("order created",
		slog.String("order_id", order.OrderID),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	s.publish(ctx, entities.EventOrderCreated, order)

	return entities.PlaceOrderResult{OrderID: order.OrderID, FinalAmount: total}, nil
}

func (s *orderService) resolveCustomer(ctx context.Context, logger *slog.Logger, userID string) entities.Customer {
	customer, err := s.customers.GetCustomer(ctx, userID)
	switch {
	case errors.Is(err, entities.ErrCustomerNotFound):
		logger.Warn("user not found, using default customer info")
	case err != nil:
		logger.Warn("failed to fetch customer info, using defaults", slog.Any("error", err))
	}

	if customer.Name == "" {
		customer.Name = entities.DefaultCustomerName
	}
	if customer.Phone == "" {
		customer.Phone = entities.DefaultCustomerPhone
	}
	return customer
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return s.orders.GetOrderByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.orders.ListOrders(ctx, userID)
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate) (entities.Order, error) {
	if upd.Empty() {
		return entities.Order{}, entities.ErrEmptyUpdate
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateOrder(ctx, orderID, upd, time.Now().UTC()); err != nil {
			return err
		}
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order updated", slog.String("order_id", orderID), slog.String("status", string(order.Status)))
	s.publish(ctx, entities.EventOrderUpdated, order)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		return s.orders.DeleteOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("order deleted", slog.String("order_id", orderID))
	s.publish(ctx, entities.EventOrderDeleted, order)
	return nil
}

// Заказ уже закоммичен, поэтому ошибка публикации только логируется. У публикации
// свой короткий таймаут: недоступный брокер не должен задерживать ответ клиенту.
func (s *orderService) publish(ctx context.Context, typ entities.EventType, order entities.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeouts.Publish)
	defer cancel()

	event := entities.OrderEvent{
		EventID:   uuid.NewString(),
		Type:      typ,
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Status:    order.Status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("order_id", order.OrderID),
			slog.String("type", string(typ)),
			slog.Any("error", err),
		)
	}
}
