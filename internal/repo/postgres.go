package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "user_id", "branch", "total_amount", "status",
	"payment_method", "delivery_address", "customer_name", "customer_phone",
	"offer_id", "tax_amount", "delivery_charges", "discount_amount",
	"created_at", "updated_at",
}

var itemColumns = []string{
	"item_id", "order_id", "product_id", "product_name",
	"quantity", "unit_price", "total_price",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, o.UserID, o.Branch, o.TotalAmount, string(o.Status),
			o.PaymentMethod, o.DeliveryAddress, nullString(o.CustomerName), nullString(o.CustomerPhone),
			nullString(o.OfferID), nullDecimal(o.TaxAmount), nullDecimal(o.DeliveryCharges), nullDecimal(o.DiscountAmount),
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return checkAffected(res)
}

func (r *postgresRepo) SaveItem(ctx context.Context, orderID string, it entities.Item) error {
	query, args := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Values(it.ItemID, orderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.TotalPrice).
		Suffix("ON CONFLICT (item_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return checkAffected(res)
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrders(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID]), nil
}

// Пустой userID - все заказы, новые первыми
func (r *postgresRepo) ListOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, items[order.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsByOrders(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("line_no").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	itemsMap := make(map[string][]Item, len(orderIDs))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}
	return itemsMap, nil
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, orderID string, upd entities.OrderUpdate, updatedAt time.Time) error {
	set := map[string]any{"updated_at": updatedAt}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if upd.PaymentMethod != nil {
		set["payment_method"] = *upd.PaymentMethod
	}
	if upd.DeliveryAddress != nil {
		set["delivery_address"] = *upd.DeliveryAddress
	}

	query, args := r.qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}

	query, args = r.qb.Delete("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return entities.ErrOrderNotFound
	}
	return nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return entities.ErrNoRowsAffected
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
