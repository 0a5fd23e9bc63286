package repo

import (
	"context"
	"fmt"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"

	sq "github.com/Masterminds/squirrel"
)

func inPeriod(column string, p entities.ReportPeriod) sq.And {
	return sq.And{
		sq.GtOrEq{column: p.From},
		sq.Lt{column: p.Until()},
	}
}

func (r *postgresRepo) SalesRows(ctx context.Context, period entities.ReportPeriod) ([]entities.SalesRow, error) {
	query, args := r.qb.Select(
		"o.order_id", "o.customer_name", "o.customer_phone", "o.total_amount", "o.status", "o.created_at",
		"oi.product_name", "oi.quantity", "oi.unit_price",
	).
		From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.order_id").
		Where(inPeriod("o.created_at", period)).
		OrderBy("o.created_at DESC", "oi.line_no").
		MustSql()

	var rows []SalesRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sales rows: %w", err)
	}

	result := make([]entities.SalesRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, SalesRowToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) Revenue(ctx context.Context, period entities.ReportPeriod) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(total_amount), 0)").
		From("orders").
		Where(inPeriod("created_at", period)).
		MustSql()

	var revenue decimal.Decimal
	if err := r.getContext(ctx, &revenue, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}

func (r *postgresRepo) OrderCount(ctx context.Context, period entities.ReportPeriod) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(inPeriod("created_at", period)).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) AvgOrderValue(ctx context.Context, period entities.ReportPeriod) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(ROUND(AVG(total_amount), 2), 0)").
		From("orders").
		Where(inPeriod("created_at", period)).
		MustSql()

	var avg decimal.Decimal
	if err := r.getContext(ctx, &avg, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to average orders: %w", err)
	}
	return avg, nil
}

func (r *postgresRepo) TopProducts(ctx context.Context, period entities.ReportPeriod, limit int) ([]entities.ProductSales, error) {
	query, args := r.qb.Select(
		"oi.product_name",
		"SUM(oi.quantity) AS total_quantity",
		"SUM(oi.total_price) AS total_revenue",
	).
		From("order_items oi").
		Join("orders o ON o.order_id = oi.order_id").
		Where(inPeriod("o.created_at", period)).
		GroupBy("oi.product_name").
		OrderBy("total_quantity DESC", "oi.product_name").
		Limit(uint64(limit)).
		MustSql()

	var products []ProductSales
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select top products: %w", err)
	}

	result := make([]entities.ProductSales, 0, len(products))
	for _, p := range products {
		result = append(result, ProductSalesToEntity(p))
	}
	return result, nil
}
