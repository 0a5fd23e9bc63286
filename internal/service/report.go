package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const topProductsLimit = 5

type ReportRepo interface {
	SalesRows(ctx context.Context, period entities.ReportPeriod) ([]entities.SalesRow, error)
	Revenue(ctx context.Context, period entities.ReportPeriod) (decimal.Decimal, error)
	OrderCount(ctx context.Context, period entities.ReportPeriod) (int, error)
	AvgOrderValue(ctx context.Context, period entities.ReportPeriod) (decimal.Decimal, error)
	TopProducts(ctx context.Context, period entities.ReportPeriod, limit int) ([]entities.ProductSales, error)
}

type reportService struct {
	logger *slog.Logger
	repo   ReportRepo
}

func NewReportService(logger *slog.Logger, repo ReportRepo) *reportService {
	return &reportService{
		logger: logger.With(slog.String("service", "report")),
		repo:   repo,
	}
}

func (s *reportService) SalesReport(ctx context.Context, period entities.ReportPeriod) (entities.SalesReport, error) {
	if period.To.Before(period.From) {
		return entities.SalesReport{}, entities.ErrInvalidPeriod
	}

	rows, err := s.repo.SalesRows(ctx, period)
	if err != nil {
		return entities.SalesReport{}, fmt.Errorf("failed to get sales rows: %w", err)
	}

	// строки идут по позициям, выручку считаем по заказам
	seen := make(map[string]struct{}, len(rows))
	revenue := decimal.Zero
	for _, row := range rows {
		if _, ok := seen[row.OrderID]; ok {
			continue
		}
		seen[row.OrderID] = struct{}{}
		revenue = revenue.Add(row.TotalAmount)
	}

	return entities.SalesReport{
		Period:       period,
		Rows:         rows,
		TotalOrders:  len(seen),
		TotalRevenue: revenue,
	}, nil
}

func (s *reportService) FinancialReport(ctx context.Context, period entities.ReportPeriod) (entities.FinancialReport, error) {
	if period.To.Before(period.From) {
		return entities.FinancialReport{}, entities.ErrInvalidPeriod
	}

	report := entities.FinancialReport{Period: period}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		report.TotalRevenue, err = s.repo.Revenue(ctx, period)
		return err
	})
	g.Go(func() (err error) {
		report.OrderCount, err = s.repo.OrderCount(ctx, period)
		return err
	})
	g.Go(func() (err error) {
		report.AvgOrderValue, err = s.repo.AvgOrderValue(ctx, period)
		return err
	})
	g.Go(func() (err error) {
		report.TopProducts, err = s.repo.TopProducts(ctx, period, topProductsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.FinancialReport{}, fmt.Errorf("failed to build financial report: %w", err)
	}

	s.logger.Debug("financial report built", slog.Int("orders", report.OrderCount))
	return report, nil
}
