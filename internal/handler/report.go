package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/pahana/bookshop-order-service/pkg/utils"
	"github.com/tealeg/xlsx"
)

const (
	dateLayout = "2006-01-02"
	xlsxMIME   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportService interface {
	SalesReport(ctx context.Context, period entities.ReportPeriod) (entities.SalesReport, error)
	FinancialReport(ctx context.Context, period entities.ReportPeriod) (entities.FinancialReport, error)
}

var errPeriodRequired = errors.New("start date and end date are required")

func parsePeriod(r *http.Request) (entities.ReportPeriod, error) {
	q := r.URL.Query()
	start, end := q.Get("startDate"), q.Get("endDate")
	if start == "" || end == "" {
		return entities.ReportPeriod{}, errPeriodRequired
	}

	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return entities.ReportPeriod{}, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", start)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return entities.ReportPeriod{}, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", end)
	}

	return entities.ReportPeriod{From: from, To: to}, nil
}

// SalesReport возвращает отчёт о продажах за период.
// @Summary      Отчёт о продажах
// @Description  Одна строка на позицию заказа. С format=xlsx отдаёт таблицу Excel
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        startDate  query     string  true   "Начало периода, YYYY-MM-DD"
// @Param        endDate    query     string  true   "Конец периода включительно, YYYY-MM-DD"
// @Param        format     query     string  false  "json или xlsx"
// @Success      200        {object}  SalesReport
// @Failure      400        {object}  utils.ErrorResponse "Некорректный период"
// @Failure      500        {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders/sales-report [get]
func (h *HTTPHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period, err := parsePeriod(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.reports.SalesReport(ctx, period)
	if errors.Is(err, entities.ErrInvalidPeriod) {
		utils.WriteError(w, "endDate must not be before startDate", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build sales report", slog.Any("error", err))
		utils.WriteError(w, "Failed to generate sales report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		h.writeSalesXLSX(ctx, w, report)
		return
	}

	utils.WriteJSON(w, SalesReportEntityToJSON(report, time.Now().UTC()), http.StatusOK)
}

func (h *HTTPHandler) writeSalesXLSX(ctx context.Context, w http.ResponseWriter, report entities.SalesReport) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create sheet", slog.Any("error", err))
		utils.WriteError(w, "failed to create Excel sheet", http.StatusInternalServerError)
		return
	}

	headers := []string{
		"Order ID", "Customer", "Phone", "Order Total", "Status", "Created At",
		"Product", "Quantity", "Unit Price",
	}
	headerRow := sheet.AddRow()
	for _, title := range headers {
		headerRow.AddCell().SetValue(title)
	}

	for _, s := range report.Rows {
		row := sheet.AddRow()
		row.AddCell().SetValue(s.OrderID)
		row.AddCell().SetValue(s.CustomerName)
		row.AddCell().SetValue(s.CustomerPhone)
		row.AddCell().SetValue(s.TotalAmount.InexactFloat64())
		row.AddCell().SetValue(string(s.Status))
		row.AddCell().SetValue(s.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(s.ProductName)
		row.AddCell().SetValue(s.Quantity)
		row.AddCell().SetValue(s.UnitPrice.InexactFloat64())
	}

	totals := sheet.AddRow()
	totals.AddCell().SetValue("Total orders")
	totals.AddCell().SetValue(report.TotalOrders)
	totals.AddCell().SetValue("Total revenue")
	totals.AddCell().SetValue(report.TotalRevenue.InexactFloat64())

	// пишем в буфер, чтобы при ошибке ещё можно было ответить JSON
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		h.logger.ErrorContext(ctx, "failed to write xlsx", slog.Any("error", err))
		utils.WriteError(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("sales-report_%s_%s.xlsx",
		report.Period.From.Format(dateLayout), report.Period.To.Format(dateLayout))
	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// FinancialReport возвращает финансовые показатели за период.
// @Summary      Финансовый отчёт
// @Description  Выручка, число заказов, средний чек и пять самых продаваемых товаров
// @Tags         reports
// @Produce      json
// @Param        startDate  query     string  true  "Начало периода, YYYY-MM-DD"
// @Param        endDate    query     string  true  "Конец периода включительно, YYYY-MM-DD"
// @Success      200        {object}  FinancialReport
// @Failure      400        {object}  utils.ErrorResponse "Некорректный период"
// @Failure      500        {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Security     BearerAuth
// @Router       /orders/financial-report [get]
func (h *HTTPHandler) FinancialReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period, err := parsePeriod(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.reports.FinancialReport(ctx, period)
	if errors.Is(err, entities.ErrInvalidPeriod) {
		utils.WriteError(w, "endDate must not be before startDate", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build financial report", slog.Any("error", err))
		utils.WriteError(w, "Failed to generate financial report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FinancialReportEntityToJSON(report, time.Now().UTC()), http.StatusOK)
}
