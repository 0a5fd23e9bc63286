package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	errNotNumeric       = errors.New("not a number")
	errNotWhole         = errors.New("not a whole number")
	errNotPositive      = errors.New("must be positive")
	errNegative         = errors.New("must not be negative")
	errQuantityTooLarge = errors.New("quantity is too large")
	errMissingProduct   = errors.New("missing product id or name")
)

var maxQuantity = decimal.NewFromInt(math.MaxInt32)

func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, errNotNumeric
	}
	return d, nil
}

// принимает 2, 2.0 и "2", но не 2.5 и "abc"
func parseQuantity(raw string) (int, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errNotWhole
	}
	if !d.IsPositive() {
		return 0, errNotPositive
	}
	if d.GreaterThan(maxQuantity) {
		return 0, errQuantityTooLarge
	}
	return int(d.IntPart()), nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegative
	}
	return d, nil
}

func coerceItem(in entities.ItemInput) (entities.Item, error) {
	if in.ProductID == "" || in.ProductName == "" {
		return entities.Item{}, errMissingProduct
	}

	quantity, err := parseQuantity(in.Quantity)
	if err != nil {
		return entities.Item{}, fmt.Errorf("quantity %q: %w", in.Quantity, err)
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return entities.Item{}, fmt.Errorf("price %q: %w", in.Price, err)
	}

	return entities.Item{
		ItemID:      newItemID(),
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    quantity,
		UnitPrice:   price,
		TotalPrice:  price.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Невалидные позиции выкидываются с предупреждением в лог
func normalizeItems(logger *slog.Logger, inputs []entities.ItemInput) []entities.Item {
	items := make([]entities.Item, 0, len(inputs))
	for i, in := range inputs {
		item, err := coerceItem(in)
		if err != nil {
			itemsSkipped.Inc()
			logger.Warn("skipping invalid order item",
				slog.Int("position", i+1),
				slog.String("product_id", in.ProductID),
				slog.Any("error", err),
			)
			continue
		}
		items = append(items, item)
	}
	return items
}

// пустое или нечисловое значение считаем отсутствующим
func optionalAmount(logger *slog.Logger, field, raw string) *decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	d, err := parseDecimal(raw)
	if err != nil {
		logger.Warn("ignoring invalid amount", slog.String("field", field), slog.String("value", raw))
		return nil
	}
	return &d
}

func itemsTotal(items []entities.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

func newOrderID() string {
	return "ord_" + uuid.NewString()
}

func newItemID() string {
	return "item_" + uuid.NewString()
}
