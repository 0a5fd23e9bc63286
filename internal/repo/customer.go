package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pahana/bookshop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetCustomer(ctx context.Context, userID string) (entities.Customer, error) {
	query, args := r.qb.Select("username", "phone_number").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var c Customer
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return entities.Customer{
		Name:  nullStringToString(c.Username),
		Phone: nullStringToString(c.PhoneNumber),
	}, nil
}
