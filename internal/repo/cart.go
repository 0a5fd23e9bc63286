package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ClearCart(ctx context.Context, userID string) (int64, error) {
	query, args := r.qb.Delete("cart").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return res.RowsAffected()
}
