package repository

import (
	"context"
	"errors"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// UpsertLine merges a quantity into an existing line or inserts a new one as
// a single atomic statement, so concurrent adds never lose an update.
func (r *CartRepository) UpsertLine(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID, quantity int32) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO cart_lines (customer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity, updated_at = now()`,
		customerID, productID, quantity,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr("product does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert cart line", err)
	}
	return nil
}

func (r *CartRepository) SetLineQuantity(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID, quantity int32) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE cart_lines
		SET quantity = $3, updated_at = now()
		WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID, quantity,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set cart line quantity", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM cart_lines
		WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart line", err)
	}
	return nil
}

func (r *CartRepository) DeleteAllLines(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM cart_lines
		WHERE customer_id = $1`,
		customerID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

// LinesForUpdate reads the cart snapshot used for order placement. The row
// locks hold until the enclosing transaction ends, which serializes
// concurrent placements for the same customer.
func (r *CartRepository) LinesForUpdate(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]shared.CartLineSnapshot, error) {
	rows, err := tx.Query(ctx, `
		SELECT product_id, quantity
		FROM cart_lines
		WHERE customer_id = $1
		ORDER BY created_at, product_id
		FOR UPDATE`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart lines", err)
	}
	defer rows.Close()

	var lines []shared.CartLineSnapshot
	for rows.Next() {
		var line shared.CartLineSnapshot
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return lines, nil
}
