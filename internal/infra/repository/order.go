package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order header and all of its lines. It is only called
// inside the placement transaction, so a failure on any statement rolls the
// whole order back together with the cart clearing.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var paymentMethod *string
	if pm := o.PaymentMethod(); pm != nil {
		s := pm.String()
		paymentMethod = &s
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, status, shipping_address, payment_method, coupon_id, discount_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID(), o.CustomerID(), o.Status().String(), o.ShippingAddress().String(),
		paymentMethod, o.CouponID(), o.DiscountPercent(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	for _, line := range o.Lines() {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID(), line.ProductID(), line.ProductName(), line.Quantity(), line.UnitPriceCents().Cents(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order line", err)
		}
	}

	return o.ID(), nil
}

// PayIfPending is the conditional pending→paid transition as one
// compare-and-swap statement. Zero rows affected means the order is missing,
// owned by someone else, or no longer pending.
func (r *OrderRepository) PayIfPending(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID, method string) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $4, payment_method = $3, updated_at = now()
		WHERE id = $1 AND customer_id = $2 AND status = $5`,
		orderID, customerID, method, order.StatusPaid.String(), order.StatusPending.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to pay order", err)
	}
	return tag.RowsAffected(), nil
}

// SetStatus overwrites the status unconditionally. Privileged path; no
// transition check on purpose.
func (r *OrderRepository) SetStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status string) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1`,
		orderID, status,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set order status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) FindStatus(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID) (string, error) {
	var status string
	err := tx.QueryRow(ctx, `
		SELECT status FROM orders
		WHERE id = $1 AND customer_id = $2`,
		orderID, customerID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find order status", err)
	}
	return status, nil
}
