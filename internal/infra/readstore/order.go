package readstore

import (
	"context"
	"errors"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct{}

func NewOrderReadStore() *OrderReadStore {
	return &OrderReadStore{}
}

const orderViewSelect = `
	SELECT o.id, o.customer_id, o.status, o.shipping_address, o.payment_method,
	       o.coupon_id, c.code, o.discount_percent, o.created_at, o.updated_at
	FROM orders o
	LEFT JOIN coupons c ON c.id = o.coupon_id`

// FindByID scopes the lookup to the owning customer.
func (r *OrderReadStore) FindByID(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID) (*queries.OrderView, error) {
	row := tx.QueryRow(ctx, orderViewSelect+`
		WHERE o.id = $1 AND o.customer_id = $2`,
		orderID, customerID,
	)
	return r.scanOrderView(ctx, tx, row)
}

// FindByIDSystem skips the ownership check; used for idempotent replay and
// privileged reads.
func (r *OrderReadStore) FindByIDSystem(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*queries.OrderView, error) {
	row := tx.QueryRow(ctx, orderViewSelect+`
		WHERE o.id = $1`,
		orderID,
	)
	return r.scanOrderView(ctx, tx, row)
}

func (r *OrderReadStore) scanOrderView(ctx context.Context, tx db.DBTX, row pgx.Row) (*queries.OrderView, error) {
	view := &queries.OrderView{}
	err := row.Scan(
		&view.ID, &view.CustomerID, &view.Status, &view.ShippingAddress, &view.PaymentMethod,
		&view.CouponID, &view.CouponCode, &view.DiscountPercent, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	lines, err := r.findLines(ctx, tx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Lines = lines

	for _, l := range lines {
		view.SubtotalCents += l.UnitPriceCents * int64(l.Quantity)
	}
	view.TotalCents = applyDiscount(view.SubtotalCents, view.DiscountPercent)

	return view, nil
}

func (r *OrderReadStore) findLines(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := tx.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price_cents
		FROM order_lines
		WHERE order_id = $1
		ORDER BY product_id`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order lines", err)
	}
	defer rows.Close()

	var lines []queries.OrderLineView
	for rows.Next() {
		var l queries.OrderLineView
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order lines", err)
	}
	return lines, nil
}

// ListByCustomer returns order summaries, newest first.
func (r *OrderReadStore) ListByCustomer(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]queries.OrderListItem, error) {
	rows, err := tx.Query(ctx, `
		SELECT o.id, o.status, o.discount_percent, o.created_at,
		       COUNT(ol.product_id) AS line_count,
		       COALESCE(SUM(ol.quantity * ol.unit_price_cents), 0) AS subtotal_cents
		FROM orders o
		LEFT JOIN order_lines ol ON ol.order_id = o.id
		WHERE o.customer_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		var discountPercent *float64
		if err := rows.Scan(&item.ID, &item.Status, &discountPercent, &item.CreatedAt, &item.LineCount, &item.SubtotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		item.TotalCents = applyDiscount(item.SubtotalCents, discountPercent)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}
	return items, nil
}

func applyDiscount(subtotalCents int64, discountPercent *float64) int64 {
	if discountPercent == nil {
		return subtotalCents
	}
	total := int64(float64(subtotalCents) * (100.0 - *discountPercent) / 100.0)
	if total < 0 {
		return 0
	}
	return total
}
