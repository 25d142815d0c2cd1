package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct{}

func NewCartReadStore() *CartReadStore {
	return &CartReadStore{}
}

// ListByCustomer returns the cart in insertion order, joined with the
// current catalog price for display. The price shown here is informational;
// the binding snapshot happens at placement.
func (r *CartReadStore) ListByCustomer(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]queries.CartLineView, error) {
	rows, err := tx.Query(ctx, `
		SELECT cl.product_id, p.name, cl.quantity, p.price_cents, cl.created_at
		FROM cart_lines cl
		JOIN products p ON p.id = cl.product_id
		WHERE cl.customer_id = $1
		ORDER BY cl.created_at, cl.product_id`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	defer rows.Close()

	var views []queries.CartLineView
	for rows.Next() {
		var v queries.CartLineView
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.Quantity, &v.UnitPriceCents, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return views, nil
}
