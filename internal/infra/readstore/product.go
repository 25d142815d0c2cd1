package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// ProductReadStore is the catalog collaborator's read surface: price
// snapshots for placement and stock levels for alerts.
type ProductReadStore struct{}

func NewProductReadStore() *ProductReadStore {
	return &ProductReadStore{}
}

func (r *ProductReadStore) FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, price_cents, stock_quantity
		FROM products
		WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products", err)
	}
	defer rows.Close()

	snapshots := make(map[uuid.UUID]shared.ProductSnapshot, len(ids))
	for rows.Next() {
		var s shared.ProductSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.StockQuantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		snapshots[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return snapshots, nil
}

func (r *ProductReadStore) FindLowStock(ctx context.Context, tx db.DBTX, threshold int32) ([]queries.LowStockAlert, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, stock_quantity
		FROM products
		WHERE stock_quantity <= $1
		ORDER BY stock_quantity ASC, name ASC`,
		threshold,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find low stock products", err)
	}
	defer rows.Close()

	var alerts []queries.LowStockAlert
	for rows.Next() {
		var a queries.LowStockAlert
		if err := rows.Scan(&a.ID, &a.Name, &a.StockQuantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan low stock product", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read low stock products", err)
	}
	return alerts, nil
}
