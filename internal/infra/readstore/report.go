package readstore

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"
)

// ReportReadStore aggregates historical orders. Queries run in read-only
// transactions and take no locks; orders committed mid-query may or may not
// appear, which the report contract allows.
type ReportReadStore struct{}

func NewReportReadStore() *ReportReadStore {
	return &ReportReadStore{}
}

func (r *ReportReadStore) SalesReport(ctx context.Context, tx db.DBTX, startDate, endDate time.Time) ([]queries.SalesReportRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT ol.product_id, ol.product_name,
		       SUM(ol.quantity) AS total_quantity_sold,
		       SUM(ol.quantity * ol.unit_price_cents) AS revenue_cents
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		GROUP BY ol.product_id, ol.product_name
		ORDER BY revenue_cents DESC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build sales report", err)
	}
	defer rows.Close()

	var report []queries.SalesReportRow
	for rows.Next() {
		var row queries.SalesReportRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantitySold, &row.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sales report row", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sales report", err)
	}
	return report, nil
}
