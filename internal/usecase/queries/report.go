package queries

import (
	"context"
	"time"

	"storefront/internal/infra/db"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

var ErrInvalidReportRange = errs.New("invalid report range")

type ReportQueries interface {
	// SalesReport aggregates per-product quantity and revenue over orders
	// created within [startDate, endDate], both inclusive.
	SalesReport(ctx context.Context, startDate, endDate time.Time) ([]SalesReportRow, error)
	// LowStock lists products at or below the stock threshold; a nil
	// threshold falls back to the configured default.
	LowStock(ctx context.Context, threshold *int32) ([]LowStockAlert, error)
}

type ReportReader interface {
	SalesReport(ctx context.Context, tx db.DBTX, startDate, endDate time.Time) ([]SalesReportRow, error)
}

type LowStockReader interface {
	FindLowStock(ctx context.Context, tx db.DBTX, threshold int32) ([]LowStockAlert, error)
}

type reportQueriesImpl struct {
	reports   ReportReader
	products  LowStockReader
	uow       shared.UnitOfWork
	threshold int32
}

func NewReportQueries(reports ReportReader, products LowStockReader, uow shared.UnitOfWork, lowStockThreshold int32) ReportQueries {
	return &reportQueriesImpl{
		reports:   reports,
		products:  products,
		uow:       uow,
		threshold: lowStockThreshold,
	}
}

func (q *reportQueriesImpl) SalesReport(ctx context.Context, startDate, endDate time.Time) ([]SalesReportRow, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidReportRange
	}

	var rows []SalesReportRow
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		rows, err = q.reports.SalesReport(ctx, tx, startDate, endDate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *reportQueriesImpl) LowStock(ctx context.Context, threshold *int32) ([]LowStockAlert, error) {
	effective := q.threshold
	if threshold != nil {
		effective = *threshold
	}
	return q.products.FindLowStock(ctx, q.uow.DB(), effective)
}
