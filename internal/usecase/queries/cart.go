package queries

import (
	"context"

	"storefront/internal/infra/db"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartQueries interface {
	// List returns the customer's cart lines with current catalog prices.
	List(ctx context.Context, customerID uuid.UUID) ([]CartLineView, error)
}

type CartViewReader interface {
	ListByCustomer(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]CartLineView, error)
}

type cartQueriesImpl struct {
	reader CartViewReader
	uow    shared.UnitOfWork
}

func NewCartQueries(reader CartViewReader, uow shared.UnitOfWork) CartQueries {
	return &cartQueriesImpl{reader: reader, uow: uow}
}

func (q *cartQueriesImpl) List(ctx context.Context, customerID uuid.UUID) ([]CartLineView, error) {
	return q.reader.ListByCustomer(ctx, q.uow.DB(), customerID)
}
