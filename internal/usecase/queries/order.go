package queries

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderQueries interface {
	// GetByID returns the order only when it belongs to the customer; an
	// order owned by someone else is indistinguishable from a missing one.
	GetByID(ctx context.Context, orderID, customerID uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderListItem, error)
}

type OrderViewReader interface {
	FindByID(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]OrderListItem, error)
}

type orderQueriesImpl struct {
	reader OrderViewReader
	uow    shared.UnitOfWork
}

func NewOrderQueries(reader OrderViewReader, uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{reader: reader, uow: uow}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID, customerID uuid.UUID) (*OrderView, error) {
	view, err := q.reader.FindByID(ctx, q.uow.DB(), orderID, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderListItem, error) {
	return q.reader.ListByCustomer(ctx, q.uow.DB(), customerID)
}
