package commands

import (
	"context"

	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

// OrderViewReader gives commands read-after-write access to the composed
// order view without depending on the query usecases.
type OrderViewReader interface {
	FindByIDSystem(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*queries.OrderView, error)
}
