package shared

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// DB: Single query operations using implicit transactions
	DB() db.DBTX
}

// Repositories are stateless; every method takes the DBTX it must run on so
// the same instance serves pooled statements and open transactions.

type CartRepository interface {
	UpsertLine(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID, quantity int32) error
	SetLineQuantity(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID, quantity int32) (int64, error)
	DeleteLine(ctx context.Context, tx db.DBTX, customerID, productID uuid.UUID) error
	DeleteAllLines(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error
	// LinesForUpdate locks the customer's cart rows for the remainder of the
	// transaction. Concurrent placements for one customer serialize here.
	LinesForUpdate(ctx context.Context, tx db.DBTX, customerID uuid.UUID) ([]CartLineSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	// PayIfPending is a single compare-and-swap: rows affected is 0 unless the
	// order exists, belongs to the customer, and is still pending.
	PayIfPending(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID, method string) (int64, error)
	SetStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status string) (int64, error)
	FindStatus(ctx context.Context, tx db.DBTX, orderID, customerID uuid.UUID) (string, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key; returns the number of rows inserted (0 when
	// the key already exists).
	TryInsert(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error)
	Get(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID, resultHash string, orderID uuid.UUID) error
	// Delete frees a key so it can be claimed again, either after a failed
	// placement or once a stale record passes its expiry.
	Delete(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID) error
}

// CatalogReader resolves current catalog prices for the price snapshot step.
type CatalogReader interface {
	FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) (map[uuid.UUID]ProductSnapshot, error)
}

type CouponReader interface {
	FindByCode(ctx context.Context, tx db.DBTX, code string) (*CouponSnapshot, error)
}
