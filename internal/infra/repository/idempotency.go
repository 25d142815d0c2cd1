package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key in 'processing' state. On conflict it is a no-op
// and returns 0; the caller reads the existing record to decide replay vs.
// conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO idempotency_keys (key, customer_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, customer_id) DO NOTHING`,
		key, customerID, endpoint, requestHash, expiresAt,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	record := &shared.IdempotencyRecord{}
	err := tx.QueryRow(ctx, `
		SELECT key, customer_id, status, request_hash, result_order_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND customer_id = $2`,
		key, customerID,
	).Scan(&record.Key, &record.CustomerID, &record.Status, &record.RequestHash, &record.ResultOrderID, &record.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return record, nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND customer_id = $2`,
		key, customerID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, customerID uuid.UUID, resultHash string, orderID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', response_body_hash = $3, result_order_id = $4, updated_at = now()
		WHERE key = $1 AND customer_id = $2`,
		key, customerID, resultHash, orderID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
