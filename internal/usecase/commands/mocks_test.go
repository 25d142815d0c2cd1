//go:build unit

package commands_test

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs transaction bodies inline. CommitCount tracks successful
// Within calls so tests can assert nothing was committed on failure paths.
type fakeUoW struct {
	CommitCount int
	WithinErr   error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	if err := fn(ctx, nil); err != nil {
		return err
	}
	u.CommitCount++
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) DB() db.DBTX {
	return nil
}

type fakeCartRepo struct {
	Lines          []shared.CartLineSnapshot
	LinesErr       error
	UpsertErr      error
	SetAffected    int64
	SetErr         error
	DeleteErr      error
	ClearedFor     []uuid.UUID
	ClearErr       error
	UpsertedLines  []shared.CartLineSnapshot
	DeletedLineFor []uuid.UUID
}

func (r *fakeCartRepo) UpsertLine(_ context.Context, _ db.DBTX, customerID, productID uuid.UUID, quantity int32) error {
	if r.UpsertErr != nil {
		return r.UpsertErr
	}
	r.UpsertedLines = append(r.UpsertedLines, shared.CartLineSnapshot{ProductID: productID, Quantity: quantity})
	return nil
}

func (r *fakeCartRepo) SetLineQuantity(_ context.Context, _ db.DBTX, _, _ uuid.UUID, _ int32) (int64, error) {
	return r.SetAffected, r.SetErr
}

func (r *fakeCartRepo) DeleteLine(_ context.Context, _ db.DBTX, customerID, _ uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.DeletedLineFor = append(r.DeletedLineFor, customerID)
	return nil
}

func (r *fakeCartRepo) DeleteAllLines(_ context.Context, _ db.DBTX, customerID uuid.UUID) error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.ClearedFor = append(r.ClearedFor, customerID)
	return nil
}

func (r *fakeCartRepo) LinesForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) ([]shared.CartLineSnapshot, error) {
	return r.Lines, r.LinesErr
}

type fakeOrderRepo struct {
	Created     *order.Order
	CreateErr   error
	PayAffected int64
	PayErr      error
	SetAffected int64
	SetErr      error
	SetStatuses []string
	Status      string
	StatusErr   error
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	if r.CreateErr != nil {
		return uuid.Nil, r.CreateErr
	}
	r.Created = o
	return o.ID(), nil
}

func (r *fakeOrderRepo) PayIfPending(_ context.Context, _ db.DBTX, _, _ uuid.UUID, _ string) (int64, error) {
	return r.PayAffected, r.PayErr
}

func (r *fakeOrderRepo) SetStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status string) (int64, error) {
	if r.SetErr != nil {
		return 0, r.SetErr
	}
	r.SetStatuses = append(r.SetStatuses, status)
	return r.SetAffected, nil
}

func (r *fakeOrderRepo) FindStatus(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (string, error) {
	return r.Status, r.StatusErr
}

type fakeIdempotencyRepo struct {
	InsertedRows   int64
	InsertErr      error
	Record         *shared.IdempotencyRecord
	GetErr         error
	CompletedKey   *uuid.UUID
	CompletedOrder *uuid.UUID
	CompleteErr    error
	DeletedKeys    []uuid.UUID
	DeleteErr      error
}

// TryInsert mirrors the ON CONFLICT DO NOTHING insert: an existing record
// always wins, otherwise InsertedRows decides whether the claim sticks.
func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, _ db.DBTX, key, customerID uuid.UUID, _, requestHash string, expiresAt time.Time) (int64, error) {
	if r.InsertErr != nil {
		return 0, r.InsertErr
	}
	if r.Record != nil {
		return 0, nil
	}
	if r.InsertedRows > 0 {
		r.Record = &shared.IdempotencyRecord{
			Key:         key,
			CustomerID:  customerID,
			Status:      "processing",
			RequestHash: requestHash,
			ExpiresAt:   expiresAt,
		}
	}
	return r.InsertedRows, nil
}

func (r *fakeIdempotencyRepo) Get(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.Record, r.GetErr
}

func (r *fakeIdempotencyRepo) Delete(_ context.Context, _ db.DBTX, key, _ uuid.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.DeletedKeys = append(r.DeletedKeys, key)
	r.Record = nil
	return nil
}

func (r *fakeIdempotencyRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, key, _ uuid.UUID, _ string, orderID uuid.UUID) error {
	if r.CompleteErr != nil {
		return r.CompleteErr
	}
	r.CompletedKey = &key
	r.CompletedOrder = &orderID
	return nil
}

type fakeCatalog struct {
	Products map[uuid.UUID]shared.ProductSnapshot
	Err      error
}

func (c *fakeCatalog) FindByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := make(map[uuid.UUID]shared.ProductSnapshot, len(ids))
	for _, id := range ids {
		if p, ok := c.Products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeCouponReader struct {
	Snapshot *shared.CouponSnapshot
	Err      error
}

func (c *fakeCouponReader) FindByCode(_ context.Context, _ db.DBTX, _ string) (*shared.CouponSnapshot, error) {
	return c.Snapshot, c.Err
}

type fakeOrderViews struct {
	View *queries.OrderView
	Err  error
	// LastRequested captures the most recent lookup target
	LastRequested uuid.UUID
}

func (v *fakeOrderViews) FindByIDSystem(_ context.Context, _ db.DBTX, orderID uuid.UUID) (*queries.OrderView, error) {
	v.LastRequested = orderID
	if v.Err != nil {
		return nil, v.Err
	}
	if v.View != nil {
		return v.View, nil
	}
	return &queries.OrderView{ID: orderID}, nil
}
