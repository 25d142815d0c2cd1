//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCouponReader struct {
	snapshot *shared.CouponSnapshot
	err      error
}

func (s *stubCouponReader) FindByCode(_ context.Context, _ db.DBTX, _ string) (*shared.CouponSnapshot, error) {
	return s.snapshot, s.err
}

type stubUoW struct{}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) DB() db.DBTX { return nil }

func TestValidateCoupon(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	newQueries := func(reader *stubCouponReader) queries.CouponQueries {
		return queries.NewCouponQueries(reader, &stubUoW{}, clock.NewMockClock(now))
	}

	t.Run("active coupon returns its discount", func(t *testing.T) {
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = now.Add(-time.Hour)
		cb.ValidTo = now.Add(time.Hour)
		q := newQueries(&stubCouponReader{snapshot: cb.BuildSnapshot()})

		view, err := q.Validate(t.Context(), cb.Code)
		require.NoError(t, err)
		assert.Equal(t, cb.Code, view.Code)
		assert.Equal(t, cb.DiscountPercent, view.DiscountPercent)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		q := newQueries(&stubCouponReader{
			err: infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound),
		})

		_, err := q.Validate(t.Context(), "NOPE42")
		require.ErrorIs(t, err, queries.ErrCouponNotFound)
	})

	t.Run("expired coupon is not usable", func(t *testing.T) {
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = now.Add(-48 * time.Hour)
		cb.ValidTo = now.Add(-24 * time.Hour)
		q := newQueries(&stubCouponReader{snapshot: cb.BuildSnapshot()})

		_, err := q.Validate(t.Context(), cb.Code)
		require.ErrorIs(t, err, queries.ErrCouponNotUsable)
	})

	t.Run("not yet valid coupon is not usable", func(t *testing.T) {
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = now.Add(24 * time.Hour)
		cb.ValidTo = now.Add(48 * time.Hour)
		q := newQueries(&stubCouponReader{snapshot: cb.BuildSnapshot()})

		_, err := q.Validate(t.Context(), cb.Code)
		require.ErrorIs(t, err, queries.ErrCouponNotUsable)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = now
		cb.ValidTo = now
		q := newQueries(&stubCouponReader{snapshot: cb.BuildSnapshot()})

		_, err := q.Validate(t.Context(), cb.Code)
		require.NoError(t, err)
	})
}
