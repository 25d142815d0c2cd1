//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderCommandsFixture struct {
	cartRepo    *fakeCartRepo
	orderRepo   *fakeOrderRepo
	idempotency *fakeIdempotencyRepo
	catalog     *fakeCatalog
	coupons     *fakeCouponReader
	orderViews  *fakeOrderViews
	uow         *fakeUoW
	clock       *clock.MockClock
	commands    commands.OrderCommands
}

func newOrderCommandsFixture(b *builder.OrderBuilder) *orderCommandsFixture {
	f := &orderCommandsFixture{
		cartRepo:    &fakeCartRepo{Lines: b.BuildCartSnapshots()},
		orderRepo:   &fakeOrderRepo{},
		idempotency: &fakeIdempotencyRepo{},
		catalog:     &fakeCatalog{Products: b.BuildProductSnapshots()},
		coupons:     &fakeCouponReader{},
		orderViews:  &fakeOrderViews{},
		uow:         &fakeUoW{},
		clock:       clock.NewMockClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewOrderCommands(
		f.cartRepo, f.orderRepo, f.idempotency, f.catalog, f.coupons, f.orderViews, f.uow, f.clock,
	)
	return f
}

func TestPlaceOrder(t *testing.T) {
	t.Run("snapshots cart into a pending order and clears the cart", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)

		result, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsReplayed)

		created := f.orderRepo.Created
		require.NotNil(t, created)
		assert.Equal(t, b.CustomerID, created.CustomerID())

		// Every cart line survives with its catalog price frozen on
		lines := created.Lines()
		require.Len(t, lines, len(b.Lines))
		for i, spec := range b.Lines {
			assert.Equal(t, spec.ProductID, lines[i].ProductID())
			assert.Equal(t, spec.Quantity, lines[i].Quantity())
			assert.Equal(t, spec.UnitPriceCents, lines[i].UnitPriceCents().Cents())
		}

		assert.Equal(t, []uuid.UUID{b.CustomerID}, f.cartRepo.ClearedFor)
		assert.Equal(t, 1, f.uow.CommitCount)
		assert.Equal(t, created.ID(), f.orderViews.LastRequested)
	})

	t.Run("empty cart aborts placement", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.cartRepo.Lines = nil

		result, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, nil)
		require.ErrorIs(t, err, commands.ErrEmptyCart)
		assert.Nil(t, result)
		assert.Nil(t, f.orderRepo.Created)
		assert.Empty(t, f.cartRepo.ClearedFor)
		assert.Zero(t, f.uow.CommitCount)
	})

	t.Run("product deleted since carting aborts the whole order", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		delete(f.catalog.Products, b.Lines[0].ProductID)

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, nil)
		require.ErrorIs(t, err, commands.ErrProductNotFound)
		assert.Nil(t, f.orderRepo.Created)
		assert.Zero(t, f.uow.CommitCount)
	})

	t.Run("blank shipping address is rejected before any work", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: "   ",
		}, nil)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, f.uow.CommitCount)
	})
}

func TestPlaceOrderWithCoupon(t *testing.T) {
	code := "SUMMER20"

	t.Run("valid coupon freezes its percent on the order", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = f.clock.Now().Add(-time.Hour)
		cb.ValidTo = f.clock.Now().Add(time.Hour)
		f.coupons.Snapshot = cb.BuildSnapshot()

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
			CouponCode:      &code,
		}, nil)
		require.NoError(t, err)

		created := f.orderRepo.Created
		require.NotNil(t, created)
		require.NotNil(t, created.CouponID())
		assert.Equal(t, cb.ID, *created.CouponID())
		require.NotNil(t, created.DiscountPercent())
		assert.Equal(t, cb.DiscountPercent, *created.DiscountPercent())
	})

	t.Run("unknown code aborts placement", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.coupons.Err = infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
			CouponCode:      &code,
		}, nil)
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
		assert.Nil(t, f.orderRepo.Created)
		assert.Empty(t, f.cartRepo.ClearedFor)
	})

	t.Run("expired coupon aborts placement, order is all or nothing", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = f.clock.Now().Add(-48 * time.Hour)
		cb.ValidTo = f.clock.Now().Add(-24 * time.Hour)
		f.coupons.Snapshot = cb.BuildSnapshot()

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
			CouponCode:      &code,
		}, nil)
		require.ErrorIs(t, err, commands.ErrInvalidCoupon)
		assert.Nil(t, f.orderRepo.Created)
		assert.Empty(t, f.cartRepo.ClearedFor)
		assert.Zero(t, f.uow.CommitCount)
	})

	t.Run("coupon valid exactly at window end", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		cb := builder.NewCouponBuilder()
		cb.ValidFrom = f.clock.Now().Add(-time.Hour)
		cb.ValidTo = f.clock.Now()
		f.coupons.Snapshot = cb.BuildSnapshot()

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
			CouponCode:      &code,
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, f.orderRepo.Created)
	})
}

func TestPlaceOrderIdempotency(t *testing.T) {
	t.Run("fresh key places the order and completes the record", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.idempotency.InsertedRows = 1
		key := uuid.New()

		result, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, &key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)

		require.NotNil(t, f.idempotency.CompletedKey)
		assert.Equal(t, key, *f.idempotency.CompletedKey)
		require.NotNil(t, f.idempotency.CompletedOrder)
		assert.Equal(t, f.orderRepo.Created.ID(), *f.idempotency.CompletedOrder)
	})

	t.Run("retried key replays the original order without placing a second one", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.idempotency.InsertedRows = 1
		key := uuid.New()
		input := commands.PlaceOrderInput{ShippingAddress: b.ShippingAddress}

		first, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.NoError(t, err)
		firstOrderID := first.Order.ID

		// The retry finds the completed record
		f.idempotency.InsertedRows = 0
		f.idempotency.Record.Status = "completed"
		f.idempotency.Record.ResultOrderID = &firstOrderID
		f.orderRepo.Created = nil

		second, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.NoError(t, err)
		assert.True(t, second.IsReplayed)
		assert.Equal(t, firstOrderID, second.Order.ID)
		assert.Nil(t, f.orderRepo.Created, "no second order placed")
		assert.Equal(t, 1, f.uow.CommitCount)
	})

	t.Run("concurrent retry while still processing conflicts", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.idempotency.InsertedRows = 1
		key := uuid.New()
		input := commands.PlaceOrderInput{ShippingAddress: b.ShippingAddress}

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.NoError(t, err)

		f.idempotency.InsertedRows = 0

		_, err = f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("same key with different parameters conflicts", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.idempotency.InsertedRows = 1
		key := uuid.New()

		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, &key)
		require.NoError(t, err)

		f.idempotency.InsertedRows = 0

		_, err = f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: "4-5-6 Umeda, Osaka",
		}, &key)
		require.ErrorIs(t, err, commands.ErrDuplicateOrderRequest)
	})

	t.Run("failed placement releases the key so a retry can succeed", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		f.idempotency.InsertedRows = 1
		key := uuid.New()
		input := commands.PlaceOrderInput{ShippingAddress: b.ShippingAddress}

		// First attempt claims the key but fails on an empty cart.
		f.cartRepo.Lines = nil
		_, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.ErrorIs(t, err, commands.ErrEmptyCart)
		assert.Equal(t, []uuid.UUID{key}, f.idempotency.DeletedKeys)
		assert.Nil(t, f.idempotency.Record, "failed placement must not leave a processing record")

		// The same key now works once the cart has lines again.
		f.cartRepo.Lines = b.BuildCartSnapshots()
		result, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, input, &key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		require.NotNil(t, f.idempotency.CompletedKey)
		assert.Equal(t, key, *f.idempotency.CompletedKey)
	})

	t.Run("stale processing record past its expiry is reclaimed", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		f := newOrderCommandsFixture(b)
		key := uuid.New()

		// Leftover claim from a crashed attempt, already expired, with a
		// payload hash that no longer matches.
		f.idempotency.Record = &shared.IdempotencyRecord{
			Key:         key,
			CustomerID:  b.CustomerID,
			Status:      "processing",
			RequestHash: "stale-hash",
			ExpiresAt:   f.clock.Now().Add(-time.Hour),
		}
		f.idempotency.InsertedRows = 1

		result, err := f.commands.PlaceOrder(t.Context(), b.CustomerID, commands.PlaceOrderInput{
			ShippingAddress: b.ShippingAddress,
		}, &key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, []uuid.UUID{key}, f.idempotency.DeletedKeys)
		require.NotNil(t, f.orderRepo.Created)
	})
}

func TestPay(t *testing.T) {
	customerID := uuid.New()
	orderID := uuid.New()

	t.Run("pending order transitions to paid", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())
		f.orderRepo.PayAffected = 1

		view, err := f.commands.Pay(t.Context(), orderID, customerID, "credit_card")
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, orderID, f.orderViews.LastRequested)
	})

	t.Run("already paid order conflicts", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())
		f.orderRepo.PayAffected = 0
		f.orderRepo.Status = "paid"

		_, err := f.commands.Pay(t.Context(), orderID, customerID, "credit_card")
		require.ErrorIs(t, err, commands.ErrOrderNotPayable)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())
		f.orderRepo.PayAffected = 0
		f.orderRepo.StatusErr = infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)

		_, err := f.commands.Pay(t.Context(), orderID, customerID, "credit_card")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("blank payment method is rejected", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())

		_, err := f.commands.Pay(t.Context(), orderID, customerID, "  ")
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestAdminSetStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("overwrites status without transition checks", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())
		f.orderRepo.SetAffected = 1

		require.NoError(t, f.commands.AdminSetStatus(t.Context(), orderID, "Shipped"))
		assert.Equal(t, []string{"shipped"}, f.orderRepo.SetStatuses)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())
		f.orderRepo.SetAffected = 0

		err := f.commands.AdminSetStatus(t.Context(), orderID, "cancelled")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("blank status is rejected", func(t *testing.T) {
		f := newOrderCommandsFixture(builder.NewOrderBuilder())

		err := f.commands.AdminSetStatus(t.Context(), orderID, "   ")
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}
