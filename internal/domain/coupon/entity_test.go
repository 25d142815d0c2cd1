//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponValidityWindow(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	c, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.ValidFrom = from
		b.ValidTo = to
	}).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    time.Time
		valid bool
		errIs error
	}{
		{name: "before window", at: from.Add(-time.Second), valid: false, errIs: coupon.ErrCouponNotYetValid},
		{name: "exactly at start", at: from, valid: true},
		{name: "inside window", at: from.Add(72 * time.Hour), valid: true},
		{name: "exactly at end", at: to, valid: true},
		{name: "after window", at: to.Add(time.Second), valid: false, errIs: coupon.ErrCouponExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, c.IsValidAt(tt.at))

			err := c.ValidateUsage(tt.at)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestCouponCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		want  string
		errIs error
	}{
		{name: "uppercase alphanumeric", code: "SUMMER20", want: "SUMMER20"},
		{name: "lowercase normalized", code: "summer20", want: "SUMMER20"},
		{name: "surrounding whitespace trimmed", code: "  SAVE10  ", want: "SAVE10"},
		{name: "minimum length", code: "ABC", want: "ABC"},
		{name: "too short", code: "AB", errIs: coupon.ErrInvalidCouponCode},
		{name: "too long", code: "ABCDEFGHIJKLMNOPQRSTU", errIs: coupon.ErrInvalidCouponCode},
		{name: "embedded space", code: "SUMMER 20", errIs: coupon.ErrInvalidCouponCode},
		{name: "special characters", code: "SAVE-10", errIs: coupon.ErrInvalidCouponCode},
		{name: "empty", code: "", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := coupon.NewCode(tt.code)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestDiscount(t *testing.T) {
	t.Run("percent bounds", func(t *testing.T) {
		for _, percent := range []float64{0, 50, 100} {
			_, err := coupon.NewDiscount(percent)
			assert.NoError(t, err, "percent %v", percent)
		}
		for _, percent := range []float64{-0.1, 100.1} {
			_, err := coupon.NewDiscount(percent)
			assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent, "percent %v", percent)
		}
	})

	t.Run("apply rounds down", func(t *testing.T) {
		d, err := coupon.NewDiscount(10)
		require.NoError(t, err)

		// 10% off 999 is 899.1, truncated to 899
		assert.Equal(t, int64(899), d.Apply(999))
		assert.Equal(t, int64(100), d.AmountOffCents(999))
	})

	t.Run("full discount floors at zero", func(t *testing.T) {
		d, err := coupon.NewDiscount(100)
		require.NoError(t, err)

		assert.Equal(t, int64(0), d.Apply(5000))
		assert.Equal(t, int64(5000), d.AmountOffCents(5000))
	})

	t.Run("zero discount is identity", func(t *testing.T) {
		d, err := coupon.NewDiscount(0)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), d.Apply(5000))
	})
}
