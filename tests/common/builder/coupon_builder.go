//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "storefront/internal/domain/coupon"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent float64
	ValidFrom       time.Time
	ValidTo         time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:              uuid.New(),
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ValidFrom:       now.Add(-24 * time.Hour),
		ValidTo:         now.Add(24 * time.Hour),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.ID, b.Code, b.DiscountPercent, b.ValidFrom, b.ValidTo)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:              b.ID,
		Code:            b.Code,
		DiscountPercent: b.DiscountPercent,
		ValidFrom:       b.ValidFrom,
		ValidTo:         b.ValidTo,
	}
}
