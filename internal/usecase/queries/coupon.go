package queries

import (
	"context"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

var (
	ErrCouponNotFound  = errs.New("coupon not found")
	ErrCouponNotUsable = errs.New("coupon not usable")
)

type CouponQueries interface {
	// Validate is a dry run: it checks the code against the current time
	// without reserving or consuming anything.
	Validate(ctx context.Context, code string) (*CouponView, error)
}

type couponQueriesImpl struct {
	coupons shared.CouponReader
	uow     shared.UnitOfWork
	clock   clock.Clock
}

func NewCouponQueries(coupons shared.CouponReader, uow shared.UnitOfWork, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{coupons: coupons, uow: uow, clock: clock}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string) (*CouponView, error) {
	snapshot, err := q.coupons.FindByCode(ctx, q.uow.DB(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	entity, err := coupon.NewCoupon(snapshot.ID, snapshot.Code, snapshot.DiscountPercent, snapshot.ValidFrom, snapshot.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponNotUsable)
	}
	if err := entity.ValidateUsage(q.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrCouponNotUsable)
	}

	return &CouponView{
		ID:              snapshot.ID,
		Code:            snapshot.Code,
		DiscountPercent: snapshot.DiscountPercent,
		ValidFrom:       snapshot.ValidFrom,
		ValidTo:         snapshot.ValidTo,
	}, nil
}
