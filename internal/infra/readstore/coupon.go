package readstore

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type CouponReadStore struct{}

func NewCouponReadStore() *CouponReadStore {
	return &CouponReadStore{}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, tx db.DBTX, code string) (*shared.CouponSnapshot, error) {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))

	snapshot := &shared.CouponSnapshot{}
	err := tx.QueryRow(ctx, `
		SELECT id, code, discount_percent, valid_from, valid_to
		FROM coupons
		WHERE code = $1`,
		normalizedCode,
	).Scan(&snapshot.ID, &snapshot.Code, &snapshot.DiscountPercent, &snapshot.ValidFrom, &snapshot.ValidTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return snapshot, nil
}
