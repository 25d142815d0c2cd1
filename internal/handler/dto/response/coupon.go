package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:              v.ID,
		Code:            v.Code,
		DiscountPercent: v.DiscountPercent,
		ValidFrom:       v.ValidFrom,
		ValidTo:         v.ValidTo,
	}
}
