package request

import (
	"strings"
)

type PlaceOrderRequest struct {
	ShippingAddress string  `json:"shipping_address" binding:"required"`
	CouponCode      *string `json:"coupon_code,omitempty"`
}

func (r PlaceOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(*r.CouponCode))
	if normalized == "" {
		return nil
	}
	return &normalized
}

type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
