package request

import (
	"strings"
)

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyCouponRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}
