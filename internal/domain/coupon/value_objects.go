package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	percentOff float64
}

func NewDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) PercentOff() float64 {
	return d.percentOff
}

func (d Discount) Apply(basePriceCents int64) int64 {
	result := int64(float64(basePriceCents) * (100.0 - d.percentOff) / 100.0)
	if result < 0 {
		return 0
	}
	return result
}

func (d Discount) AmountOffCents(basePriceCents int64) int64 {
	return basePriceCents - d.Apply(basePriceCents)
}
