package order

import (
	"errors"
	"strings"
)

var (
	ErrEmptyShippingAddress   = errors.New("shipping address must not be empty")
	ErrShippingAddressTooLong = errors.New("shipping address too long")
	ErrEmptyPaymentMethod     = errors.New("payment method must not be empty")
	ErrInvalidStatusLabel     = errors.New("invalid status label")
)

const (
	MaxShippingAddressLength = 500
	MaxStatusLabelLength     = 50
)

type Money int64

func NewMoney(cents int64) Money {
	if cents < 0 {
		return Money(0)
	}
	return Money(cents)
}

func (m Money) Cents() int64 {
	return int64(m)
}

type ShippingAddress string

func NewShippingAddress(s string) (ShippingAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyShippingAddress
	}
	if len(s) > MaxShippingAddressLength {
		return "", ErrShippingAddressTooLong
	}
	return ShippingAddress(s), nil
}

func (a ShippingAddress) String() string {
	return string(a)
}

type PaymentMethod string

func NewPaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyPaymentMethod
	}
	return PaymentMethod(s), nil
}

func (p PaymentMethod) String() string {
	return string(p)
}

// NewStatusLabel validates an admin-supplied status overwrite. The transition
// graph is deliberately unchecked; only the label shape is constrained.
func NewStatusLabel(s string) (Status, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || len(s) > MaxStatusLabelLength {
		return "", ErrInvalidStatusLabel
	}
	return Status(s), nil
}
