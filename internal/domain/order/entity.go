package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines         = errors.New("order must have at least one line")
	ErrInvalidLine     = errors.New("invalid order line")
	ErrNotPending      = errors.New("order is not pending")
	ErrInvalidDiscount = errors.New("invalid discount percent")
)

// Line is a priced snapshot of one cart line. The unit price is frozen at
// order creation and never follows later catalog changes.
type Line struct {
	productID      uuid.UUID
	productName    string
	quantity       int32
	unitPriceCents Money
}

func NewLine(productID uuid.UUID, productName string, quantity int32, unitPriceCents int64) (Line, error) {
	if productID == uuid.Nil || quantity <= 0 || unitPriceCents < 0 {
		return Line{}, ErrInvalidLine
	}
	return Line{
		productID:      productID,
		productName:    productName,
		quantity:       quantity,
		unitPriceCents: NewMoney(unitPriceCents),
	}, nil
}

func (l Line) ProductID() uuid.UUID  { return l.productID }
func (l Line) ProductName() string   { return l.productName }
func (l Line) Quantity() int32       { return l.quantity }
func (l Line) UnitPriceCents() Money { return l.unitPriceCents }

func (l Line) SubtotalCents() int64 {
	return l.unitPriceCents.Cents() * int64(l.quantity)
}

type Order struct {
	id              uuid.UUID
	customerID      uuid.UUID
	status          Status
	shippingAddress ShippingAddress
	paymentMethod   *PaymentMethod
	couponID        *uuid.UUID
	discountPercent *float64
	lines           []Line
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder builds a pending order from a cart snapshot. couponID and
// discountPercent travel together; the caller has already validated the
// coupon window against the clock.
func NewOrder(
	customerID uuid.UUID,
	shippingAddress ShippingAddress,
	lines []Line,
	couponID *uuid.UUID,
	discountPercent *float64,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if discountPercent != nil && (*discountPercent < 0 || *discountPercent > 100) {
		return nil, ErrInvalidDiscount
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)

	return &Order{
		id:              uuid.New(),
		customerID:      customerID,
		status:          StatusPending,
		shippingAddress: shippingAddress,
		couponID:        couponID,
		discountPercent: discountPercent,
		lines:           copied,
	}, nil
}

func Reconstruct(
	id, customerID uuid.UUID,
	status Status,
	shippingAddress ShippingAddress,
	paymentMethod *PaymentMethod,
	couponID *uuid.UUID,
	discountPercent *float64,
	lines []Line,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		customerID:      customerID,
		status:          status,
		shippingAddress: shippingAddress,
		paymentMethod:   paymentMethod,
		couponID:        couponID,
		discountPercent: discountPercent,
		lines:           lines,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// MarkPaid performs the guarded pending→paid transition. The persistent
// compare-and-swap enforces the same rule against concurrent writers; this
// method keeps the aggregate consistent in memory and for tests.
func (o *Order) MarkPaid(method PaymentMethod) error {
	if !o.status.IsPayable() {
		return ErrNotPending
	}
	o.status = StatusPaid
	o.paymentMethod = &method
	return nil
}

// SubtotalCents is the undiscounted sum over lines.
func (o *Order) SubtotalCents() int64 {
	var sum int64
	for _, l := range o.lines {
		sum += l.SubtotalCents()
	}
	return sum
}

// TotalCents applies the frozen discount percent, if any.
func (o *Order) TotalCents() int64 {
	sub := o.SubtotalCents()
	if o.discountPercent == nil {
		return sub
	}
	total := int64(float64(sub) * (100.0 - *o.discountPercent) / 100.0)
	if total < 0 {
		return 0
	}
	return total
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) CustomerID() uuid.UUID            { return o.customerID }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) PaymentMethod() *PaymentMethod    { return o.paymentMethod }
func (o *Order) CouponID() *uuid.UUID             { return o.couponID }
func (o *Order) DiscountPercent() *float64        { return o.discountPercent }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }

func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}
