//go:build unit || e2e

package builder

import (
	"time"

	domorder "storefront/internal/domain/order"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderLineSpec struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
}

type OrderBuilder struct {
	CustomerID      uuid.UUID
	ShippingAddress string
	Lines           []OrderLineSpec
	CouponID        *uuid.UUID
	DiscountPercent *float64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerID:      uuid.New(),
		ShippingAddress: "1-2-3 Shibuya, Tokyo",
		Lines: []OrderLineSpec{
			{ProductID: uuid.New(), ProductName: "Mechanical Keyboard", Quantity: 1, UnitPriceCents: 12000},
			{ProductID: uuid.New(), ProductName: "USB-C Cable", Quantity: 3, UnitPriceCents: 1500},
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithDiscount(percent float64) *OrderBuilder {
	id := uuid.New()
	b.CouponID = &id
	b.DiscountPercent = &percent
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	address, err := domorder.NewShippingAddress(b.ShippingAddress)
	if err != nil {
		return nil, err
	}

	lines := make([]domorder.Line, 0, len(b.Lines))
	for _, spec := range b.Lines {
		line, err := domorder.NewLine(spec.ProductID, spec.ProductName, spec.Quantity, spec.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return domorder.NewOrder(b.CustomerID, address, lines, b.CouponID, b.DiscountPercent)
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		ShippingAddress: b.ShippingAddress,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	now := time.Now()
	lines := make([]queries.OrderLineView, 0, len(b.Lines))
	var subtotal int64
	for _, spec := range b.Lines {
		lines = append(lines, queries.OrderLineView{
			ProductID:      spec.ProductID,
			ProductName:    spec.ProductName,
			Quantity:       spec.Quantity,
			UnitPriceCents: spec.UnitPriceCents,
		})
		subtotal += spec.UnitPriceCents * int64(spec.Quantity)
	}

	total := subtotal
	if b.DiscountPercent != nil {
		total = int64(float64(subtotal) * (100.0 - *b.DiscountPercent) / 100.0)
	}

	return &queries.OrderView{
		ID:              uuid.New(),
		CustomerID:      b.CustomerID,
		Status:          string(domorder.StatusPending),
		ShippingAddress: b.ShippingAddress,
		CouponID:        b.CouponID,
		DiscountPercent: b.DiscountPercent,
		SubtotalCents:   subtotal,
		TotalCents:      total,
		Lines:           lines,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *OrderBuilder) BuildCartSnapshots() []shared.CartLineSnapshot {
	out := make([]shared.CartLineSnapshot, 0, len(b.Lines))
	for _, spec := range b.Lines {
		out = append(out, shared.CartLineSnapshot{
			ProductID: spec.ProductID,
			Quantity:  spec.Quantity,
		})
	}
	return out
}

func (b *OrderBuilder) BuildProductSnapshots() map[uuid.UUID]shared.ProductSnapshot {
	out := make(map[uuid.UUID]shared.ProductSnapshot, len(b.Lines))
	for _, spec := range b.Lines {
		out[spec.ProductID] = shared.ProductSnapshot{
			ID:            spec.ProductID,
			Name:          spec.ProductName,
			PriceCents:    spec.UnitPriceCents,
			StockQuantity: 100,
		}
	}
	return out
}
