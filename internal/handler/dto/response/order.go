package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerID      uuid.UUID           `json:"customerId"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   *string             `json:"paymentMethod,omitempty"`
	CouponCode      *string             `json:"couponCode,omitempty"`
	DiscountPercent *float64            `json:"discountPercent,omitempty"`
	SubtotalCents   int64               `json:"subtotalCents"`
	TotalCents      int64               `json:"totalCents"`
	Lines           []OrderLineResponse `json:"lines"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	SubtotalCents int64     `json:"subtotalCents"`
	TotalCents    int64     `json:"totalCents"`
	LineCount     int32     `json:"lineCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}
	return &OrderResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		Status:          v.Status,
		ShippingAddress: v.ShippingAddress,
		PaymentMethod:   v.PaymentMethod,
		CouponCode:      v.CouponCode,
		DiscountPercent: v.DiscountPercent,
		SubtotalCents:   v.SubtotalCents,
		TotalCents:      v.TotalCents,
		Lines:           lines,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromOrderListItem(v *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:            v.ID,
		Status:        v.Status,
		SubtotalCents: v.SubtotalCents,
		TotalCents:    v.TotalCents,
		LineCount:     v.LineCount,
		CreatedAt:     v.CreatedAt,
	}
}
