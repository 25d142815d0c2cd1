package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CartLineView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrderLineView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	PaymentMethod   *string         `json:"payment_method,omitempty"`
	CouponID        *uuid.UUID      `json:"coupon_id,omitempty"`
	CouponCode      *string         `json:"coupon_code,omitempty"`
	DiscountPercent *float64        `json:"discount_percent,omitempty"`
	SubtotalCents   int64           `json:"subtotal_cents"`
	TotalCents      int64           `json:"total_cents"`
	Lines           []OrderLineView `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	SubtotalCents int64     `json:"subtotal_cents"`
	TotalCents    int64     `json:"total_cents"`
	LineCount     int32     `json:"line_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type CouponView struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
}

type SalesReportRow struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	TotalQuantitySold int64     `json:"total_quantity_sold"`
	RevenueCents      int64     `json:"revenue_cents"`
}

type LowStockAlert struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	StockQuantity int32     `json:"stock_quantity"`
}
