package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// CartLineSnapshot is a cart line as captured inside the placement
// transaction, after the row has been locked.
type CartLineSnapshot struct {
	ProductID uuid.UUID
	Quantity  int32
}

// ProductSnapshot carries the catalog price at the moment it was read.
type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	PriceCents    int64
	StockQuantity int32
}

type CouponSnapshot struct {
	ID              uuid.UUID
	Code            string
	DiscountPercent float64
	ValidFrom       time.Time
	ValidTo         time.Time
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	CustomerID    uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}
