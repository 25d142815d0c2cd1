package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

const MaxLineQuantity = 999

// Line is one product selection in a customer's cart. Lines are unique per
// (customer, product); merging adds quantities rather than creating rows.
type Line struct {
	customerID uuid.UUID
	productID  uuid.UUID
	quantity   Quantity
	createdAt  time.Time
	updatedAt  time.Time
}

func NewLine(customerID, productID uuid.UUID, quantity int32) (*Line, error) {
	q, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &Line{
		customerID: customerID,
		productID:  productID,
		quantity:   q,
	}, nil
}

func ReconstructLine(customerID, productID uuid.UUID, quantity Quantity, createdAt, updatedAt time.Time) *Line {
	return &Line{
		customerID: customerID,
		productID:  productID,
		quantity:   quantity,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (l *Line) CustomerID() uuid.UUID { return l.customerID }
func (l *Line) ProductID() uuid.UUID  { return l.productID }
func (l *Line) Quantity() Quantity    { return l.quantity }
func (l *Line) CreatedAt() time.Time  { return l.createdAt }
func (l *Line) UpdatedAt() time.Time  { return l.updatedAt }
