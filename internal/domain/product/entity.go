package product

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidPrice = errors.New("price cannot be negative")

// Product is the catalog collaborator's read model. The engine reads price
// and stock; catalog maintenance happens elsewhere.
type Product struct {
	id            uuid.UUID
	name          string
	priceCents    int64
	stockQuantity int32
}

func NewProduct(id uuid.UUID, name string, priceCents int64, stockQuantity int32) (*Product, error) {
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		id:            id,
		name:          name,
		priceCents:    priceCents,
		stockQuantity: stockQuantity,
	}, nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) StockQuantity() int32 { return p.stockQuantity }

func (p *Product) IsLowStock(threshold int32) bool {
	return p.stockQuantity <= threshold
}
