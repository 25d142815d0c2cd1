package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
}

func FromCartLineViews(views []queries.CartLineView) *CartResponse {
	lines := make([]CartLineResponse, 0, len(views))
	for _, v := range views {
		lines = append(lines, CartLineResponse{
			ProductID:      v.ProductID,
			ProductName:    v.ProductName,
			Quantity:       v.Quantity,
			UnitPriceCents: v.UnitPriceCents,
			CreatedAt:      v.CreatedAt,
		})
	}
	return &CartResponse{Lines: lines}
}
