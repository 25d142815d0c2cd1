package request

import (
	"github.com/google/uuid"
)

type AddCartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartLineRequest struct {
	Quantity int32 `json:"quantity" binding:"required,gt=0"`
}
