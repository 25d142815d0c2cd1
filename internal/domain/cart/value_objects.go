package cart

type Quantity int32

func NewQuantity(v int32) (Quantity, error) {
	if v <= 0 || v > MaxLineQuantity {
		return 0, ErrInvalidQuantity
	}
	return Quantity(v), nil
}

func (q Quantity) Value() int32 {
	return int32(q)
}
