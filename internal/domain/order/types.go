package order

// Status is the order lifecycle label. Pending and Paid are the only states
// the engine moves between on its own; admins may overwrite the field with
// any label, so arbitrary values round-trip through Reconstruct.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusShipped   Status = "shipped"
)

func (s Status) String() string {
	return string(s)
}

// IsPayable reports whether Pay may transition the order. Only a pending
// order accepts payment; anything else is a conflict.
func (s Status) IsPayable() bool {
	return s == StatusPending
}
