package order

// Status is the delivery lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Terminal reports whether no further change is allowed.
func (s Status) Terminal() bool {
	return s == StatusDelivered
}

// CanTransition checks if from->to is allowed. Any non-terminal state may
// move to any known state.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid() && !from.Terminal()
}
