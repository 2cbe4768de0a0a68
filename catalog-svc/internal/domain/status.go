package domain

type OrderStatus string

const (
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

var statusRank = map[OrderStatus]int{
	StatusConfirmed:      0,
	StatusPreparing:      1,
	StatusReadyForPickup: 2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// Valid reports whether s is one of the delivery pipeline states.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanMoveTo allows staying put or moving forward; never backwards.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}
