package progress

// Status is the delivery stage derived from a progress value.
type Status int

const (
	Confirmed Status = iota
	Preparing
	ReadyForPickup
	OutForDelivery
	Delivered
)

const (
	Step     = 20
	Complete = 100
)

var statusLabels = [...]string{
	Confirmed:      "Order Confirmed",
	Preparing:      "Preparing Your Food",
	ReadyForPickup: "Food Ready for Pickup",
	OutForDelivery: "Out for Delivery",
	Delivered:      "Delivered",
}

var statusCodes = [...]string{
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	ReadyForPickup: "ready_for_pickup",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
}

// String returns the label shown to the shopper.
func (s Status) String() string {
	if s < Confirmed || s > Delivered {
		return "Unknown"
	}
	return statusLabels[s]
}

// Code is the status value the catalog service accepts.
func (s Status) Code() string {
	if s < Confirmed || s > Delivered {
		return ""
	}
	return statusCodes[s]
}

func StatusFor(progress int) Status {
	switch {
	case progress < 20:
		return Confirmed
	case progress < 40:
		return Preparing
	case progress < 60:
		return ReadyForPickup
	case progress < 80:
		return OutForDelivery
	default:
		return Delivered
	}
}

// Advance moves progress one step forward, capped at Complete.
func Advance(progress int) int {
	return min(progress+Step, Complete)
}

// StatusFromCode is the inverse of Status.Code.
func StatusFromCode(code string) (Status, bool) {
	for s, c := range statusCodes {
		if c == code {
			return Status(s), true
		}
	}
	return 0, false
}
