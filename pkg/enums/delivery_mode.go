package enums

import "fmt"

// DeliveryMode distinguishes in-store pickup from home delivery.
type DeliveryMode string

const (
	DeliveryModeTakeaway DeliveryMode = "takeaway"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

var validDeliveryModes = []DeliveryMode{
	DeliveryModeTakeaway,
	DeliveryModeDelivery,
}

// String implements fmt.Stringer.
func (d DeliveryMode) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryMode.
func (d DeliveryMode) IsValid() bool {
	for _, candidate := range validDeliveryModes {
		if candidate == d {
			return true
		}
	}
	return false
}

// RequiresAddress reports whether the mode needs a delivery address.
func (d DeliveryMode) RequiresAddress() bool {
	return d == DeliveryModeDelivery
}

// ParseDeliveryMode converts raw input into a DeliveryMode.
func ParseDeliveryMode(value string) (DeliveryMode, error) {
	for _, candidate := range validDeliveryModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery mode %q", value)
}
