package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
)

// validateInput checks the checkout form before anything touches storage.
// Field problems are collected so the shopper sees all of them at once.
func validateInput(input Input) error {
	fields := map[string]string{}

	if strings.TrimSpace(input.CustomerName) == "" {
		fields["customer_name"] = "customer name is required"
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		fields["customer_phone"] = "customer phone is required"
	} else if len(digitsOnly(input.CustomerPhone)) < 7 {
		fields["customer_phone"] = "customer phone must be a valid phone number"
	}

	if !input.DeliveryMode.IsValid() {
		fields["delivery_mode"] = "delivery mode must be takeaway or delivery"
	} else if input.DeliveryMode.RequiresAddress() {
		if input.CustomerAddress == nil || strings.TrimSpace(*input.CustomerAddress) == "" {
			fields["customer_address"] = "address is required for delivery orders"
		}
	}

	if !input.PaymentMethod.IsValid() {
		fields["payment_method"] = "payment method must be cash, upi or card"
	}

	if input.DiscountAmount.IsNegative() {
		fields["discount_amount"] = "discount amount cannot be negative"
	}
	if input.GSTPercent != nil {
		if input.GSTPercent.IsNegative() || input.GSTPercent.GreaterThan(decimal.NewFromInt(100)) {
			fields["gst_percent"] = "gst percent must be between 0 and 100"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout request").WithDetails(fields)
}
