package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

// digitsOnly strips everything except digits so "+91 98765-43210" becomes a
// wa.me compatible number.
func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// buildWhatsAppLink renders the merchant notification deep link. Returns
// false when the store has no usable WhatsApp number.
func buildWhatsAppLink(store *models.Store, order *models.Order) (string, bool) {
	if store == nil || store.WhatsAppNumber == nil {
		return "", false
	}
	number := digitsOnly(*store.WhatsAppNumber)
	if number == "" {
		return "", false
	}
	message := buildOrderMessage(store.Name, order)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message)), true
}

// buildOrderMessage writes the itemized plain-text summary the merchant
// receives on WhatsApp.
func buildOrderMessage(storeName string, order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s for %s\n\n", order.InvoiceNumber, storeName)
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s x%d = Rs.%s\n", i+1, item.Name, item.Quantity, item.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nSubtotal: Rs.%s\n", order.Subtotal.StringFixed(2))
	if order.GSTPercent != nil && !order.GSTPercent.IsZero() {
		fmt.Fprintf(&b, "GST (%s%%) included\n", order.GSTPercent.StringFixed(1))
	}
	if !order.DiscountAmount.IsZero() {
		fmt.Fprintf(&b, "Discount: Rs.%s\n", order.DiscountAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: Rs.%s\n\n", order.Total.StringFixed(2))
	fmt.Fprintf(&b, "Customer: %s (%s)\n", order.CustomerName, order.CustomerPhone)
	fmt.Fprintf(&b, "Mode: %s, payment: %s\n", order.DeliveryMode, order.PaymentMethod)
	if order.CustomerAddress != nil && *order.CustomerAddress != "" {
		fmt.Fprintf(&b, "Address: %s\n", *order.CustomerAddress)
	}
	if order.Notes != nil && *order.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", *order.Notes)
	}
	return b.String()
}
