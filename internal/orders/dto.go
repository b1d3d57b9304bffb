package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

// OrderDTO is the API-facing order projection used by the confirmation view.
type OrderDTO struct {
	ID              uuid.UUID        `json:"id"`
	StoreID         uuid.UUID        `json:"store_id"`
	InvoiceNumber   string           `json:"invoice_number"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress *string          `json:"customer_address,omitempty"`
	DeliveryMode    string           `json:"delivery_mode"`
	OrderType       string           `json:"order_type"`
	PaymentMethod   string           `json:"payment_method"`
	Status          string           `json:"status"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	GSTPercent      *decimal.Decimal `json:"gst_percent,omitempty"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	Total           decimal.Decimal  `json:"total"`
	Notes           *string          `json:"notes,omitempty"`
	Items           []OrderItemDTO   `json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
}

// OrderItemDTO is one snapshotted line of an order.
type OrderItemDTO struct {
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  *string         `json:"image_url,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// FromModel maps the persistence model onto the DTO.
func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			LineTotal: item.LineTotal,
		})
	}
	return &OrderDTO{
		ID:              order.ID,
		StoreID:         order.StoreID,
		InvoiceNumber:   order.InvoiceNumber,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		DeliveryMode:    order.DeliveryMode.String(),
		OrderType:       order.OrderType.String(),
		PaymentMethod:   order.PaymentMethod.String(),
		Status:          order.Status.String(),
		Subtotal:        order.Subtotal,
		GSTPercent:      order.GSTPercent,
		DiscountAmount:  order.DiscountAmount,
		Total:           order.Total,
		Notes:           order.Notes,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}
