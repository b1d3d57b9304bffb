package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizgrow/bizgrow-backend/pkg/enums"
)

// Order is a customer order placed against one store. Item rows snapshot
// the cart at submission time; later product edits never change them.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID         uuid.UUID           `gorm:"column:store_id;type:uuid;not null;index"`
	InvoiceNumber   string              `gorm:"column:invoice_number;not null"`
	ClientToken     *string             `gorm:"column:client_token;uniqueIndex"`
	CustomerName    string              `gorm:"column:customer_name;not null"`
	CustomerPhone   string              `gorm:"column:customer_phone;not null"`
	CustomerAddress *string             `gorm:"column:customer_address"`
	DeliveryMode    enums.DeliveryMode  `gorm:"column:delivery_mode;type:text;not null;default:'takeaway'"`
	OrderType       enums.OrderType     `gorm:"column:order_type;type:text;not null;default:'online'"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:text;not null;default:'cash'"`
	Status          enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'placed'"`
	Subtotal        decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null"`
	GSTPercent      *decimal.Decimal    `gorm:"column:gst_percent;type:numeric(5,2)"`
	DiscountAmount  decimal.Decimal     `gorm:"column:discount_amount;type:numeric(12,2);not null;default:0"`
	Total           decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	Notes           *string             `gorm:"column:notes"`
	Items           []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
