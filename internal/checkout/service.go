package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/internal/cart"
	"github.com/bizgrow/bizgrow-backend/internal/orders"
	"github.com/bizgrow/bizgrow-backend/pkg/db"
	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/bizgrow/bizgrow-backend/pkg/enums"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
	"github.com/bizgrow/bizgrow-backend/pkg/logger"
)

type storeFinder interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type cartManager interface {
	Get(ctx context.Context, storeID uuid.UUID, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, storeID uuid.UUID, sessionID string) error
}

type orderWriter interface {
	Create(ctx context.Context, order *models.Order) error
	FindByClientToken(ctx context.Context, token string) (*models.Order, error)
}

type invoiceSequencer interface {
	NextInvoiceSequence(ctx context.Context, storeID string) (int64, error)
}

// Input is the checkout form as submitted by the shopper.
type Input struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress *string
	DeliveryMode    enums.DeliveryMode
	PaymentMethod   enums.PaymentMethod
	Notes           *string
	GSTPercent      *decimal.Decimal
	DiscountAmount  decimal.Decimal
	ClientToken     *string
}

// Result is what the confirmation page needs.
type Result struct {
	Order        *orders.OrderDTO `json:"order"`
	WhatsAppLink *string          `json:"whatsapp_link,omitempty"`
	Replayed     bool             `json:"replayed,omitempty"`
}

// Service submits carts as orders.
type Service interface {
	Submit(ctx context.Context, storeID uuid.UUID, sessionID string, input Input) (*Result, error)
}

type service struct {
	stores   storeFinder
	carts    cartManager
	orders   orderWriter
	invoices invoiceSequencer
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds the checkout service.
func NewService(stores storeFinder, carts cartManager, orderRepo orderWriter, invoices invoiceSequencer, logg *logger.Logger) (Service, error) {
	if stores == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if invoices == nil {
		return nil, fmt.Errorf("invoice sequencer required")
	}
	return &service{
		stores:   stores,
		carts:    carts,
		orders:   orderRepo,
		invoices: invoices,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Submit turns the shopper's cart into an order. The order and its items are
// written in one transaction and the cart stays untouched unless the write
// succeeds. The WhatsApp link and the cart clear afterwards are best-effort
// and never fail the submission. No automatic retry happens anywhere in this
// path; a failed submit is reported and the shopper decides.
func (s *service) Submit(ctx context.Context, storeID uuid.UUID, sessionID string, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	store, err := s.stores.FindActiveByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	if input.ClientToken != nil && *input.ClientToken != "" {
		if existing, err := s.orders.FindByClientToken(ctx, *input.ClientToken); err == nil {
			return &Result{Order: orders.FromModel(existing), Replayed: true}, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check client token")
		}
	}

	current, err := s.carts.Get(ctx, storeID, sessionID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty").
			WithDetails(map[string]string{"cart": "add at least one item before checkout"})
	}

	order, err := s.buildOrder(ctx, store, current, input)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// a concurrent duplicate submit may have landed first
		if db.IsUniqueViolation(err, "client_token") && input.ClientToken != nil && *input.ClientToken != "" {
			if existing, findErr := s.orders.FindByClientToken(ctx, *input.ClientToken); findErr == nil {
				return &Result{Order: orders.FromModel(existing), Replayed: true}, nil
			}
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	result := &Result{Order: orders.FromModel(order)}

	var postErr error
	if link, ok := buildWhatsAppLink(store, order); ok {
		result.WhatsAppLink = &link
	}
	if err := s.carts.Clear(ctx, storeID, sessionID); err != nil {
		postErr = multierr.Append(postErr, fmt.Errorf("clear cart: %w", err))
	}
	if postErr != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("checkout post-steps incomplete for order %s: %v", order.ID, postErr))
	}
	return result, nil
}

func (s *service) buildOrder(ctx context.Context, store *models.Store, current *cart.Cart, input Input) (*models.Order, error) {
	subtotal := current.Total()

	gstPercent := input.GSTPercent
	if gstPercent == nil && store.GSTPercent != nil {
		v := decimal.NewFromFloat(*store.GSTPercent)
		gstPercent = &v
	}
	gstAmount := decimal.Zero
	if gstPercent != nil {
		gstAmount = subtotal.Mul(*gstPercent).Div(decimal.NewFromInt(100)).Round(2)
	}

	discount := input.DiscountAmount
	if discount.GreaterThan(subtotal.Add(gstAmount)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout request").
			WithDetails(map[string]string{"discount_amount": "discount cannot exceed the order total"})
	}
	total := subtotal.Add(gstAmount).Sub(discount)

	order := &models.Order{
		ID:              uuid.New(),
		StoreID:         store.ID,
		InvoiceNumber:   s.nextInvoiceNumber(ctx, store.ID),
		ClientToken:     cloneStringPtr(input.ClientToken),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: cloneStringPtr(input.CustomerAddress),
		DeliveryMode:    input.DeliveryMode,
		OrderType:       enums.OrderTypeOnline,
		PaymentMethod:   input.PaymentMethod,
		Status:          enums.OrderStatusPlaced,
		Subtotal:        subtotal,
		GSTPercent:      gstPercent,
		DiscountAmount:  discount,
		Total:           total,
		Notes:           cloneStringPtr(input.Notes),
	}

	for _, item := range current.Items {
		productID := item.ProductID
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: &productID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  cloneStringPtr(item.ImageURL),
			LineTotal: item.LineTotal(),
		})
	}
	return order, nil
}

// nextInvoiceNumber draws from the per-store Redis sequence and falls back to
// a timestamp reference when the counter is unreachable. Orders must never
// fail because of the invoice counter.
func (s *service) nextInvoiceNumber(ctx context.Context, storeID uuid.UUID) string {
	seq, err := s.invoices.NextInvoiceSequence(ctx, storeID.String())
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("invoice counter unavailable, using timestamp reference: %v", err))
		}
		return fmt.Sprintf("INV-T%d", s.now().UnixMilli())
	}
	return fmt.Sprintf("INV-%04d", seq)
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}
