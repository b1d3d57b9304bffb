package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bizgrow/bizgrow-backend/api/responses"
	"github.com/bizgrow/bizgrow-backend/api/validators"
	checkoutsvc "github.com/bizgrow/bizgrow-backend/internal/checkout"
	"github.com/bizgrow/bizgrow-backend/pkg/enums"
	pkgerrors "github.com/bizgrow/bizgrow-backend/pkg/errors"
	"github.com/bizgrow/bizgrow-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName    string           `json:"customer_name" validate:"required,max=200"`
	CustomerPhone   string           `json:"customer_phone" validate:"required,max=20"`
	CustomerAddress *string          `json:"customer_address,omitempty" validate:"omitempty,max=500"`
	DeliveryMode    string           `json:"delivery_mode" validate:"required"`
	PaymentMethod   string           `json:"payment_method" validate:"required"`
	Notes           *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	GSTPercent      *decimal.Decimal `json:"gst_percent,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
	ClientToken     *string          `json:"client_token,omitempty" validate:"omitempty,max=100"`
}

func (p checkoutRequest) toInput(idempotencyKey string) (checkoutsvc.Input, error) {
	mode, err := enums.ParseDeliveryMode(p.DeliveryMode)
	if err != nil {
		return checkoutsvc.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery mode")
	}
	method, err := enums.ParsePaymentMethod(p.PaymentMethod)
	if err != nil {
		return checkoutsvc.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	discount := decimal.Zero
	if p.DiscountAmount != nil {
		discount = *p.DiscountAmount
	}

	token := p.ClientToken
	if token == nil && idempotencyKey != "" {
		token = &idempotencyKey
	}

	return checkoutsvc.Input{
		CustomerName:    validators.SanitizeString(p.CustomerName, 200),
		CustomerPhone:   validators.SanitizeString(p.CustomerPhone, 20),
		CustomerAddress: p.CustomerAddress,
		DeliveryMode:    mode,
		PaymentMethod:   method,
		Notes:           p.Notes,
		GSTPercent:      p.GSTPercent,
		DiscountAmount:  discount,
		ClientToken:     token,
	}, nil
}

// Checkout submits the shopper's cart as an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		storeID, sessionID, err := cartScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput(strings.TrimSpace(r.Header.Get("Idempotency-Key")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithStoreID(ctx, storeID.String())
		}

		result, err := svc.Submit(ctx, storeID, sessionID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
