package promotions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

// PromotionDTO is the API-facing promotion projection.
type PromotionDTO struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     *string          `json:"description,omitempty"`
	Code            *string          `json:"code,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	StartsAt        *time.Time       `json:"starts_at,omitempty"`
	EndsAt          *time.Time       `json:"ends_at,omitempty"`
}

// FromModel maps the persistence model onto the DTO.
func FromModel(promotion *models.Promotion) *PromotionDTO {
	if promotion == nil {
		return nil
	}
	return &PromotionDTO{
		ID:              promotion.ID,
		Title:           promotion.Title,
		Description:     promotion.Description,
		Code:            promotion.Code,
		DiscountPercent: promotion.DiscountPercent,
		StartsAt:        promotion.StartsAt,
		EndsAt:          promotion.EndsAt,
	}
}

// FromModels maps a slice of rows, keeping order.
func FromModels(rows []models.Promotion) []PromotionDTO {
	out := make([]PromotionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
