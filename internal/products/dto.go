package products

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

// ProductDTO is the API-facing product projection.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        *string         `json:"unit,omitempty"`
	ImageURL    *string         `json:"image_url,omitempty"`
	StockCount  *int            `json:"stock_count,omitempty"`
}

// FromModel maps the persistence model onto the DTO.
func FromModel(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Unit:        product.Unit,
		ImageURL:    product.ImageURL,
		StockCount:  product.StockCount,
	}
}

// FromModels maps a slice of rows, keeping order.
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
