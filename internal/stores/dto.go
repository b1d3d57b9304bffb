package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizgrow/bizgrow-backend/internal/categories"
	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

// StoreDTO is the API-facing store projection.
type StoreDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Description    *string   `json:"description,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	WhatsAppNumber *string   `json:"whatsapp_number,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Address        *string   `json:"address,omitempty"`
	UPIID          *string   `json:"upi_id,omitempty"`
	GSTPercent     *float64  `json:"gst_percent,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CustomizationDTO is the API-facing presentation settings projection.
type CustomizationDTO struct {
	BannerURL            *string  `json:"banner_url,omitempty"`
	LogoURL              *string  `json:"logo_url,omitempty"`
	PrimaryColor         string   `json:"primary_color"`
	SecondaryColor       string   `json:"secondary_color"`
	WelcomeMessage       *string  `json:"welcome_message,omitempty"`
	ShowPrices           bool     `json:"show_prices"`
	EnableWhatsAppOrders bool     `json:"enable_whatsapp_orders"`
	SocialLinks          []string `json:"social_links,omitempty"`
}

// FromModel maps the persistence model onto the DTO.
func FromModel(store *models.Store) *StoreDTO {
	if store == nil {
		return nil
	}
	return &StoreDTO{
		ID:             store.ID,
		Name:           store.Name,
		Slug:           store.Slug,
		Category:       store.Category,
		CategoryLabel:  categories.Lookup(store.Category).Label,
		Description:    store.Description,
		Phone:          store.Phone,
		WhatsAppNumber: store.WhatsAppNumber,
		Email:          store.Email,
		Address:        store.Address,
		UPIID:          store.UPIID,
		GSTPercent:     store.GSTPercent,
		Tags:           store.Tags,
		CreatedAt:      store.CreatedAt,
	}
}

// CustomizationFromModel maps the settings row onto the DTO, falling back to
// the store's category theme when colors are unset.
func CustomizationFromModel(store *models.Store, customization *models.StoreCustomization) *CustomizationDTO {
	category := "other"
	if store != nil {
		category = store.Category
	}
	dto := DefaultCustomization(category)
	if customization == nil {
		return dto
	}

	dto.BannerURL = customization.BannerURL
	dto.LogoURL = customization.LogoURL
	dto.WelcomeMessage = customization.WelcomeMessage
	dto.ShowPrices = customization.ShowPrices
	dto.EnableWhatsAppOrders = customization.EnableWhatsAppOrders
	dto.SocialLinks = customization.SocialLinks
	if customization.PrimaryColor != nil && *customization.PrimaryColor != "" {
		dto.PrimaryColor = *customization.PrimaryColor
	}
	if customization.SecondaryColor != nil && *customization.SecondaryColor != "" {
		dto.SecondaryColor = *customization.SecondaryColor
	}
	return dto
}

// DefaultCustomization returns the settings used when a store has never
// customized its catalogue page.
func DefaultCustomization(category string) *CustomizationDTO {
	theme := categories.Lookup(category)
	return &CustomizationDTO{
		PrimaryColor:         theme.PrimaryColor,
		SecondaryColor:       theme.SecondaryColor,
		ShowPrices:           true,
		EnableWhatsAppOrders: true,
	}
}
