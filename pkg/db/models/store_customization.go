package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StoreCustomization carries per-store presentation settings for the public
// catalogue page. At most one row per store; absence means defaults.
type StoreCustomization struct {
	ID                   uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID              uuid.UUID      `gorm:"column:store_id;type:uuid;not null;uniqueIndex"`
	BannerURL            *string        `gorm:"column:banner_url"`
	LogoURL              *string        `gorm:"column:logo_url"`
	PrimaryColor         *string        `gorm:"column:primary_color"`
	SecondaryColor       *string        `gorm:"column:secondary_color"`
	WelcomeMessage       *string        `gorm:"column:welcome_message"`
	ShowPrices           bool           `gorm:"column:show_prices;not null;default:true"`
	EnableWhatsAppOrders bool           `gorm:"column:enable_whatsapp_orders;not null;default:true"`
	SocialLinks          pq.StringArray `gorm:"column:social_links;type:text[]"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
