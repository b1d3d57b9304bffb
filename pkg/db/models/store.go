package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Store represents the canonical merchant tenant.
type Store struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string         `gorm:"column:name;not null"`
	Slug           string         `gorm:"column:slug;not null"`
	Category       string         `gorm:"column:category;not null;default:'other'"`
	Description    *string        `gorm:"column:description"`
	Phone          *string        `gorm:"column:phone"`
	WhatsAppNumber *string        `gorm:"column:whatsapp_number"`
	Email          *string        `gorm:"column:email"`
	Address        *string        `gorm:"column:address"`
	UPIID          *string        `gorm:"column:upi_id"`
	GSTPercent     *float64       `gorm:"column:gst_percent;type:numeric(5,2)"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	Tags           pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
