package promotions

import (
	"context"
	"time"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles promotion persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to promotion operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns the store's promotions whose active flag is set and
// whose start/end window contains now. Null bounds are open-ended.
func (r *Repository) ListActive(ctx context.Context, storeID uuid.UUID, now time.Time) ([]models.Promotion, error) {
	var rows []models.Promotion
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
