package stores

import (
	"context"
	"fmt"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles store persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to store operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindActiveByID loads an active store by its UUID. Inactive stores are
// invisible to the public catalogue, so the filter lives in the query.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByID loads a store regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindCustomization loads the store's presentation settings, if any.
func (r *Repository) FindCustomization(ctx context.Context, storeID uuid.UUID) (*models.StoreCustomization, error) {
	var customization models.StoreCustomization
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&customization).Error; err != nil {
		return nil, err
	}
	return &customization, nil
}

// Update saves the provided store.
func (r *Repository) Update(ctx context.Context, store *models.Store) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	return r.db.WithContext(ctx).Save(store).Error
}
