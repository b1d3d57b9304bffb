package products

import (
	"context"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/bizgrow/bizgrow-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles product persistence for the catalogue.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAvailableByID loads one available product belonging to the given store.
// Unavailable or foreign products are treated as not found so the cart can
// never snapshot them.
func (r *Repository) FindAvailableByID(ctx context.Context, storeID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ? AND is_available = ?", productID, storeID, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListAvailable returns available products for a store sorted by name,
// cursor-paginated. The extra row requested by LimitWithBuffer signals
// whether a next page exists.
func (r *Repository) ListAvailable(ctx context.Context, storeID uuid.UUID, params pagination.Params) ([]models.Product, string, error) {
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).
		Where("store_id = ? AND is_available = ?", storeID, true).
		Order("name ASC, id ASC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}
	if cursor != nil {
		query = query.Where("(name, id) > (?, ?)", cursor.Name, cursor.ID)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{Name: last.Name, ID: last.ID})
	}
	return rows, next, nil
}
