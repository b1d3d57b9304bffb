package products

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/bizgrow/bizgrow-backend/pkg/pagination"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  unit TEXT,
  image_url TEXT,
  is_available BOOLEAN NOT NULL DEFAULT 1,
  stock_count INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, storeID uuid.UUID, name string, available bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		StoreID:     storeID,
		Name:        name,
		Price:       decimal.RequireFromString("49.00"),
		IsAvailable: available,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestFindAvailableByID(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	storeID := uuid.New()

	available := seedProduct(t, db, storeID, "Basmati Rice 5kg", true)
	hidden := seedProduct(t, db, storeID, "Old Stock", false)
	foreign := seedProduct(t, db, uuid.New(), "Basmati Rice 5kg", true)

	found, err := repo.FindAvailableByID(context.Background(), storeID, available.ID)
	require.NoError(t, err)
	assert.Equal(t, available.ID, found.ID)
	assert.Equal(t, "Basmati Rice 5kg", found.Name)

	_, err = repo.FindAvailableByID(context.Background(), storeID, hidden.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindAvailableByID(context.Background(), storeID, foreign.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListAvailableSortsAndFilters(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	storeID := uuid.New()

	seedProduct(t, db, storeID, "Toor Dal 1kg", true)
	seedProduct(t, db, storeID, "Atta 10kg", true)
	seedProduct(t, db, storeID, "Sugar 1kg", false)
	seedProduct(t, db, uuid.New(), "Besan 500g", true)

	rows, next, err := repo.ListAvailable(context.Background(), storeID, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Atta 10kg", rows[0].Name)
	assert.Equal(t, "Toor Dal 1kg", rows[1].Name)
	assert.Empty(t, next)
}

func TestListAvailablePaginates(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	storeID := uuid.New()

	for i := 0; i < 5; i++ {
		seedProduct(t, db, storeID, fmt.Sprintf("Item %d", i), true)
	}

	var seen []string
	params := pagination.Params{Limit: 2}
	pages := 0
	for {
		rows, next, err := repo.ListAvailable(context.Background(), storeID, params)
		require.NoError(t, err)
		for _, row := range rows {
			seen = append(seen, row.Name)
		}
		pages++
		if next == "" {
			break
		}
		params.Cursor = next
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"Item 0", "Item 1", "Item 2", "Item 3", "Item 4"}, seen)
}

func TestListAvailableRejectsBadCursor(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	_, _, err := repo.ListAvailable(context.Background(), uuid.New(), pagination.Params{Cursor: "not-base64!"})
	assert.Error(t, err)
}
