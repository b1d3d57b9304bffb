package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
)

func setupPromotionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS promotions (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  code TEXT,
  discount_percent NUMERIC,
  is_active BOOLEAN NOT NULL DEFAULT 1,
  starts_at DATETIME,
  ends_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedPromotion(t *testing.T, db *gorm.DB, storeID uuid.UUID, title string, active bool, startsAt, endsAt *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Promotion{
		ID:       uuid.New(),
		StoreID:  storeID,
		Title:    title,
		IsActive: active,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}).Error)
}

func timeptr(v time.Time) *time.Time { return &v }

func TestListActiveFiltersWindowAndFlag(t *testing.T) {
	db := setupPromotionsTestDB(t)
	repo := NewRepository(db)
	storeID := uuid.New()
	now := time.Now().UTC()

	seedPromotion(t, db, storeID, "Diwali Sale", true, timeptr(now.Add(-time.Hour)), timeptr(now.Add(time.Hour)))
	seedPromotion(t, db, storeID, "Evergreen", true, nil, nil)
	seedPromotion(t, db, storeID, "Expired", true, nil, timeptr(now.Add(-time.Minute)))
	seedPromotion(t, db, storeID, "Upcoming", true, timeptr(now.Add(time.Hour)), nil)
	seedPromotion(t, db, storeID, "Disabled", false, nil, nil)
	seedPromotion(t, db, uuid.New(), "Foreign", true, nil, nil)

	rows, err := repo.ListActive(context.Background(), storeID, now)
	require.NoError(t, err)

	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, row.Title)
	}
	assert.ElementsMatch(t, []string{"Diwali Sale", "Evergreen"}, titles)
}
