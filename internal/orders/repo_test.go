package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bizgrow/bizgrow-backend/pkg/db/models"
	"github.com/bizgrow/bizgrow-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL,
  invoice_number TEXT NOT NULL,
  client_token TEXT UNIQUE,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT,
  delivery_mode TEXT NOT NULL DEFAULT 'takeaway',
  order_type TEXT NOT NULL DEFAULT 'online',
  payment_method TEXT NOT NULL DEFAULT 'cash',
  status TEXT NOT NULL DEFAULT 'placed',
  subtotal NUMERIC NOT NULL,
  gst_percent NUMERIC,
  discount_amount NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT,
  name TEXT NOT NULL,
  unit_price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  image_url TEXT,
  line_total NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	return db
}

func buildOrder(storeID uuid.UUID, invoice string, token *string) *models.Order {
	productID := uuid.New()
	order := &models.Order{
		ID:            uuid.New(),
		StoreID:       storeID,
		InvoiceNumber: invoice,
		ClientToken:   token,
		CustomerName:  "Asha Patel",
		CustomerPhone: "+919876543210",
		DeliveryMode:  enums.DeliveryModeTakeaway,
		OrderType:     enums.OrderTypeOnline,
		PaymentMethod: enums.PaymentMethodCash,
		Status:        enums.OrderStatusPlaced,
		Subtotal:      decimal.RequireFromString("998.00"),
		Total:         decimal.RequireFromString("998.00"),
		Items: []models.OrderItem{
			{
				ID:        uuid.New(),
				ProductID: &productID,
				Name:      "Basmati Rice 5kg",
				UnitPrice: decimal.RequireFromString("499.00"),
				Quantity:  2,
				LineTotal: decimal.RequireFromString("998.00"),
			},
		},
	}
	return order
}

func TestRepositoryCreateAndFindByID(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	storeID := uuid.New()
	order := buildOrder(storeID, "INV-0001", nil)
	require.NoError(t, repo.Create(context.Background(), order))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", found.InvoiceNumber)
	assert.Equal(t, enums.OrderStatusPlaced, found.Status)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Basmati Rice 5kg", found.Items[0].Name)
	assert.Equal(t, 2, found.Items[0].Quantity)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("998.00")))
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryClientTokenUnique(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	storeID := uuid.New()
	token := "ck-123"
	first := buildOrder(storeID, "INV-0001", &token)
	require.NoError(t, repo.Create(context.Background(), first))

	dup := buildOrder(storeID, "INV-0002", &token)
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)

	found, err := repo.FindByClientToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Len(t, found.Items, 1)
}

func TestRepositoryListByStore(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	storeID := uuid.New()
	require.NoError(t, repo.Create(context.Background(), buildOrder(storeID, "INV-0001", nil)))
	require.NoError(t, repo.Create(context.Background(), buildOrder(storeID, "INV-0002", nil)))
	require.NoError(t, repo.Create(context.Background(), buildOrder(uuid.New(), "INV-0003", nil)))

	rows, err := repo.ListByStore(context.Background(), storeID, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
