package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStorefrontMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_storefront_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no storefront schema migration found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE stores",
		"CREATE TABLE store_customizations",
		"CREATE TABLE products",
		"CREATE TABLE promotions",
		"CREATE TABLE orders",
		"CREATE TABLE order_items",
		"CREATE UNIQUE INDEX idx_stores_slug ON stores (slug)",
		"CREATE UNIQUE INDEX idx_orders_client_token",
		"CREATE INDEX idx_products_store_available",
		"CHECK (quantity >= 1)",
		"-- +goose Down",
	}
	for _, fragment := range checks {
		if !strings.Contains(content, fragment) {
			t.Errorf("migration missing %q", fragment)
		}
	}

	if strings.Count(content, "-- +goose StatementBegin") != strings.Count(content, "-- +goose StatementEnd") {
		t.Error("unbalanced goose statement markers")
	}
}
