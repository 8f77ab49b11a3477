package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lizzumiko/storefront-reports/pkg/migrate"
)

func TestSchemaMigrationContainsAllTables(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_webstore_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS customers",
		"CREATE TABLE IF NOT EXISTS categories",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS product_categories",
		"CREATE TABLE IF NOT EXISTS stores",
		"CREATE TABLE IF NOT EXISTS stocks",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"unit_price NUMERIC(12,2) NOT NULL",
		"discount NUMERIC(12,2) NOT NULL DEFAULT 0",
		"PRIMARY KEY (product_id, store_id)",
		"DROP TABLE IF EXISTS order_items",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Loyalty Points!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_loyalty_points.sql") {
		t.Errorf("unexpected filename %q", path)
	}

	if err := migrate.ValidateDir(dir); err != nil {
		t.Errorf("generated migration fails validation: %v", err)
	}
}
