package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"luminaire-configurator/db"
)

// TestCatalogRepositoryPostgres runs against a real database when TEST_DATABASE_URL is set
func TestCatalogRepositoryPostgres(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	if err := db.Open(ctx, connStr); err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { db.CloseDB() })

	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatal(err)
	}

	src, err := ParseCatalogTOML([]byte(testCatalogTOML))
	if err != nil {
		t.Fatal(err)
	}

	repo := NewCatalogRepository()
	n, err := repo.SeedFrom(ctx, src)
	if err != nil {
		t.Fatalf("SeedFrom() error = %v", err)
	}
	if n != 2 {
		t.Errorf("SeedFrom() = %d, want 2", n)
	}

	want, _ := src.GetProduct(ctx, "P1")
	got, err := repo.GetProduct(ctx, "P1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetProduct() mismatch (-want +got):\n%s", diff)
	}

	wantRows, _ := src.GetLumenRows(ctx, "P1")
	gotRows, err := repo.GetLumenRows(ctx, "P1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantRows, gotRows); diff != "" {
		t.Errorf("GetLumenRows() mismatch (-want +got):\n%s", diff)
	}
}
