package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"luminaire-configurator/db"
	"luminaire-configurator/lumen"
	"luminaire-configurator/models"
)

// CatalogRepository reads product source data and lumen rows from Postgres
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// ListProducts returns all products ordered by position
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	query := `SELECT code, name FROM products ORDER BY position ASC, code ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.ProductSummary{}
	for rows.Next() {
		var p models.ProductSummary
		if err := rows.Scan(&p.Code, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// GetProduct returns a product with its raw attribute blobs
func (r *CatalogRepository) GetProduct(ctx context.Context, code string) (*models.ProductSource, error) {
	log.Printf("🔍 GetProduct: Fetching product code=%s", code)

	src := &models.ProductSource{
		Attributes: make(map[models.AttributeID]string),
	}
	err := db.DB.QueryRowContext(ctx, `SELECT code, name FROM products WHERE code = $1`, code).
		Scan(&src.Code, &src.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, code)
	}
	if err != nil {
		log.Printf("❌ Error querying product %s: %v", code, err)
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx,
		`SELECT attribute, raw_values FROM product_attributes WHERE product_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query product attributes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, blob string
		if err := rows.Scan(&key, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan product attribute: %w", err)
		}
		attr, ok := models.ParseAttributeID(key)
		if !ok {
			log.Printf("⚠️  Warning: product %s has unknown attribute %q, skipping", code, key)
			continue
		}
		src.Attributes[attr] = blob
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product attributes: %w", err)
	}

	log.Printf("✓ Fetched product %s with %d attributes", code, len(src.Attributes))
	return src, nil
}

// GetLumenRows returns the lumen rows of a product in table order
func (r *CatalogRepository) GetLumenRows(ctx context.Context, product string) ([]models.LumenRow, error) {
	query := `
		SELECT product_code, watt, cct,
		       COALESCE(cri, '') as cri,
		       COALESCE(lumen, '') as lumen,
		       COALESCE(raw_text, '') as raw_text
		FROM lumen_rows
		WHERE product_code = $1
		ORDER BY position ASC, id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, product)
	if err != nil {
		log.Printf("❌ Error querying lumen rows for %s: %v", product, err)
		return nil, fmt.Errorf("failed to query lumen rows: %w", err)
	}
	defer rows.Close()

	var table []models.LumenRow
	for rows.Next() {
		var row models.LumenRow
		if err := rows.Scan(&row.Product, &row.Watt, &row.CCT, &row.CRI, &row.Lumen, &row.Text); err != nil {
			return nil, fmt.Errorf("failed to scan lumen row: %w", err)
		}
		table = append(table, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lumen rows: %w", err)
	}
	return table, nil
}

// SaveProduct upserts a product and replaces its attribute blobs
func (r *CatalogRepository) SaveProduct(ctx context.Context, src models.ProductSource, position int) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (code, name, position) VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position
	`, src.Code, src.Name, position)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_attributes WHERE product_code = $1`, src.Code); err != nil {
		return fmt.Errorf("failed to clear product attributes: %w", err)
	}
	for attr, blob := range src.Attributes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_attributes (product_code, attribute, raw_values) VALUES ($1, $2, $3)`,
			src.Code, string(attr), blob)
		if err != nil {
			return fmt.Errorf("failed to insert attribute %s: %w", attr, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	log.Printf("💾 Saved product %s", src.Code)
	return nil
}

// ReplaceLumenRows replaces a product's lumen rows, keeping the given order
func (r *CatalogRepository) ReplaceLumenRows(ctx context.Context, product string, table []models.LumenRow) error {
	if err := lumen.ValidateRows(table); err != nil {
		return fmt.Errorf("invalid lumen rows for %s: %w", product, err)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lumen_rows WHERE product_code = $1`, product); err != nil {
		return fmt.Errorf("failed to clear lumen rows: %w", err)
	}
	for i, row := range table {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lumen_rows (position, product_code, watt, cct, cri, lumen, raw_text)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
		`, i, product, row.Watt, row.CCT, row.CRI, row.Lumen, row.Text)
		if err != nil {
			return fmt.Errorf("failed to insert lumen row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lumen rows: %w", err)
	}
	log.Printf("💾 Saved %d lumen rows for %s", len(table), product)
	return nil
}

// SeedFrom copies every product and its lumen rows from another repository
func (r *CatalogRepository) SeedFrom(ctx context.Context, src CatalogRepositoryInterface) (int, error) {
	products, err := src.ListProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list source products: %w", err)
	}

	for i, summary := range products {
		product, err := src.GetProduct(ctx, summary.Code)
		if err != nil {
			return i, err
		}
		if err := r.SaveProduct(ctx, *product, i); err != nil {
			return i, err
		}

		table, err := src.GetLumenRows(ctx, summary.Code)
		if err != nil {
			return i, err
		}
		if err := r.ReplaceLumenRows(ctx, summary.Code, table); err != nil {
			return i, err
		}
	}

	log.Printf("✓ Seeded %d products", len(products))
	return len(products), nil
}
