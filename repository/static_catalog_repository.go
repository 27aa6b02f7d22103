package repository

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"luminaire-configurator/lumen"
	"luminaire-configurator/models"
)

//go:embed data/catalog.toml
var embeddedCatalog []byte

// catalogFile represents the TOML catalog structure
type catalogFile struct {
	Products []productEntry   `toml:"products"`
	Lumen    []models.LumenRow `toml:"lumen"`
}

type productEntry struct {
	Code       string            `toml:"code"`
	Name       string            `toml:"name"`
	Attributes map[string]string `toml:"attributes"`
}

// StaticCatalogRepository serves product source data decoded from a TOML document
type StaticCatalogRepository struct {
	products []models.ProductSource
	index    map[string]int
	lumen    []models.LumenRow
}

// Ensure StaticCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*StaticCatalogRepository)(nil)

// NewEmbeddedCatalogRepository loads the catalog compiled into the binary
func NewEmbeddedCatalogRepository() (*StaticCatalogRepository, error) {
	repo, err := ParseCatalogTOML(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
	}
	log.Printf("✓ Loaded embedded catalog: %d products, %d lumen rows", len(repo.products), len(repo.lumen))
	return repo, nil
}

// NewFileCatalogRepository loads a TOML catalog from disk
func NewFileCatalogRepository(path string) (*StaticCatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	repo, err := ParseCatalogTOML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}
	log.Printf("✓ Loaded catalog from %s: %d products, %d lumen rows", path, len(repo.products), len(repo.lumen))
	return repo, nil
}

// ParseCatalogTOML decodes a TOML catalog document.
// Attribute keys are matched loosely ("IP Rating", "ip_rating"); unknown keys are skipped.
func ParseCatalogTOML(data []byte) (*StaticCatalogRepository, error) {
	var file catalogFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := lumen.ValidateRows(file.Lumen); err != nil {
		return nil, fmt.Errorf("invalid catalog lumen rows: %w", err)
	}

	repo := &StaticCatalogRepository{
		index: make(map[string]int),
		lumen: file.Lumen,
	}

	for _, entry := range file.Products {
		code := strings.TrimSpace(entry.Code)
		if code == "" {
			return nil, fmt.Errorf("product %q has no code", entry.Name)
		}
		if _, exists := repo.index[code]; exists {
			return nil, fmt.Errorf("duplicate product code %s", code)
		}

		src := models.ProductSource{
			Code:       code,
			Name:       entry.Name,
			Attributes: make(map[models.AttributeID]string),
		}
		for key, blob := range entry.Attributes {
			attr, ok := models.ParseAttributeID(key)
			if !ok {
				log.Printf("⚠️  Warning: product %s has unknown attribute %q, skipping", code, key)
				continue
			}
			src.Attributes[attr] = blob
		}

		repo.index[code] = len(repo.products)
		repo.products = append(repo.products, src)
	}

	return repo, nil
}

// ListProducts returns every product in document order
func (r *StaticCatalogRepository) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	summaries := make([]models.ProductSummary, 0, len(r.products))
	for _, p := range r.products {
		summaries = append(summaries, models.ProductSummary{Code: p.Code, Name: p.Name})
	}
	return summaries, nil
}

// GetProduct returns the raw source data of one product
func (r *StaticCatalogRepository) GetProduct(ctx context.Context, code string) (*models.ProductSource, error) {
	i, exists := r.index[strings.TrimSpace(code)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, code)
	}

	src := r.products[i]
	attrs := make(map[models.AttributeID]string, len(src.Attributes))
	for k, v := range src.Attributes {
		attrs[k] = v
	}
	src.Attributes = attrs
	return &src, nil
}

// GetLumenRows returns the lumen rows of a product in document order
func (r *StaticCatalogRepository) GetLumenRows(ctx context.Context, product string) ([]models.LumenRow, error) {
	var rows []models.LumenRow
	for _, row := range r.lumen {
		if row.Product == product {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
