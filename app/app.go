package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"luminaire-configurator/app/controller"
	"luminaire-configurator/app/router"
	"luminaire-configurator/db"
	"luminaire-configurator/lumen"
	"luminaire-configurator/repository"
	"luminaire-configurator/service"
)

// Initialize initializes the application and registers its routes on mux
func Initialize(mux *http.ServeMux) error {
	repo, err := newCatalogRepository()
	if err != nil {
		return err
	}

	// Optional lumen table file overrides the catalog's lumen rows
	var table *lumen.Table
	if path := os.Getenv("LUMEN_TABLE_FILE"); path != "" {
		table, err = lumen.LoadTable(path)
		if err != nil {
			return err
		}
		log.Printf("✓ Loaded lumen table from %s: %d rows", path, table.Len())
	}

	// Initialize configurator service
	configuratorService := service.NewConfiguratorService(repo, table, os.Getenv("DATASHEET_BASE_URL"))

	// Idle sessions expire; SESSION_TTL accepts Go durations ("45m"), "0" disables expiry
	ttl := service.DefaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err = time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
	}
	configuratorService.SetSessionTTL(ttl)
	if ttl > 0 {
		configuratorService.StartSessionSweeper(context.Background(), ttl/2)
		log.Printf("✓ Configurator sessions expire after %s idle", ttl)
	}

	// Create controllers
	controllers := &router.Controllers{
		Configurator: controller.NewConfiguratorController(configuratorService),
		Product:      controller.NewProductController(configuratorService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(mux, controllers)

	return nil
}

// newCatalogRepository picks the catalog source: Postgres when configured,
// then CATALOG_FILE, then the embedded catalog
func newCatalogRepository() (repository.CatalogRepositoryInterface, error) {
	static, err := newStaticRepository()
	if err != nil {
		return nil, err
	}

	if !db.Configured() {
		log.Printf("⚠️  Database not configured, serving static catalog")
		return static, nil
	}

	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	repo := repository.NewCatalogRepository()
	if os.Getenv("SEED_CATALOG") == "true" {
		if _, err := repo.SeedFrom(ctx, static); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return repo, nil
}

func newStaticRepository() (*repository.StaticCatalogRepository, error) {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return repository.NewFileCatalogRepository(path)
	}
	return repository.NewEmbeddedCatalogRepository()
}
