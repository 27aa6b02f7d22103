package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB holds the database connection
var DB *sql.DB

// Configured reports whether database connection variables are present.
// Without them the configurator serves its embedded catalog.
func Configured() bool {
	return os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != ""
}

// connString builds the connection string from environment variables
func connString() (string, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr, nil
	}

	// Build connection string from individual variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode), nil
}

// InitDB initializes the database connection from environment variables
func InitDB() error {
	connStr, err := connString()
	if err != nil {
		return err
	}
	return Open(context.Background(), connStr)
}

// Open connects to the database at connStr and verifies the connection
func Open(ctx context.Context, connStr string) error {
	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = conn
	log.Printf("✓ Database connection established successfully")
	return nil
}

// EnsureSchema creates the catalog tables if they do not exist
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if _, err := DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
