package lumen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"luminaire-configurator/models"
)

// TableConfig represents the lumen table file structure
type TableConfig struct {
	Unit string            `json:"unit"`
	Rows []models.LumenRow `json:"rows"`
}

// Table is an ordered lumen compatibility table. Row order is significant.
type Table struct {
	Unit string
	Rows []models.LumenRow
}

// NewTable validates rows and wraps them in a Table, keeping their order
func NewTable(rows []models.LumenRow) (*Table, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}
	return &Table{Unit: "lm", Rows: rows}, nil
}

// LoadTable reads a JSON lumen table from disk
func LoadTable(path string) (*Table, error) {
	// Resolve table path
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lumen table: %w", err)
	}

	return ParseTable(data)
}

// ParseTable decodes a JSON lumen table
func ParseTable(data []byte) (*Table, error) {
	var config TableConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse lumen table: %w", err)
	}

	if err := ValidateRows(config.Rows); err != nil {
		return nil, fmt.Errorf("invalid lumen table: %w", err)
	}

	unit := config.Unit
	if unit == "" {
		unit = "lm"
	}
	return &Table{Unit: unit, Rows: config.Rows}, nil
}

// ValidateRows checks that every row can take part in a lookup
func ValidateRows(rows []models.LumenRow) error {
	for i, row := range rows {
		if row.Product == "" {
			return fmt.Errorf("row %d: product is required", i)
		}
		if row.Watt == "" || row.CCT == "" {
			return fmt.Errorf("row %d: watt and cct are required", i)
		}
		if row.Lumen == "" && row.Text == "" {
			return fmt.Errorf("row %d: lumen or text is required", i)
		}
	}
	return nil
}

// ForProduct returns the rows for one product, in table order
func (t *Table) ForProduct(product string) []models.LumenRow {
	if t == nil {
		return nil
	}
	var rows []models.LumenRow
	for _, row := range t.Rows {
		if row.Product == product {
			rows = append(rows, row)
		}
	}
	return rows
}

// Resolve looks up the lumen value for a query
func (t *Table) Resolve(q Query) Result {
	if t == nil {
		return Unavailable
	}
	return Resolve(t.Rows, q)
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
