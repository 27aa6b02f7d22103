package lumen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"luminaire-configurator/models"
)

const sampleTable = `{
  "unit": "lm",
  "rows": [
    {"product": "LX200", "watt": "12W", "cct": "3000K", "lumen": "1100"},
    {"product": "LX300", "watt": "20W", "cct": "4000K", "cri": "90", "text": "1650 lm"},
    {"product": "LX200", "watt": "24W", "cct": "3000K", "lumen": "2200"}
  ]
}`

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.json")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.Len() != 3 || table.Unit != "lm" {
		t.Fatalf("LoadTable() = %d rows unit %q, want 3 rows unit lm", table.Len(), table.Unit)
	}

	want := []models.LumenRow{
		{Product: "LX200", Watt: "12W", CCT: "3000K", Lumen: "1100"},
		{Product: "LX200", Watt: "24W", CCT: "3000K", Lumen: "2200"},
	}
	if diff := cmp.Diff(want, table.ForProduct("LX200")); diff != "" {
		t.Errorf("ForProduct() mismatch (-want +got):\n%s", diff)
	}

	got := table.Resolve(Query{Product: "LX300", Watt: "20W", CCT: "4000K", CRI: "90"})
	if got.Lumen != "1650 lm" {
		t.Errorf("Resolve() = %q, want text fallback", got.Lumen)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadTable() error = nil for missing file")
	}
}

func TestParseTableInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"rows": [`},
		{"missing product", `{"rows": [{"watt": "12W", "cct": "3000K", "lumen": "1"}]}`},
		{"missing cct", `{"rows": [{"product": "A", "watt": "12W", "lumen": "1"}]}`},
		{"missing value", `{"rows": [{"product": "A", "watt": "12W", "cct": "3000K"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable([]byte(tt.data)); err == nil {
				t.Error("ParseTable() error = nil, want error")
			}
		})
	}
}

func TestNewTableDefaultsUnit(t *testing.T) {
	table, err := NewTable([]models.LumenRow{{Product: "A", Watt: "1", CCT: "2", Lumen: "3"}})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	if table.Unit != "lm" {
		t.Errorf("Unit = %q, want lm", table.Unit)
	}
}
