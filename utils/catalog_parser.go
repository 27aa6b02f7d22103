package utils

import (
	"strings"
)

// placeholderValues are source-data tokens that mean "no value" for an attribute
var placeholderValues = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"none": true,
	"0":    true,
	"--":   true,
}

// IsPlaceholder reports whether a trimmed catalog value is a "no value" marker.
// Comparison is case-insensitive.
func IsPlaceholder(value string) bool {
	return placeholderValues[strings.ToLower(strings.TrimSpace(value))]
}

// CleanCatalogValue trims surrounding whitespace (non-breaking spaces included).
// The raw value is otherwise kept as-is: lumen lookups compare it exactly.
func CleanCatalogValue(value string) string {
	return strings.TrimSpace(value)
}

// ParseCatalogValues parses a comma-separated attribute blob into its valid values.
// Input format: "12W, 12W, 24W, n/a, 24W"
// Returns: ["12W", "24W"]
// Placeholders are dropped, duplicates removed, first-seen order preserved.
// An empty result means the attribute is absent for the product.
func ParseCatalogValues(blob string) []string {
	parts := strings.Split(blob, ",")

	// Track seen values to avoid duplicates
	seen := make(map[string]bool)
	values := make([]string, 0, len(parts))

	for _, part := range parts {
		value := CleanCatalogValue(part)
		if IsPlaceholder(value) {
			continue
		}
		if seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	return values
}
