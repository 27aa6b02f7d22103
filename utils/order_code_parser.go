package utils

import (
	"fmt"
	"regexp"
	"strings"

	"luminaire-configurator/models"
)

var datasheetExtRegex = regexp.MustCompile(`(?i)\.pdf$`)

// ParsePlainCode parses a plain order code following the pattern:
// PRODUCT.TOKEN1.TOKEN2...TOKENn(.pdf)
// Example: LX200.24w.65.36.30.80.WH
// layout lists the attributes present in the code, in code order. The product
// code may itself contain dots; the trailing len(layout) segments are the tokens.
func ParsePlainCode(code string, layout []models.AttributeID) (*models.ParsedOrderCode, error) {
	// Remove datasheet extension (case-insensitive)
	trimmed := datasheetExtRegex.ReplaceAllString(strings.TrimSpace(code), "")
	if trimmed == "" {
		return nil, fmt.Errorf("invalid order code: empty")
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) < len(layout)+1 {
		return nil, fmt.Errorf("invalid order code format: expected %d parts separated by '.', got %d parts", len(layout)+1, len(parts))
	}

	productParts := parts[:len(parts)-len(layout)]
	product := strings.Join(productParts, ".")
	if product == "" {
		return nil, fmt.Errorf("invalid order code: missing product code in %s", code)
	}

	parsed := &models.ParsedOrderCode{
		Product: product,
		Parts:   make([]models.OrderCodePart, 0, len(layout)),
	}

	tokens := parts[len(productParts):]
	for i, attr := range layout {
		token := tokens[i]
		if token == "" {
			return nil, fmt.Errorf("invalid order code: empty %s segment", attr)
		}
		parsed.Parts = append(parsed.Parts, models.OrderCodePart{
			Attribute: attr,
			Label:     attr.Label(),
			Value:     token,
		})
	}

	return parsed, nil
}
