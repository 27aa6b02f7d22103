package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"luminaire-configurator/models"
)

const (
	// MissingToken is emitted for attributes with no usable value
	MissingToken = "XX"
	// RALPrefix marks custom RAL finish codes
	RALPrefix = "RAL"
)

// NormalizeValue converts a raw catalog value into its compact order-code token.
// It is total: empty input yields MissingToken, unknown attributes pass through lowercased.
//
//	cct        "4000K"    -> "40"
//	beam       "36°"      -> "36"
//	ip-rating  "IP65"     -> "65"
//	finish     "White"    -> "WH", "RAL 1015" -> "RAL1015"
//	watt, cri  "12W"      -> "12w"
//
// Full-width and other compatibility characters are folded here, after the
// degree signs are gone, so "36º" stays "36" and "１２W" becomes "12w".
func NormalizeValue(attr models.AttributeID, raw string) string {
	value := strings.TrimSpace(raw)
	if attr == models.AttributeBeam {
		value = degreeSigns.Replace(value)
	}
	value = strings.TrimSpace(norm.NFKC.String(value))
	if value == "" {
		return MissingToken
	}

	switch attr {
	case models.AttributeCCT:
		return normalizeCCT(value)
	case models.AttributeBeam:
		return normalizeBeam(value)
	case models.AttributeIPRating:
		return normalizeIPRating(value)
	case models.AttributeFinish:
		return normalizeFinish(value)
	default:
		return strings.ToLower(value)
	}
}

// normalizeCCT strips the kelvin marker and keeps the first two characters
func normalizeCCT(value string) string {
	lower := strings.ToLower(value)
	lower = strings.TrimSpace(strings.TrimSuffix(lower, "k"))

	chars := []rune(lower)
	if len(chars) > 2 {
		chars = chars[:2]
	}
	if len(chars) == 0 {
		return MissingToken
	}
	return string(chars)
}

// degreeSigns covers the degree sign and the ordinal indicator often typed in its place
var degreeSigns = strings.NewReplacer("°", "", "º", "")

func normalizeBeam(value string) string {
	lower := strings.ToLower(degreeSigns.Replace(value))
	lower = strings.TrimSpace(lower)
	if lower == "" {
		return MissingToken
	}
	return lower
}

func normalizeIPRating(value string) string {
	lower := strings.ToLower(value)
	lower = strings.TrimSpace(strings.TrimPrefix(lower, "ip"))
	if lower == "" {
		return MissingToken
	}
	return lower
}

func normalizeFinish(value string) string {
	if strings.HasPrefix(strings.ToLower(value), "ral") {
		return RALPrefix + DigitsOnly(value[len(RALPrefix):])
	}
	return MapFinishToCode(value)
}

// DigitsOnly drops every rune that is not an ASCII digit
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsRALOption reports whether a catalog finish value is the custom RAL entry
// (the bare "RAL" option, as opposed to a fixed code like "RAL 9005")
func IsRALOption(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), RALPrefix)
}
