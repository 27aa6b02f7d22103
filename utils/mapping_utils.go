package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks so "Gris" and "Grís" map the same way
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// finishCodes maps lowercase finish names to their order-code tokens
var finishCodes = map[string]string{
	"white":        "WH",
	"black":        "BK",
	"grey":         "GR",
	"gray":         "GR",
	"silver":       "SV",
	"satin-nickel": "SN",
	"satin nickel": "SN",
}

// codeToFinish maps finish codes back to their readable names
var codeToFinish = map[string]string{
	"WH": "white",
	"BK": "black",
	"GR": "grey",
	"SV": "silver",
	"SN": "satin nickel",
}

// foldFinishName lowercases, trims and strips accents from a finish name
func foldFinishName(name string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(name))
	}
	return folded
}

// MapFinishToCode maps finish color names to their corresponding codes
// Input is normalized to lowercase before mapping
// Returns uppercase code
func MapFinishToCode(finish string) string {
	finishLower := foldFinishName(finish)

	if code, exists := finishCodes[finishLower]; exists {
		return code
	}

	// If not found, return uppercase version of input
	return strings.ToUpper(strings.TrimSpace(finish))
}

// MapCodeToFinish maps finish codes back to their readable names
// RAL codes are returned as "RAL 1015"
// Returns the code unchanged if it is not a known finish
func MapCodeToFinish(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	if name, exists := codeToFinish[codeUpper]; exists {
		return name
	}

	if digits := strings.TrimPrefix(codeUpper, RALPrefix); digits != codeUpper && digits != "" {
		return RALPrefix + " " + digits
	}

	return codeUpper
}
