package models

import "strings"

// AttributeID identifies a configurable luminaire attribute
type AttributeID string

const (
	AttributeWatt     AttributeID = "watt"
	AttributeIPRating AttributeID = "ip-rating"
	AttributeBeam     AttributeID = "beam"
	AttributeCCT      AttributeID = "cct"
	AttributeCRI      AttributeID = "cri"
	AttributeFinish   AttributeID = "finish"
	// AttributeLumen is derived from the lumen table and never selectable
	AttributeLumen AttributeID = "lumen"
)

// CodeOrder is the fixed order in which attributes appear in an order code
var CodeOrder = []AttributeID{
	AttributeWatt,
	AttributeIPRating,
	AttributeBeam,
	AttributeCCT,
	AttributeCRI,
	AttributeFinish,
}

var attributeLabels = map[AttributeID]string{
	AttributeWatt:     "Wattage",
	AttributeIPRating: "IP Rating",
	AttributeBeam:     "Beam Angle",
	AttributeCCT:      "Color Temperature",
	AttributeCRI:      "CRI",
	AttributeFinish:   "Finish",
	AttributeLumen:    "Lumen",
}

// Label returns the human-readable name used for tooltips and headings
func (a AttributeID) Label() string {
	if label, exists := attributeLabels[a]; exists {
		return label
	}
	return string(a)
}

// Selectable reports whether users may pick a value for the attribute
func (a AttributeID) Selectable() bool {
	switch a {
	case AttributeWatt, AttributeIPRating, AttributeBeam, AttributeCCT, AttributeCRI, AttributeFinish:
		return true
	}
	return false
}

// ParseAttributeID maps free text ("IP Rating", "ip_rating", "CCT") to an AttributeID
func ParseAttributeID(s string) (AttributeID, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)

	switch key {
	case "watt", "wattage", "w":
		return AttributeWatt, true
	case "ip-rating", "ip", "iprating":
		return AttributeIPRating, true
	case "beam", "beam-angle":
		return AttributeBeam, true
	case "cct", "color-temperature":
		return AttributeCCT, true
	case "cri":
		return AttributeCRI, true
	case "finish", "color", "colour":
		return AttributeFinish, true
	case "lumen", "lumens":
		return AttributeLumen, true
	}
	return "", false
}
