package models

// OrderCodePart is one labeled segment of a parsed order code
type OrderCodePart struct {
	Attribute AttributeID `json:"attribute"`
	Label     string      `json:"label"`
	Value     string      `json:"value"`
}

// ParsedOrderCode is a plain order code split back into its segments
type ParsedOrderCode struct {
	Product string          `json:"product"`
	Parts   []OrderCodePart `json:"parts"`
}
