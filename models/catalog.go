package models

// ProductSource holds the raw, unfiltered catalog data for one product.
// Each attribute value is a single comma-separated blob as authored in the source data.
type ProductSource struct {
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	Attributes map[AttributeID]string `json:"attributes"`
}

// CatalogAttribute is the cleaned, deduplicated list of values for one attribute
type CatalogAttribute struct {
	ID          AttributeID `json:"id"`
	Label       string      `json:"label"`
	Values      []string    `json:"values"`
	Interactive bool        `json:"interactive"` // False when only one value survives filtering
}

// ProductSummary is the listing representation of a product
type ProductSummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ProductDetail describes a product catalog as presented to callers
type ProductDetail struct {
	Code       string             `json:"code"`
	Name       string             `json:"name"`
	Attributes []CatalogAttribute `json:"attributes"`
	Dropped    []AttributeID      `json:"dropped"` // Attributes with no valid values
}
