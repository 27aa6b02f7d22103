package configurator

import (
	"luminaire-configurator/models"
	"luminaire-configurator/utils"
)

// Catalog is the filtered attribute catalog of one product
type Catalog struct {
	Product string
	Name    string

	attributes map[models.AttributeID]models.CatalogAttribute
	layout     []models.AttributeID
	dropped    []models.AttributeID
}

// BuildCatalog parses every raw attribute blob of a product.
// Attributes whose blob yields no valid value are reported by Dropped and
// never appear in a session or order code. The lumen attribute is derived
// and is ignored if present in the source.
func BuildCatalog(src models.ProductSource) *Catalog {
	c := &Catalog{
		Product:    src.Code,
		Name:       src.Name,
		attributes: make(map[models.AttributeID]models.CatalogAttribute),
	}

	for _, attr := range models.CodeOrder {
		values := utils.ParseCatalogValues(src.Attributes[attr])
		if len(values) == 0 {
			c.dropped = append(c.dropped, attr)
			continue
		}
		c.attributes[attr] = models.CatalogAttribute{
			ID:          attr,
			Label:       attr.Label(),
			Values:      values,
			Interactive: len(values) > 1,
		}
		c.layout = append(c.layout, attr)
	}

	return c
}

// Attribute returns the catalog entry for an attribute
func (c *Catalog) Attribute(attr models.AttributeID) (models.CatalogAttribute, bool) {
	a, ok := c.attributes[attr]
	return a, ok
}

// Attributes returns the retained attributes in code order
func (c *Catalog) Attributes() []models.CatalogAttribute {
	out := make([]models.CatalogAttribute, 0, len(c.layout))
	for _, attr := range c.layout {
		out = append(out, c.attributes[attr])
	}
	return out
}

// Layout lists the retained attributes in code order
func (c *Catalog) Layout() []models.AttributeID {
	return append([]models.AttributeID(nil), c.layout...)
}

// Dropped lists the attributes removed because no valid value remained
func (c *Catalog) Dropped() []models.AttributeID {
	return append([]models.AttributeID(nil), c.dropped...)
}

// Contains reports whether value is one of the attribute's catalog values
func (c *Catalog) Contains(attr models.AttributeID, value string) bool {
	a, ok := c.attributes[attr]
	if !ok {
		return false
	}
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}

// First returns the attribute's first catalog value, which is its default
func (c *Catalog) First(attr models.AttributeID) string {
	a, ok := c.attributes[attr]
	if !ok || len(a.Values) == 0 {
		return ""
	}
	return a.Values[0]
}

// Detail returns the listing representation of the catalog
func (c *Catalog) Detail() models.ProductDetail {
	dropped := c.Dropped()
	if dropped == nil {
		dropped = []models.AttributeID{}
	}
	return models.ProductDetail{
		Code:       c.Product,
		Name:       c.Name,
		Attributes: c.Attributes(),
		Dropped:    dropped,
	}
}
