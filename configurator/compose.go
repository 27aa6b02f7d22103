package configurator

import (
	"html"
	"net/url"
	"strings"

	"luminaire-configurator/models"
	"luminaire-configurator/utils"
)

const (
	// ProductLabel is the tooltip label of the product token
	ProductLabel = "Product Code"

	// CSS classes of the decorated code. Defaults are muted, overrides accented.
	ProductClass  = "code-token code-product"
	DefaultClass  = "code-token code-default"
	OverrideClass = "code-token code-override"

	codeSeparator = "."
)

// Token is one segment of an order code
type Token struct {
	Attribute models.AttributeID // Empty for the product token
	Label     string
	Value     string
	IsDefault bool
}

// OrderCode is the product token followed by one token per retained attribute,
// in models.CodeOrder order
type OrderCode struct {
	Product Token
	Tokens  []Token
}

// ComposeOrderCode builds an order code from display values and defaults.
// values and defaults are keyed by attribute; layout gives the attributes to emit.
// An attribute with no display value is emitted as utils.MissingToken.
func ComposeOrderCode(productCode string, layout []models.AttributeID, values, defaults map[models.AttributeID]string) OrderCode {
	product := strings.TrimSpace(productCode)
	if product == "" {
		product = utils.MissingToken
	}

	code := OrderCode{
		Product: Token{Label: ProductLabel, Value: product, IsDefault: true},
		Tokens:  make([]Token, 0, len(layout)),
	}

	for _, attr := range layout {
		value := values[attr]
		if value == "" {
			value = utils.MissingToken
		}
		def, hasDefault := defaults[attr]
		code.Tokens = append(code.Tokens, Token{
			Attribute: attr,
			Label:     attr.Label(),
			Value:     value,
			IsDefault: hasDefault && value == def,
		})
	}

	return code
}

// All returns the product token followed by the attribute tokens
func (c OrderCode) All() []Token {
	return append([]Token{c.Product}, c.Tokens...)
}

// Token returns the token of one attribute
func (c OrderCode) Token(attr models.AttributeID) (Token, bool) {
	for _, t := range c.Tokens {
		if t.Attribute == attr {
			return t, true
		}
	}
	return Token{}, false
}

// Overrides lists the attributes whose value differs from the default
func (c OrderCode) Overrides() []models.AttributeID {
	var out []models.AttributeID
	for _, t := range c.Tokens {
		if !t.IsDefault {
			out = append(out, t.Attribute)
		}
	}
	return out
}

// Plain renders the undecorated code, e.g. "LX200.24w.65.36.30.80.WH"
func (c OrderCode) Plain() string {
	all := c.All()
	values := make([]string, len(all))
	for i, t := range all {
		values[i] = t.Value
	}
	return strings.Join(values, codeSeparator)
}

// Decorated renders the code as HTML spans carrying the default/override class and a tooltip
func (c OrderCode) Decorated() string {
	var b strings.Builder
	b.WriteString(decorate(c.Product, ProductClass, c.Product.Label))
	for _, t := range c.Tokens {
		b.WriteString(codeSeparator)
		class := OverrideClass
		if t.IsDefault {
			class = DefaultClass
		}
		b.WriteString(decorate(t, class, tooltip(t)))
	}
	return b.String()
}

func decorate(t Token, class, title string) string {
	return `<span class="` + class + `" title="` + html.EscapeString(title) + `">` + html.EscapeString(t.Value) + `</span>`
}

// tooltip returns "Wattage (default)" or "Finish: white (custom)"
func tooltip(t Token) string {
	label := t.Label
	if t.Attribute == models.AttributeFinish {
		label += ": " + utils.MapCodeToFinish(t.Value)
	}
	if t.IsDefault {
		return label + " (default)"
	}
	return label + " (custom)"
}

// DatasheetURL builds the datasheet location for a plain order code: <base>/<plainCode>.pdf
func DatasheetURL(base, plainCode string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(plainCode) + ".pdf"
}
