package configurator

import (
	"fmt"

	"luminaire-configurator/lumen"
	"luminaire-configurator/models"
	"luminaire-configurator/utils"
)

// SelectionState is the current configuration of one product
type SelectionState struct {
	ProductCode string
	Selected    map[models.AttributeID]string // Raw selected value per retained attribute
	Defaults    map[models.AttributeID]string // Normalized first catalog value, captured on load/reset

	// Derived from the lumen table; LumenAvailable is false when no row matched
	Lumen          string
	LumenAvailable bool

	RAL RALField
}

// clone returns a deep copy so callers cannot mutate the session through a snapshot
func (s SelectionState) clone() SelectionState {
	out := s
	out.Selected = make(map[models.AttributeID]string, len(s.Selected))
	for k, v := range s.Selected {
		out.Selected[k] = v
	}
	out.Defaults = make(map[models.AttributeID]string, len(s.Defaults))
	for k, v := range s.Defaults {
		out.Defaults[k] = v
	}
	return out
}

// Session owns the selection state of one configurator instance.
// It is not safe for concurrent use; every command runs to completion.
type Session struct {
	catalog *Catalog
	rows    []models.LumenRow
	state   SelectionState
	code    OrderCode
}

// NewSession creates a session over a catalog and an ordered lumen table
// and selects every attribute's first catalog value
func NewSession(catalog *Catalog, rows []models.LumenRow) *Session {
	s := &Session{rows: rows}
	s.Load(catalog)
	return s
}

// Load replaces the catalog. A reload is a fresh initialization: defaults are recaptured.
func (s *Session) Load(catalog *Catalog) {
	if catalog == nil {
		catalog = BuildCatalog(models.ProductSource{})
	}
	s.catalog = catalog
	s.Reset()
}

// Reset restores every attribute to its first catalog value and recaptures the defaults
func (s *Session) Reset() {
	state := SelectionState{
		ProductCode: s.catalog.Product,
		Selected:    make(map[models.AttributeID]string),
		Defaults:    make(map[models.AttributeID]string),
	}
	state.RAL.close()

	for _, attr := range s.catalog.Layout() {
		first := s.catalog.First(attr)
		state.Selected[attr] = first
		state.Defaults[attr] = utils.NormalizeValue(attr, first)
	}

	if utils.IsRALOption(state.Selected[models.AttributeFinish]) {
		state.RAL.open()
		state.Selected[models.AttributeFinish] = utils.RALPrefix
	}

	s.state = state
	s.resolveLumen()
	s.compose()
}

// Select sets an attribute to one of its catalog values.
// Selecting the current value is a no-op. Unknown attributes, the derived lumen
// attribute and values outside the catalog are rejected and leave the state unchanged.
func (s *Session) Select(attr models.AttributeID, raw string) error {
	if !attr.Selectable() {
		if attr == models.AttributeLumen {
			return fmt.Errorf("select %s: %w", attr, ErrReadOnlyAttribute)
		}
		return fmt.Errorf("select %s: %w", attr, ErrUnknownAttribute)
	}
	if _, ok := s.catalog.Attribute(attr); !ok {
		return fmt.Errorf("select %s: %w", attr, ErrUnknownAttribute)
	}

	value := utils.CleanCatalogValue(raw)
	if !s.catalog.Contains(attr, value) {
		return fmt.Errorf("select %s=%q: %w", attr, raw, ErrValueNotInCatalog)
	}

	if attr == models.AttributeFinish {
		s.selectFinish(value)
		return nil
	}

	if s.state.Selected[attr] == value {
		return nil
	}
	s.state.Selected[attr] = value

	switch attr {
	case models.AttributeWatt, models.AttributeCCT, models.AttributeCRI:
		s.resolveLumen()
	}
	s.compose()
	return nil
}

func (s *Session) selectFinish(value string) {
	if utils.IsRALOption(value) {
		if s.state.RAL.Active() {
			return
		}
		s.state.RAL.open()
		s.state.Selected[models.AttributeFinish] = utils.RALPrefix
		s.compose()
		return
	}

	if !s.state.RAL.Active() && s.state.Selected[models.AttributeFinish] == value {
		return
	}
	s.state.RAL.close()
	s.state.Selected[models.AttributeFinish] = value
	s.compose()
}

// FocusRAL clears the RAL placeholder the first time the field is focused
func (s *Session) FocusRAL() error {
	if !s.state.RAL.Active() {
		return ErrRALInactive
	}
	s.state.RAL.focus()
	return nil
}

// SetRALText records the RAL field text. The finish becomes "RAL" followed by the
// entered digits, or the bare "RAL" sentinel while the field is empty.
func (s *Session) SetRALText(text string) error {
	if !s.state.RAL.Active() {
		return ErrRALInactive
	}
	s.state.Selected[models.AttributeFinish] = s.state.RAL.edit(text)
	s.compose()
	return nil
}

// resolveLumen recomputes the derived lumen value from the raw selection
func (s *Session) resolveLumen() {
	result := lumen.Resolve(s.rows, lumen.Query{
		Product: s.state.ProductCode,
		Watt:    s.state.Selected[models.AttributeWatt],
		CCT:     s.state.Selected[models.AttributeCCT],
		CRI:     s.state.Selected[models.AttributeCRI],
	})
	s.state.Lumen = result.Lumen
	s.state.LumenAvailable = result.Available
}

// displayValue returns the token shown for an attribute
func (s *Session) displayValue(attr models.AttributeID) string {
	value := s.state.Selected[attr]
	if attr == models.AttributeFinish && s.state.RAL.Active() {
		return value
	}
	return utils.NormalizeValue(attr, value)
}

// compose rebuilds the order code; both serializations render from it
func (s *Session) compose() {
	layout := s.catalog.Layout()
	values := make(map[models.AttributeID]string, len(layout))
	for _, attr := range layout {
		values[attr] = s.displayValue(attr)
	}
	s.code = ComposeOrderCode(s.state.ProductCode, layout, values, s.state.Defaults)
}

// Catalog returns the session's catalog
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns a snapshot of the selection state
func (s *Session) State() SelectionState {
	return s.state.clone()
}

// Selected returns the raw selected value of an attribute
func (s *Session) Selected(attr models.AttributeID) (string, bool) {
	v, ok := s.state.Selected[attr]
	return v, ok
}

// RAL returns the RAL field state
func (s *Session) RAL() RALField {
	return s.state.RAL
}

// OrderCode returns the current order code
func (s *Session) OrderCode() OrderCode {
	c := s.code
	c.Tokens = append([]Token(nil), s.code.Tokens...)
	return c
}

// DecoratedCode returns the HTML-decorated order code
func (s *Session) DecoratedCode() string {
	return s.code.Decorated()
}

// PlainCode returns the undecorated, filename-safe order code
func (s *Session) PlainCode() string {
	return s.code.Plain()
}

// Lumen returns the derived lumen value; ok is false when the selection has no table entry
func (s *Session) Lumen() (string, bool) {
	return s.state.Lumen, s.state.LumenAvailable
}
