package configurator

import "errors"

var (
	// ErrUnknownAttribute is returned for attributes the product catalog does not carry
	ErrUnknownAttribute = errors.New("attribute not in catalog")
	// ErrReadOnlyAttribute is returned when selecting a derived attribute such as lumen
	ErrReadOnlyAttribute = errors.New("attribute is read-only")
	// ErrValueNotInCatalog is returned when the value is not one of the attribute's catalog values
	ErrValueNotInCatalog = errors.New("value not in catalog")
	// ErrRALInactive is returned for RAL field commands while the RAL finish is not selected
	ErrRALInactive = errors.New("RAL finish not selected")
)
