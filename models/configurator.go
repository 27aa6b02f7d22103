package models

// CreateSessionRequest represents the request body for starting a configurator session
type CreateSessionRequest struct {
	Product string `json:"product"`
}

// SelectRequest represents the request body for selecting an attribute value
type SelectRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// RALTextRequest represents the request body for editing the RAL field
type RALTextRequest struct {
	Text string `json:"text"`
}

// OrderCodeToken is one token of the order code
type OrderCodeToken struct {
	Attribute AttributeID `json:"attribute,omitempty"` // Empty for the product token
	Label     string      `json:"label"`
	Value     string      `json:"value"`
	IsDefault bool        `json:"isDefault"`
}

// RALFieldView describes the custom RAL finish field
type RALFieldView struct {
	State       string `json:"state"` // hidden, editing or entered
	Text        string `json:"text"`
	Display     string `json:"display"`
	Placeholder bool   `json:"placeholder"` // Display is the muted placeholder text
}

// SessionView is the full read-out of a configurator session
type SessionView struct {
	ID             string                 `json:"id"`
	Product        string                 `json:"product"`
	Name           string                 `json:"name"`
	Attributes     []CatalogAttribute     `json:"attributes"`
	Dropped        []AttributeID          `json:"dropped"`
	Selection      map[AttributeID]string `json:"selection"`
	Defaults       map[AttributeID]string `json:"defaults"`
	Lumen          *string                `json:"lumen"` // Null when no lumen row matches
	LumenAvailable bool                   `json:"lumenAvailable"`
	DecoratedCode  string                 `json:"decoratedCode"`
	PlainCode      string                 `json:"plainCode"`
	DatasheetURL   string                 `json:"datasheetUrl"`
	Tokens         []OrderCodeToken       `json:"tokens"`
	RAL            RALFieldView           `json:"ral"`
}
