package models

// LumenRow is one entry of the ordered lumen compatibility table.
// Values are raw catalog strings and are compared verbatim.
type LumenRow struct {
	Product string `json:"product" toml:"product"`
	Watt    string `json:"watt" toml:"watt"`
	CCT     string `json:"cct" toml:"cct"`
	CRI     string `json:"cri,omitempty" toml:"cri"`     // Empty means the row applies to every CRI
	Lumen   string `json:"lumen,omitempty" toml:"lumen"` // Explicit lumen value
	Text    string `json:"text,omitempty" toml:"text"`   // Raw trailing text, used when Lumen is empty
}
