package lumen

import (
	"strings"

	"luminaire-configurator/models"
)

// Query is the raw selection a lumen value is resolved for
type Query struct {
	Product string
	Watt    string
	CCT     string
	CRI     string
}

// Result is the outcome of a lumen lookup. Available is false when no row matched;
// that is a valid outcome, not an error.
type Result struct {
	Lumen     string
	Available bool
	Row       int // Index of the matching row, -1 when unavailable
}

// Unavailable is the result for selections with no compatible row
var Unavailable = Result{Row: -1}

// Matches reports whether the row applies to the query.
// Values are compared verbatim; a row without CRI applies to any CRI.
func (q Query) Matches(row models.LumenRow) bool {
	if row.Product != q.Product || row.Watt != q.Watt || row.CCT != q.CCT {
		return false
	}
	return row.CRI == "" || row.CRI == q.CRI
}

// Resolve scans rows in order and returns the first match.
// A CRI-agnostic row placed earlier shadows a more specific later row.
func Resolve(rows []models.LumenRow, q Query) Result {
	for i, row := range rows {
		if !q.Matches(row) {
			continue
		}
		return Result{Lumen: rowValue(row), Available: true, Row: i}
	}
	return Unavailable
}

// rowValue returns the explicit lumen value, falling back to the raw trailing text
func rowValue(row models.LumenRow) string {
	if row.Lumen != "" {
		return row.Lumen
	}
	return strings.TrimSpace(row.Text)
}
