// Query filter evaluated by every PartsStore.
package types

import (
	"strings"

	"golang.org/x/text/cases"
)

// AllDepartments is the department selection that matches every record.
const AllDepartments = "all"

// Filter selects records for Query. The zero Filter matches everything.
type Filter struct {
	// Department matches exactly; empty or AllDepartments matches every record.
	Department string
	// SearchTerm is a case-insensitive substring looked up in PartName,
	// ItemCode and Description; empty matches every record.
	SearchTerm string
}

// MatchesDepartment reports whether p passes the department predicate.
func (f Filter) MatchesDepartment(p PartRecord) bool {
	if f.Department == "" || f.Department == AllDepartments {
		return true
	}
	return p.Department == f.Department
}

// MatchesSearch reports whether p passes the search predicate.
func (f Filter) MatchesSearch(p PartRecord) bool {
	if f.SearchTerm == "" {
		return true
	}
	// cases.Caser is stateful; use a fresh one per evaluation.
	fold := cases.Fold()
	term := fold.String(f.SearchTerm)
	for _, field := range []string{p.PartName, p.ItemCode, p.Description} {
		if strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}

// Matches reports whether p passes both predicates.
func (f Filter) Matches(p PartRecord) bool {
	return f.MatchesDepartment(p) && f.MatchesSearch(p)
}

// Apply returns the records of parts that match f, preserving order.
// The input slice is not modified.
func (f Filter) Apply(parts []PartRecord) []PartRecord {
	out := make([]PartRecord, 0, len(parts))
	for _, p := range parts {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
