package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePart() PartRecord {
	return PartRecord{
		ID:          "1",
		Department:  "Cashier",
		ItemCode:    "ConnecticutF",
		PartName:    "Ryzen 5 5600X",
		Description: "Desktop Processor",
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "zero filter matches", filter: Filter{}, want: true},
		{name: "all sentinel matches", filter: Filter{Department: AllDepartments}, want: true},
		{name: "exact department", filter: Filter{Department: "Cashier"}, want: true},
		{name: "department is case sensitive", filter: Filter{Department: "cashier"}, want: false},
		{name: "other department", filter: Filter{Department: "Management"}, want: false},
		{name: "search part name case-insensitive", filter: Filter{SearchTerm: "ryzen"}, want: true},
		{name: "search item code", filter: Filter{SearchTerm: "NECTIC"}, want: true},
		{name: "search description", filter: Filter{SearchTerm: "desktop"}, want: true},
		{name: "search ignores supplier", filter: Filter{SearchTerm: "PCWorld"}, want: false},
		{name: "search miss", filter: Filter{SearchTerm: "gpu"}, want: false},
		{name: "both predicates pass", filter: Filter{Department: "Cashier", SearchTerm: "5600"}, want: true},
		{name: "department fails search passes", filter: Filter{Department: "IT Support", SearchTerm: "5600"}, want: false},
		{name: "department passes search fails", filter: Filter{Department: "Cashier", SearchTerm: "ssd"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(samplePart()))
		})
	}
}

func TestFilterSearchFoldsUnicode(t *testing.T) {
	p := samplePart()
	p.Description = "Écran tactile"
	assert.True(t, Filter{SearchTerm: "éCRAN"}.Matches(p))
}

func TestFilterApplyKeepsOrder(t *testing.T) {
	a := samplePart()
	b := samplePart()
	b.ID, b.Department = "2", "Management"
	c := samplePart()
	c.ID = "3"
	parts := []PartRecord{a, b, c}

	got := Filter{Department: "Cashier"}.Apply(parts)
	assert.Equal(t, []PartRecord{a, c}, got)
	assert.Len(t, parts, 3, "input must not be modified")
}
