// Package storetest holds the behavioural contract every PartsStore must
// satisfy. Backend test files call Run with a constructor.
package storetest

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Factory builds a fresh store preloaded with seed. Implementations register
// any cleanup with t.Cleanup.
type Factory func(t *testing.T, seed []types.PartRecord) types.PartsStore

// Run executes the full contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("list preserves seed order", func(t *testing.T) { testListOrder(t, newStore) })
	t.Run("add appends with zero tickets", func(t *testing.T) { testAdd(t, newStore) })
	t.Run("add allocates distinct ids", func(t *testing.T) { testAddDistinctIDs(t, newStore) })
	t.Run("add coerces unit price", func(t *testing.T) { testAddCoercesPrice(t, newStore) })
	t.Run("add rejects missing required fields", func(t *testing.T) { testAddValidation(t, newStore) })
	t.Run("add rejects the zero date", func(t *testing.T) { testAddZeroDate(t, newStore) })
	t.Run("seed dates keep the calendar day", func(t *testing.T) { testSeedDates(t, newStore) })
	t.Run("update replaces editable fields", func(t *testing.T) { testUpdate(t, newStore) })
	t.Run("update unknown id", func(t *testing.T) { testUpdateNotFound(t, newStore) })
	t.Run("update rejects invalid draft", func(t *testing.T) { testUpdateValidation(t, newStore) })
	t.Run("get", func(t *testing.T) { testGet(t, newStore) })
	t.Run("remove is permanent", func(t *testing.T) { testRemove(t, newStore) })
	t.Run("remove absent id is a no-op", func(t *testing.T) { testRemoveAbsent(t, newStore) })
	t.Run("query", func(t *testing.T) { testQuery(t, newStore) })
	t.Run("returned records are copies", func(t *testing.T) { testCopies(t, newStore) })
}

// Seed returns the single-record store used by the scenarios.
func Seed() []types.PartRecord {
	return types.SeedParts()
}

func draft(dept, code, name, price string) types.FormDraft {
	return types.FormDraft{Department: dept, ItemCode: code, PartName: name, UnitPrice: price}
}

func mustList(t *testing.T, s types.PartsStore) []types.PartRecord {
	t.Helper()
	parts, err := s.List()
	require.NoError(t, err)
	return parts
}

func ids(parts []types.PartRecord) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.ID
	}
	return out
}

func testListOrder(t *testing.T, newStore Factory) {
	seed := []types.PartRecord{
		{ID: "b", Department: "Cashier", ItemCode: "X", PartName: "B"},
		{ID: "a", Department: "Cashier", ItemCode: "X", PartName: "A"},
		{ID: "c", Department: "Cashier", ItemCode: "X", PartName: "C"},
	}
	s := newStore(t, seed)
	assert.Equal(t, []string{"b", "a", "c"}, ids(mustList(t, s)))

	added, err := s.Add(draft("Cashier", "X", "D", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", added.ID}, ids(mustList(t, s)))
}

func testAdd(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())

	got, err := s.Add(types.FormDraft{
		Department:   "IT Support",
		ItemCode:     "C1",
		PartName:     "SSD",
		Description:  "NVMe drive",
		UnitPrice:    "2000",
		DateAcquired: "2024-05-02",
		SerialNumber: "SN-9",
		Supplier:     "PCWorld",
	})
	require.NoError(t, err)

	parts := mustList(t, s)
	require.Len(t, parts, 2)
	assert.Equal(t, got, parts[1])
	assert.Equal(t, 0, got.TicketCount)
	assert.Equal(t, 2000.0, got.UnitPrice)
	assert.Equal(t, "IT Support", got.Department)
	assert.Equal(t, "2024-05-02", got.DateAcquiredString())
	assert.Equal(t, "SN-9", got.SerialNumber)
	assert.NotEqual(t, "1", got.ID)
	assert.NotEmpty(t, got.ID)
}

func testAddDistinctIDs(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	for i := 0; i < 20; i++ {
		_, err := s.Add(draft("Cashier", "X", fmt.Sprintf("part %d", i), "1"))
		require.NoError(t, err)
	}
	parts := mustList(t, s)
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 21)
}

func testAddCoercesPrice(t *testing.T, newStore Factory) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: "19.99", want: 19.99},
		{raw: "-5", want: 0},
	}
	s := newStore(t, nil)
	for _, tt := range tests {
		got, err := s.Add(draft("Cashier", "X", "P", tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.UnitPrice, "raw %q", tt.raw)
	}
}

func testAddValidation(t *testing.T, newStore Factory) {
	tests := []struct {
		name  string
		draft types.FormDraft
	}{
		{name: "empty department", draft: draft("", "X", "Y", "")},
		{name: "empty item code", draft: draft("Cashier", "", "Y", "")},
		{name: "empty part name", draft: draft("Cashier", "X", "", "")},
		{name: "empty draft", draft: types.FormDraft{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, Seed())
			before := mustList(t, s)

			_, err := s.Add(tt.draft)
			assert.ErrorIs(t, err, types.ErrValidation)
			var ve *types.ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Equal(t, before, mustList(t, s), "store must be unchanged")
		})
	}
}

func testAddZeroDate(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())

	d := draft("IT Support", "C1", "SSD", "10")
	d.DateAcquired = "0001-01-01"
	_, err := s.Add(d)
	require.ErrorIs(t, err, types.ErrValidation)

	var ve *types.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{types.FieldDateAcquired}, ve.Fields())
	assert.Len(t, mustList(t, s), 1)
}

func testSeedDates(t *testing.T, newStore Factory) {
	late := time.Date(2023, time.January, 15, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	s := newStore(t, []types.PartRecord{
		{ID: "1", Department: "Cashier", ItemCode: "X", PartName: "A", DateAcquired: late},
	})

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), got.DateAcquired)
	assert.Equal(t, "2023-01-15", types.DraftFromRecord(got).DateAcquired)
}

func testUpdate(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())

	got, err := s.Update("1", types.FormDraft{
		Department:  "Management",
		ItemCode:    "C1",
		PartName:    "Ryzen 5 5600X",
		Description: "Desktop Processor",
		UnitPrice:   "7000",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "Management", got.Department)
	assert.Equal(t, 7000.0, got.UnitPrice)
	assert.Equal(t, 1, got.TicketCount)
	assert.False(t, got.HasDateAcquired(), "fields are replaced wholesale")
	assert.Equal(t, "", got.Supplier)

	stored, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)
	assert.Len(t, mustList(t, s), 1)
}

func testUpdateNotFound(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	before := mustList(t, s)

	_, err := s.Update("missing", draft("Cashier", "X", "Y", "1"))
	assert.ErrorIs(t, err, types.ErrNotFound)

	// An invalid draft against a missing id still reports not found.
	_, err = s.Update("missing", types.FormDraft{})
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, before, mustList(t, s))
}

func testUpdateValidation(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	before := mustList(t, s)

	_, err := s.Update("1", draft("Management", "", "Y", "1"))
	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Equal(t, before, mustList(t, s))
}

func testGet(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, Seed()[0], got)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func testRemove(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	added, err := s.Add(draft("IT Support", "C1", "SSD", "2000"))
	require.NoError(t, err)

	require.NoError(t, s.Remove("1"))

	assert.Equal(t, []string{added.ID}, ids(mustList(t, s)))
	hits, err := s.Query(types.Filter{SearchTerm: "ryzen"})
	require.NoError(t, err)
	assert.Empty(t, hits)
	_, err = s.Get("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func testRemoveAbsent(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	before := mustList(t, s)

	assert.NoError(t, s.Remove("missing"))
	assert.Equal(t, before, mustList(t, s))
}

func testQuery(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())
	ssd, err := s.Add(types.FormDraft{Department: "IT Support", ItemCode: "C1", PartName: "SSD", Description: "Storage drive"})
	require.NoError(t, err)
	gpu, err := s.Add(types.FormDraft{Department: "Cashier", ItemCode: "NewYorkH", PartName: "RTX 4070", Description: "Graphics card"})
	require.NoError(t, err)

	all := mustList(t, s)

	tests := []struct {
		name   string
		filter types.Filter
		want   []string
	}{
		{name: "zero filter", filter: types.Filter{}, want: ids(all)},
		{name: "all sentinel", filter: types.Filter{Department: types.AllDepartments}, want: ids(all)},
		{name: "department", filter: types.Filter{Department: "Cashier"}, want: []string{"1", gpu.ID}},
		{name: "unknown department", filter: types.Filter{Department: "Nowhere"}, want: []string{}},
		{name: "search part name", filter: types.Filter{SearchTerm: "ryzen"}, want: []string{"1"}},
		{name: "search item code", filter: types.Filter{SearchTerm: "newyork"}, want: []string{gpu.ID}},
		{name: "search description", filter: types.Filter{SearchTerm: "DRIVE"}, want: []string{ssd.ID}},
		{name: "and of both", filter: types.Filter{Department: "Cashier", SearchTerm: "card"}, want: []string{gpu.ID}},
		{name: "and excludes", filter: types.Filter{Department: "IT Support", SearchTerm: "ryzen"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Query(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	assert.Equal(t, all, mustList(t, s), "query must not mutate the store")
}

func testCopies(t *testing.T, newStore Factory) {
	s := newStore(t, Seed())

	parts := mustList(t, s)
	parts[0].PartName = "changed"
	hits, err := s.Query(types.Filter{})
	require.NoError(t, err)
	hits[0].Department = "changed"

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Ryzen 5 5600X", got.PartName)
	assert.Equal(t, "Cashier", got.Department)
}
