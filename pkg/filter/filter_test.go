// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/pkg/filter"
)

// testItem is a minimal record shape covering every engine axis.
type testItem struct {
	ID       int
	Category string
	Status   string
	Name     string
	Tags     []string
	Year     float64
}

func testAdapter() filter.Adapter[testItem] {
	return filter.Adapter[testItem]{
		Category: func(item testItem) string { return item.Category },
		Status:   func(item testItem) string { return item.Status },
		Search: func(item testItem) []string {
			return append([]string{item.Name}, item.Tags...)
		},
		Sort: map[string]filter.Key[testItem]{
			"name": {Text: func(item testItem) string { return item.Name }},
			"year": {Number: func(item testItem) float64 { return item.Year }},
		},
	}
}

/*
TestApply_FilterThenSort verifies composition order: axis filters run before
the sort, so filtered-out records never appear regardless of sort.
*/
func TestApply_FilterThenSort(t *testing.T) {
	items := []testItem{
		{ID: 1, Category: "a", Name: "B"},
		{ID: 2, Category: "b", Name: "A"},
		{ID: 3, Category: "a", Name: "A"},
	}

	spec := filter.Spec{Category: "a", SortBy: "name", SortOrder: filter.OrderAsc}
	got := filter.Apply(items, spec, testAdapter())

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

/*
TestApply_Idempotent checks that applying the same spec twice changes nothing.
*/
func TestApply_Idempotent(t *testing.T) {
	items := []testItem{
		{ID: 1, Category: "logo", Status: "done", Name: "Mekong Cafe", Year: 2023},
		{ID: 2, Category: "web", Status: "done", Name: "Vientiane Tours", Year: 2024},
		{ID: 3, Category: "logo", Status: "wip", Name: "Lanexang Bank", Year: 2022},
	}

	specs := []filter.Spec{
		{},
		{Category: "logo"},
		{Query: "an"},
		{SortBy: "year", SortOrder: filter.OrderDesc},
		{Category: "logo", Query: "bank", SortBy: "name"},
	}

	for _, spec := range specs {
		once := filter.Apply(items, spec, testAdapter())
		twice := filter.Apply(once, spec, testAdapter())
		assert.Equal(t, once, twice)
	}
}

/*
TestApply_StableSort ensures equal sort keys preserve input order,
in both directions.
*/
func TestApply_StableSort(t *testing.T) {
	items := []testItem{
		{ID: 1, Year: 2024},
		{ID: 2, Year: 2024},
		{ID: 3, Year: 2023},
		{ID: 4, Year: 2024},
	}

	asc := filter.Apply(items, filter.Spec{SortBy: "year", SortOrder: filter.OrderAsc}, testAdapter())
	require.Len(t, asc, 4)
	assert.Equal(t, []int{3, 1, 2, 4}, ids(asc))

	// Direction flips the comparator, not the tie order.
	desc := filter.Apply(items, filter.Spec{SortBy: "year", SortOrder: filter.OrderDesc}, testAdapter())
	assert.Equal(t, []int{1, 2, 4, 3}, ids(desc))
}

/*
TestApply_QueryMatchesAnyField checks OR semantics across searchable fields:
a query absent from the name but present in a tag still matches.
*/
func TestApply_QueryMatchesAnyField(t *testing.T) {
	items := []testItem{
		{ID: 1, Name: "Morning Brand", Tags: []string{"coffee", "packaging"}},
		{ID: 2, Name: "Riverside Hotel", Tags: []string{"hospitality"}},
	}

	got := filter.Apply(items, filter.Spec{Query: "coffee"}, testAdapter())
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// Case-insensitive substring.
	got = filter.Apply(items, filter.Spec{Query: "RIVER"}, testAdapter())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

/*
TestApply_EmptyInputs covers the degenerate cases: empty collection and
empty query are no-ops, not errors.
*/
func TestApply_EmptyInputs(t *testing.T) {
	got := filter.Apply(nil, filter.Spec{Category: "logo"}, testAdapter())
	assert.Empty(t, got)

	items := []testItem{{ID: 1, Category: "logo"}, {ID: 2, Category: "web"}}

	// Empty query means "no text filter", not "match nothing".
	got = filter.Apply(items, filter.Spec{Query: "   "}, testAdapter())
	assert.Len(t, got, 2)

	// "all" is equivalent to an unset axis.
	got = filter.Apply(items, filter.Spec{Category: filter.Any}, testAdapter())
	assert.Len(t, got, 2)
}

/*
TestApply_DoesNotMutateInput checks the engine returns a fresh slice.
*/
func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []testItem{
		{ID: 2, Name: "B"},
		{ID: 1, Name: "A"},
	}

	_ = filter.Apply(items, filter.Spec{SortBy: "name"}, testAdapter())

	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
}

/*
TestApply_AxesAreANDed checks AND semantics across axes combined with a query.
*/
func TestApply_AxesAreANDed(t *testing.T) {
	items := []testItem{
		{ID: 1, Category: "logo", Status: "done", Name: "Alpha"},
		{ID: 2, Category: "logo", Status: "wip", Name: "Alpha"},
		{ID: 3, Category: "web", Status: "done", Name: "Alpha"},
		{ID: 4, Category: "logo", Status: "done", Name: "Beta"},
	}

	spec := filter.Spec{Category: "logo", Status: "done", Query: "alpha"}
	got := filter.Apply(items, spec, testAdapter())

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

/*
TestApply_UnknownSortKey preserves source order instead of erroring.
*/
func TestApply_UnknownSortKey(t *testing.T) {
	items := []testItem{{ID: 2}, {ID: 1}}

	got := filter.Apply(items, filter.Spec{SortBy: "nonexistent"}, testAdapter())
	assert.Equal(t, []int{2, 1}, ids(got))
}

func ids(items []testItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
