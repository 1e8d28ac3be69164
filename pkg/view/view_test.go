// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/pkg/filter"
	"github.com/champastudio/champa/pkg/view"
)

type card struct {
	ID       int
	Category string
	Name     string
}

func cardAdapter() filter.Adapter[card] {
	return filter.Adapter[card]{
		Category: func(c card) string { return c.Category },
		Search:   func(c card) []string { return []string{c.Name} },
		Sort: map[string]filter.Key[card]{
			"name": {Text: func(c card) string { return c.Name }},
		},
	}
}

/*
TestCoordinator_LoadingState: before any data arrives, Items is empty and
IsLoading reports true; callers never inspect Items to detect loading.
*/
func TestCoordinator_LoadingState(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())

	assert.True(t, c.IsLoading())
	assert.Empty(t, c.Items())

	c.Replace([]card{{ID: 1}})
	assert.False(t, c.IsLoading())
	assert.Len(t, c.Items(), 1)
}

/*
TestCoordinator_RecomputeOnMutation: every filter mutation is reflected
synchronously in the derived collection.
*/
func TestCoordinator_RecomputeOnMutation(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())
	c.Replace([]card{
		{ID: 1, Category: "logo", Name: "Alpha"},
		{ID: 2, Category: "web", Name: "Beta"},
		{ID: 3, Category: "logo", Name: "Gamma"},
	})

	c.SetCategory("logo")
	require.Len(t, c.Items(), 2)

	c.SetQuery("gam")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].ID)

	// Rapid successive mutations: the last write per axis wins, none lost.
	c.SetQuery("alp")
	c.SetCategory(filter.Any)
	items = c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

/*
TestCoordinator_ResetFilters: reset returns every axis to default and is
idempotent regardless of the current values.
*/
func TestCoordinator_ResetFilters(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())
	c.Replace([]card{{ID: 1, Category: "logo"}, {ID: 2, Category: "web"}})

	c.SetCategory("logo")
	c.SetQuery("x")
	c.SetSort("name", filter.OrderDesc)

	c.ResetFilters()
	assert.Len(t, c.Items(), 2)
	assert.True(t, c.Spec().IsZero())

	c.ResetFilters()
	assert.True(t, c.Spec().IsZero())
}

/*
TestCoordinator_StaleFetchDiscard: fetch A begins, then fetch B begins and
completes first; A's late delivery must be dropped.
*/
func TestCoordinator_StaleFetchDiscard(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())

	tokenA := c.Begin()
	tokenB := c.Begin()

	// B resolves first and is applied.
	applied := c.Complete(tokenB, []card{{ID: 2, Name: "from B"}})
	require.True(t, applied)

	// A resolves late and must be silently discarded.
	applied = c.Complete(tokenA, []card{{ID: 1, Name: "from A"}})
	assert.False(t, applied)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 1, c.StaleDrops())
}

/*
TestCoordinator_SelectionIndependentOfFiltering: opening a detail view does
not alter the derived collection.
*/
func TestCoordinator_SelectionIndependentOfFiltering(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())
	c.Replace([]card{{ID: 1, Category: "logo"}, {ID: 2, Category: "web"}})
	c.SetCategory("logo")

	before := c.Items()
	c.Select(card{ID: 2, Category: "web"})
	assert.Equal(t, before, c.Items())

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, selected.ID)

	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}

/*
TestCoordinator_ViewMode: presentation mode switches without touching data.
*/
func TestCoordinator_ViewMode(t *testing.T) {
	c := view.NewCoordinator(cardAdapter())
	assert.Equal(t, view.ModeGrid, c.ViewMode())

	c.Replace([]card{{ID: 1}})
	c.SetViewMode(view.ModeList)

	assert.Equal(t, view.ModeList, c.ViewMode())
	assert.Len(t, c.Items(), 1)
}
