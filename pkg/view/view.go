// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package view provides the reusable listing-state coordinator shared by every
collection surface (portfolio grid, project board, invoice table).

A [Coordinator] owns the raw record collection plus the interactive inputs
(filter spec, view mode, selection) and recomputes the derived collection
through the [filter] engine on every mutation. Pages stop carrying their own
copy of this state machine.

Stale Fetch Discard:

Reloads are tracked with monotonically increasing generation tokens. A fetch
that started before the most recently applied one is rejected at delivery
time, so a slow response can never overwrite newer data.
*/
package view

import (
	"sync"

	"github.com/champastudio/champa/pkg/filter"
)

// # View Modes

// Mode is the presentation layout of a listing.
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// # Generation Tokens

// Generation identifies one reload attempt. Higher values are newer.
type Generation uint64

// # Coordinator

// Coordinator holds the interactive state for one listing of T.
//
// All methods are safe for concurrent use. Derived items are recomputed
// synchronously inside every mutation, so a read that follows a write
// always observes the write ("no lost updates").
type Coordinator[T any] struct {
	mu sync.Mutex

	adapter filter.Adapter[T]

	raw     []T
	derived []T
	spec    filter.Spec
	mode    Mode

	// loaded flips true on the first successful Replace/Complete.
	loaded bool

	// issued is the newest token handed out; applied is the newest token
	// whose result was accepted.
	issued  Generation
	applied Generation

	// selected is the currently inspected item, tracked independently of
	// filtering: opening a detail view never changes the derived items.
	selected   T
	hasSelect  bool
	staleDrops int
}

// NewCoordinator constructs a Coordinator for records of type T.
// The coordinator starts empty, in loading state, in grid mode.
func NewCoordinator[T any](adapter filter.Adapter[T]) *Coordinator[T] {
	return &Coordinator[T]{
		adapter: adapter,
		spec:    filter.Default(),
		mode:    ModeGrid,
	}
}

// # Data Lifecycle

// Begin registers a new reload attempt and returns its generation token.
// The caller passes the token back to [Coordinator.Complete] with the result.
func (c *Coordinator[T]) Begin() Generation {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

// Complete delivers the result of the reload identified by token.
//
// It reports whether the result was applied. A delivery is discarded when a
// newer generation has already been applied — the caller should treat a
// false return as a silent no-op (diagnostic logging only, never an error).
func (c *Coordinator[T]) Complete(token Generation, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token <= c.applied {
		c.staleDrops++
		return false
	}

	c.applied = token
	c.raw = items
	c.loaded = true
	c.recompute()
	return true
}

// Replace swaps the raw collection outside any tracked reload.
// Equivalent to Begin+Complete in one step.
func (c *Coordinator[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	c.applied = c.issued
	c.raw = items
	c.loaded = true
	c.recompute()
}

// IsLoading reports whether no collection has been applied yet.
func (c *Coordinator[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.loaded
}

// StaleDrops returns how many deliveries were discarded as stale.
func (c *Coordinator[T]) StaleDrops() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleDrops
}

// # Derived Output

// Items returns the current derived collection.
//
// While loading it is an empty slice, never nil semantics the caller must
// special-case and never an error. The returned slice is a copy.
func (c *Coordinator[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.derived))
	copy(out, c.derived)
	return out
}

// Spec returns a copy of the active filter spec.
func (c *Coordinator[T]) Spec() filter.Spec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec
}

// # Filter Mutations

// SetCategory sets the category axis and recomputes.
func (c *Coordinator[T]) SetCategory(category string) {
	c.mutate(func() { c.spec.Category = category })
}

// SetStatus sets the status axis and recomputes.
func (c *Coordinator[T]) SetStatus(status string) {
	c.mutate(func() { c.spec.Status = status })
}

// SetType sets the type axis and recomputes.
func (c *Coordinator[T]) SetType(recordType string) {
	c.mutate(func() { c.spec.Type = recordType })
}

// SetQuery sets the free-text search input and recomputes.
func (c *Coordinator[T]) SetQuery(query string) {
	c.mutate(func() { c.spec.Query = query })
}

// SetSort sets the sort key and direction and recomputes.
func (c *Coordinator[T]) SetSort(sortBy string, order filter.Order) {
	c.mutate(func() {
		c.spec.SortBy = sortBy
		c.spec.SortOrder = order
	})
}

// ResetFilters returns every filter axis to its default state.
// Idempotent: resetting an already-default spec changes nothing.
func (c *Coordinator[T]) ResetFilters() {
	c.mutate(func() { c.spec = filter.Default() })
}

// # View Mode & Selection

// SetViewMode switches between grid and list presentation.
// Presentation only — the derived collection is unaffected.
func (c *Coordinator[T]) SetViewMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

// ViewMode returns the active presentation mode.
func (c *Coordinator[T]) ViewMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Select marks an item as the currently inspected one (detail overlay).
func (c *Coordinator[T]) Select(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = item
	c.hasSelect = true
}

// Selected returns the inspected item, if any.
func (c *Coordinator[T]) Selected() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.hasSelect
}

// ClearSelection closes the detail view.
func (c *Coordinator[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.selected = zero
	c.hasSelect = false
}

// # Internals

// mutate applies a spec change and recomputes under one lock acquisition.
func (c *Coordinator[T]) mutate(change func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	change()
	c.recompute()
}

// recompute refreshes the derived collection. Callers hold the lock.
func (c *Coordinator[T]) recompute() {
	c.derived = filter.Apply(c.raw, c.spec, c.adapter)
}
