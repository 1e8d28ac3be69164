// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package filter implements the shared in-memory filter/search/sort engine
behind every listing surface (portfolio, services, projects, invoices, files).

Each listing page used to re-implement its own ad hoc predicate soup; this
package factors that into one generic pipeline parameterised by an [Adapter]
that teaches the engine how to read a given record type.

Pipeline Order:

  - Axis filters first (category, status, type — AND semantics).
  - Free-text query second (case-insensitive substring, OR across fields).
  - Stable sort last, so discarded records are never compared.

The engine never mutates its input and is safe for concurrent readers.
*/
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// # Filter Specification

// Order is the sort direction of a listing.
type Order string

const (
	// OrderAsc sorts ascending (default).
	OrderAsc Order = "asc"

	// OrderDesc sorts descending. Flips the comparator, not the stability.
	OrderDesc Order = "desc"
)

// Any is the axis value meaning "no constraint on this axis".
// An empty string is equivalent.
const Any = "all"

// Spec is the complete set of inputs driving a derived listing view.
type Spec struct {
	Category  string `json:"category,omitempty"`
	Status    string `json:"status,omitempty"`
	Type      string `json:"type,omitempty"`
	Query     string `json:"q,omitempty"`
	SortBy    string `json:"sort,omitempty"`
	SortOrder Order  `json:"dir,omitempty"`
}

// Default returns a Spec with every axis cleared.
func Default() Spec {
	return Spec{SortOrder: OrderAsc}
}

// IsZero reports whether no axis carries a constraint and no sort is set.
func (s Spec) IsZero() bool {
	return !constrains(s.Category) && !constrains(s.Status) && !constrains(s.Type) &&
		strings.TrimSpace(s.Query) == "" && s.SortBy == ""
}

// constrains reports whether an axis value actually restricts the view.
func constrains(axis string) bool {
	return axis != "" && axis != Any
}

// # Record Adapters

// Key describes how one sortable attribute of a record is read.
//
// Exactly one of Number or Text should be set. Numeric keys (year, amount,
// timestamps as unix seconds) compare numerically; text keys compare with
// locale-aware collation.
type Key[T any] struct {
	Number func(T) float64
	Text   func(T) string
}

// Adapter teaches the engine how to read a specific record type.
//
// Nil axis getters and absent sort keys are ignored, so a record type only
// declares the axes it actually has.
type Adapter[T any] struct {
	// Category, Status, and Type read the record's exact-match axes.
	Category func(T) string
	Status   func(T) string
	Type     func(T) string

	// Search returns the record's free-text searchable fields
	// (e.g. title, client name, tags). A record matches when ANY
	// field contains the query substring.
	Search func(T) []string

	// Sort maps Spec.SortBy values onto sortable keys.
	Sort map[string]Key[T]

	// Locale drives text collation. The zero value collates as English.
	Locale language.Tag
}

// # Engine

// Apply runs the full filter pipeline over items and returns a new slice.
//
// The input slice is never mutated. Records with equal sort keys keep their
// input order (stable sort). Applying the same spec twice is a no-op on the
// second pass.
func Apply[T any](items []T, spec Spec, adapter Adapter[T]) []T {
	result := make([]T, 0, len(items))

	// ── 1. Axis Filters (AND across axes) ─────────────────────────────────
	query := strings.ToLower(strings.TrimSpace(spec.Query))
	for _, item := range items {
		if !matchAxis(item, spec.Category, adapter.Category) {
			continue
		}
		if !matchAxis(item, spec.Status, adapter.Status) {
			continue
		}
		if !matchAxis(item, spec.Type, adapter.Type) {
			continue
		}

		// ── 2. Free-Text Query (OR across searchable fields) ──────────────
		if query != "" && !matchQuery(item, query, adapter.Search) {
			continue
		}

		result = append(result, item)
	}

	// ── 3. Stable Sort (last, over survivors only) ────────────────────────
	sortItems(result, spec, adapter)

	return result
}

// matchAxis applies one exact-match axis. A nil getter or an unconstrained
// axis value always matches.
func matchAxis[T any](item T, axis string, getter func(T) string) bool {
	if !constrains(axis) || getter == nil {
		return true
	}
	return getter(item) == axis
}

// matchQuery reports whether any searchable field contains the
// lowercased query substring.
func matchQuery[T any](item T, loweredQuery string, search func(T) []string) bool {
	if search == nil {
		return false
	}
	for _, field := range search(item) {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// sortItems stable-sorts in place by the spec's sort key, if one is declared.
func sortItems[T any](items []T, spec Spec, adapter Adapter[T]) {
	if spec.SortBy == "" || len(items) < 2 {
		return
	}

	key, ok := adapter.Sort[spec.SortBy]
	if !ok {
		// Unknown sort keys preserve source order rather than erroring.
		return
	}

	descending := spec.SortOrder == OrderDesc

	switch {
	case key.Number != nil:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := key.Number(items[i]), key.Number(items[j])
			if descending {
				return a > b
			}
			return a < b
		})

	case key.Text != nil:
		collator := collate.New(localeOrDefault(adapter.Locale))
		sort.SliceStable(items, func(i, j int) bool {
			cmp := collator.CompareString(key.Text(items[i]), key.Text(items[j]))
			if descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}
}

// localeOrDefault substitutes English for the zero language tag.
func localeOrDefault(tag language.Tag) language.Tag {
	if tag == (language.Tag{}) {
		return language.English
	}
	return tag
}
