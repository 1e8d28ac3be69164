// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

// Package query parses URL query parameters into typed values.
package query

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/champastudio/champa/pkg/filter"
)

// Int parses a single integer query parameter with a fallback default.
func Int(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}

// Bool parses a boolean query parameter ("true"/"1" are true).
func Bool(r *http.Request, key string) bool {
	raw := r.URL.Query().Get(key)
	return raw == "true" || raw == "1"
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// FilterSpec assembles a [filter.Spec] from the conventional listing
// parameters used across every collection endpoint:
// category, status, type, q, sort, dir.
func FilterSpec(r *http.Request) filter.Spec {
	params := r.URL.Query()

	order := filter.OrderAsc
	if params.Get("dir") == string(filter.OrderDesc) {
		order = filter.OrderDesc
	}

	return filter.Spec{
		Category:  params.Get("category"),
		Status:    params.Get("status"),
		Type:      params.Get("type"),
		Query:     params.Get("q"),
		SortBy:    params.Get("sort"),
		SortOrder: order,
	}
}
