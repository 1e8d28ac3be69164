// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

// Package pointer removes the boilerplate of creating and dereferencing
// pointers for optional struct fields (nullable columns, PATCH payloads).
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
