// Copyright 2025 The NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API of the ndkit array abstraction.
//
// The package defines the shared surface every array implementation
// provides:
//   - Array: the capability interface (introspection, access, mutation,
//     slicing, broadcasting, conversion)
//   - Source: the minimal construction input interface
//   - Implementation: backend identity and factory operations
//   - Registry: explicit name → implementation resolution
//
// Example:
//
//	reg := array.NewRegistry()
//	impl, err := reg.Resolve("object")
//	if err != nil {
//		// no such backend
//	}
//	m, _ := impl.NewMatrix(2, 3)
//	m2, _ := m.Set(9, 0, 1)
package array

import (
	internalarray "github.com/ndkit/ndkit/internal/array"
	"github.com/ndkit/ndkit/internal/backend/object"
)

// Shape represents the per-axis extents of an array.
// Example: Shape{2, 3, 4} describes a 3-dimensional 2×3×4 array.
type Shape = internalarray.Shape

// Source is anything array construction can consume: dimensionality,
// per-axis extents, and indexed scalar access.
type Source = internalarray.Source

// Array is the capability surface every array implementation provides.
type Array = internalarray.Array

// Implementation identifies a backend and provides its factory operations.
type Implementation = internalarray.Implementation

// Registry maps implementation names to registered implementations.
type Registry = internalarray.Registry

// Sentinel errors raised by array implementations; match with errors.Is.
var (
	ErrInvalidDimensionality = internalarray.ErrInvalidDimensionality
	ErrInvalidAxis           = internalarray.ErrInvalidAxis
	ErrIndexOutOfRange       = internalarray.ErrIndexOutOfRange
	ErrIncompatibleShape     = internalarray.ErrIncompatibleShape
	ErrInvalidShape          = internalarray.ErrInvalidShape
	ErrUnknownImplementation = internalarray.ErrUnknownImplementation
)

// NewRegistry creates a registry with the default backends registered.
// Construct one at process start and pass it to whatever resolves arrays
// by implementation name.
func NewRegistry() *Registry {
	r := internalarray.NewEmptyRegistry()
	r.Register(object.New())
	return r
}

// NewEmptyRegistry creates a registry with nothing registered.
func NewEmptyRegistry() *Registry {
	return internalarray.NewEmptyRegistry()
}
