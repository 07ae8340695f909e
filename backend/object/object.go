// Copyright 2025 The NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package object exposes the nested object-array backend: N-dimensional
// arrays built from mutable reference containers whose slots hold either
// child containers or leaf values of any type.
//
// Example:
//
//	import (
//	    "github.com/ndkit/ndkit/array"
//	    "github.com/ndkit/ndkit/backend/object"
//	)
//
//	func main() {
//	    m, _ := object.FromNested([][]int{{1, 2}, {3, 4}})
//	    row, _ := m.Row(1) // live reference to [3 4]
//	    _ = row
//	}
package object

import (
	"fmt"

	"github.com/ndkit/ndkit/array"
	internalobject "github.com/ndkit/ndkit/internal/backend/object"
)

// Backend is the object-array implementation descriptor.
type Backend = internalobject.Backend

// Array is a nested object array, used through *Array handles.
type Array = internalobject.Array

// Compile-time checks against the abstraction surface.
var (
	_ array.Implementation = (*Backend)(nil)
	_ array.Array          = (*Array)(nil)
)

// New creates the object-array backend descriptor.
//
// Example:
//
//	reg := array.NewEmptyRegistry()
//	reg.Register(object.New())
func New() *Backend {
	return internalobject.New()
}

// Register registers the backend with the given registry under its name.
func Register(r *array.Registry) {
	r.Register(New())
}

// FromShape allocates a fully nested zero-filled array matching shape.
func FromShape(shape array.Shape) (*Array, error) {
	return internalobject.FromShape(shape)
}

// FromNested builds an array from nested data (slices of slices down to
// scalar leaves). Scalar input is rejected.
func FromNested(data any) (*Array, error) {
	v, err := internalobject.Coerce(data)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: scalar input, need at least 1 dimension", array.ErrInvalidDimensionality)
	}
	return a, nil
}

// FromSource builds a value equivalent to src: a bare scalar for a
// 0-dimensional source, a *Array otherwise.
func FromSource(src array.Source) (any, error) {
	return internalobject.FromSource(src)
}

// Coerce converts arbitrary foreign data into this representation,
// returning a bare scalar for 0-dimensional input.
func Coerce(data any) (any, error) {
	return internalobject.Coerce(data)
}
