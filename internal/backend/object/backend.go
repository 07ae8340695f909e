package object

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/array"
)

// Backend is the object-array implementation descriptor. Register it with
// an array.Registry to make this representation resolvable by name.
type Backend struct{}

// Compile-time check that Backend implements the implementation surface.
var _ array.Implementation = (*Backend)(nil)

// New creates the object-array backend descriptor.
func New() *Backend {
	return &Backend{}
}

// Name returns the registry key of this backend.
func (*Backend) Name() string { return "object" }

// Description returns human-readable backend metadata.
func (*Backend) Description() string {
	return "nested mutable object arrays holding elements of any type"
}

// SupportsDims reports whether the backend can represent arrays of the
// given dimensionality. Bare 0-dimensional scalars are not representable.
func (*Backend) SupportsDims(d int) bool { return d >= 1 }

// NewVector allocates a zero-filled vector of length n.
func (*Backend) NewVector(n int) (array.Array, error) {
	return fromShapeArray(array.Shape{n})
}

// NewMatrix allocates a zero-filled rows×cols matrix.
func (*Backend) NewMatrix(rows, cols int) (array.Array, error) {
	return fromShapeArray(array.Shape{rows, cols})
}

// NewNDArray allocates a zero-filled array of the given shape.
func (*Backend) NewNDArray(shape array.Shape) (array.Array, error) {
	return fromShapeArray(shape)
}

func fromShapeArray(shape array.Shape) (array.Array, error) {
	a, err := FromShape(shape)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FromNested builds an array from nested data, rejecting scalar input: an
// array needs at least one dimension.
func (*Backend) FromNested(data any) (array.Array, error) {
	v, err := Coerce(data)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: scalar input, need at least 1 dimension", array.ErrInvalidDimensionality)
	}
	return a, nil
}

// FromSource builds an array equivalent to src, rejecting 0-dimensional
// sources.
func (*Backend) FromSource(src array.Source) (array.Array, error) {
	v, err := FromSource(src)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: 0-dimensional source, need at least 1 dimension", array.ErrInvalidDimensionality)
	}
	return a, nil
}

// Coerce converts arbitrary foreign data into this representation; a bare
// scalar comes back for 0-dimensional input.
func (*Backend) Coerce(data any) (any, error) {
	return Coerce(data)
}

// MutableArray returns a fully mutable deep copy of a, importing it into
// this representation first when it belongs to another backend.
func (*Backend) MutableArray(a array.Array) (array.Array, error) {
	if oa, ok := a.(*Array); ok {
		return oa.DeepClone(), nil
	}
	// A foreign array imported through FromSource is already fresh.
	imported, err := FromSource(a)
	if err != nil {
		return nil, err
	}
	oa, ok := imported.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: 0-dimensional source, need at least 1 dimension", array.ErrInvalidDimensionality)
	}
	return oa, nil
}
