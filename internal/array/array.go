// Package array defines the abstraction surface shared by every array
// implementation: shapes, the capability interfaces, the sentinel error set,
// and the implementation registry.
package array

// Source is anything construction can consume: it exposes dimensionality,
// per-axis extents, and indexed scalar access. Every Array is a Source, so
// arrays can be rebuilt from one another regardless of backend.
type Source interface {
	// Dims returns the number of dimensions. Zero means a bare scalar.
	Dims() int

	// Len returns the extent along the given axis.
	// Returns ErrInvalidAxis when axis is outside [0, Dims()).
	Len(axis int) (int, error)

	// At reads the element at the given index tuple. With fewer indices
	// than dimensions the result is a sub-array; with none, the source
	// itself.
	At(indices ...int) (any, error)
}

// Array is the capability surface an array implementation provides.
//
// The Set family is copy-on-write: it returns a new array sharing every
// untouched subtree with the receiver and leaves the receiver unchanged.
// SetInPlace mutates the receiver and every alias of the touched path.
type Array interface {
	Source

	// Shape returns the per-axis extents, outermost first.
	Shape() Shape

	// IsVector reports whether the array is one-dimensional.
	IsVector() bool

	// IsScalar reports whether the array represents a bare scalar.
	IsScalar() bool

	// IsMutable reports whether SetInPlace is supported.
	IsMutable() bool

	// ElementType names the element type constraint, "any" if unconstrained.
	ElementType() string

	// Set writes value at the index tuple, copy-on-write. The receiver is
	// never modified; the result shares all untouched subtrees with it.
	Set(value any, indices ...int) (Array, error)

	// SetInPlace writes value at the index tuple, mutating the receiver.
	// The write is visible through every alias of the touched containers.
	SetInPlace(value any, indices ...int) error

	// Row returns major slice i as a live reference (alias of MajorSlice).
	Row(i int) (any, error)

	// Column returns the slice at position i along axis 1.
	Column(i int) (any, error)

	// MajorSlice returns the sub-array obtained by fixing the outermost
	// index at i. The result is a live reference, not a copy.
	MajorSlice(i int) (any, error)

	// Slice returns the sub-array obtained by fixing the index along the
	// given axis at i.
	Slice(axis, i int) (any, error)

	// MajorSlices returns the sequence of major slices; scalars for a
	// one-dimensional array, live sub-array references otherwise.
	MajorSlices() []any

	// Broadcast expands the array to target by prepending leading axes
	// whose slots alias the receiver's data. Trailing extents must match
	// exactly; no materialization takes place.
	Broadcast(target Shape) (Array, error)

	// ToNested materializes the array as plain nested []any slices sharing
	// no container with the receiver.
	ToNested() any
}

// Implementation identifies a backend and provides its factory operations.
// Implementations are resolved by name through a Registry.
type Implementation interface {
	// Name returns the key this implementation registers under.
	Name() string

	// Description returns human-readable metadata about the backend.
	Description() string

	// SupportsDims reports whether the backend can represent arrays of
	// the given dimensionality.
	SupportsDims(d int) bool

	// NewVector allocates a zero-filled one-dimensional array of length n.
	NewVector(n int) (Array, error)

	// NewMatrix allocates a zero-filled rows×cols array.
	NewMatrix(rows, cols int) (Array, error)

	// NewNDArray allocates a zero-filled array of the given shape.
	NewNDArray(shape Shape) (Array, error)

	// FromNested builds an array from nested data (slices of slices down
	// to scalar leaves). Scalar input is rejected.
	FromNested(data any) (Array, error)

	// FromSource builds an array equivalent to the given source.
	FromSource(src Source) (Array, error)

	// Coerce converts arbitrary foreign data into this representation,
	// returning a bare scalar when the input is zero-dimensional.
	Coerce(data any) (any, error)

	// MutableArray returns a fully mutable deep copy of a, imported into
	// this representation if it belongs to another one.
	MutableArray(a Array) (Array, error)
}
