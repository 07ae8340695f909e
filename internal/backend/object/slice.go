package object

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/array"
)

// MajorSlice returns the sub-array obtained by fixing the outermost index
// at i: the slot itself, as a live reference. Mutating the result in place
// is visible through the receiver.
func (a *Array) MajorSlice(i int) (any, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	return a.slots[i], nil
}

// Row is MajorSlice under its two-dimensional name.
func (a *Array) Row(i int) (any, error) {
	return a.MajorSlice(i)
}

// Column returns the slice at position i along axis 1: a fresh container
// holding each row's element i as a live reference. Requires at least two
// dimensions.
func (a *Array) Column(i int) (any, error) {
	out := newArray(len(a.slots))
	for r, slot := range a.slots {
		row, ok := asChild(slot)
		if !ok {
			return nil, fmt.Errorf("%w: column access requires at least 2 dimensions", array.ErrInvalidDimensionality)
		}
		if i < 0 || i >= len(row.slots) {
			return nil, fmt.Errorf("%w: column %d, row length %d", array.ErrIndexOutOfRange, i, len(row.slots))
		}
		out.slots[r] = row.slots[i]
	}
	return out, nil
}

// Slice returns the sub-array obtained by fixing the index along the given
// axis at i. Axis 0 behaves exactly like MajorSlice; deeper axes recurse
// per major slice, so the result keeps every remaining axis in order.
func (a *Array) Slice(axis, i int) (any, error) {
	if axis < 0 {
		return nil, fmt.Errorf("%w: axis %d", array.ErrInvalidAxis, axis)
	}
	if axis == 0 {
		return a.MajorSlice(i)
	}
	out := newArray(len(a.slots))
	for r, slot := range a.slots {
		c, ok := asChild(slot)
		if !ok {
			return nil, fmt.Errorf("%w: axis %d exceeds dimensionality", array.ErrInvalidAxis, axis)
		}
		sub, err := c.Slice(axis-1, i)
		if err != nil {
			return nil, err
		}
		out.slots[r] = sub
	}
	return out, nil
}

// MajorSlices returns the sequence of major slices: for a vector the leaf
// values, otherwise live references to the child arrays. A length-0
// container yields an empty sequence.
func (a *Array) MajorSlices() []any {
	return append([]any(nil), a.slots...)
}
