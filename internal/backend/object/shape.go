package object

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/array"
)

// Dims returns the number of dimensions: 1 + Dims of the first child,
// bottoming out at 1 for a container of leaves. A length-0 container is
// dimensionality 1, the minimum this representation can express.
func (a *Array) Dims() int {
	if len(a.slots) == 0 {
		return 1
	}
	if c, ok := asChild(a.slots[0]); ok {
		return 1 + c.Dims()
	}
	return 1
}

// Shape returns the per-axis extents, outermost first: the container length
// prepended to the first child's shape. A length-0 container has shape [0].
func (a *Array) Shape() array.Shape {
	if len(a.slots) == 0 {
		return array.Shape{0}
	}
	if c, ok := asChild(a.slots[0]); ok {
		return append(array.Shape{len(a.slots)}, c.Shape()...)
	}
	return array.Shape{len(a.slots)}
}

// Len returns the extent along axis: the container length for axis 0,
// delegating to the first child for deeper axes.
func (a *Array) Len(axis int) (int, error) {
	if axis < 0 {
		return 0, fmt.Errorf("%w: axis %d", array.ErrInvalidAxis, axis)
	}
	if axis == 0 {
		return len(a.slots), nil
	}
	if len(a.slots) == 0 {
		return 0, fmt.Errorf("%w: axis %d on a 1-dimensional array", array.ErrInvalidAxis, axis)
	}
	c, ok := asChild(a.slots[0])
	if !ok {
		return 0, fmt.Errorf("%w: axis %d on a 1-dimensional array", array.ErrInvalidAxis, axis)
	}
	n, err := c.Len(axis - 1)
	if err != nil {
		// Rebuild the message with the caller's axis numbering.
		return 0, fmt.Errorf("%w: axis %d exceeds dimensionality", array.ErrInvalidAxis, axis)
	}
	return n, nil
}

// IsVector reports whether this is an innermost container: empty, or
// holding leaves rather than child arrays.
func (a *Array) IsVector() bool {
	if len(a.slots) == 0 {
		return true
	}
	_, nested := asChild(a.slots[0])
	return !nested
}

// IsScalar is always false: this representation cannot express a bare
// 0-dimensional scalar.
func (a *Array) IsScalar() bool { return false }

// IsMutable is always true: every container supports SetInPlace.
func (a *Array) IsMutable() bool { return true }

// ElementType reports the element constraint; slots hold values of any type.
func (a *Array) ElementType() string { return "any" }
