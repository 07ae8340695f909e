package object

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/array"
)

// checkIndex validates i against the container length.
func (a *Array) checkIndex(i int) error {
	if i < 0 || i >= len(a.slots) {
		return fmt.Errorf("%w: index %d, length %d", array.ErrIndexOutOfRange, i, len(a.slots))
	}
	return nil
}

// At reads the element at the given index tuple, consuming indices
// left-to-right. With no indices the array itself is returned; with one,
// the slot (leaf or live sub-array); with more, the remaining indices are
// applied to the selected child.
func (a *Array) At(indices ...int) (any, error) {
	if len(indices) == 0 {
		return a, nil
	}
	i := indices[0]
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	if len(indices) == 1 {
		return a.slots[i], nil
	}
	c, ok := asChild(a.slots[i])
	if !ok {
		return nil, fmt.Errorf("%w: %d indices into a 1-dimensional array", array.ErrInvalidDimensionality, len(indices))
	}
	return c.At(indices[1:]...)
}

// Set writes value at the index tuple, copy-on-write: exactly one fresh
// container is allocated per level on the touched path, the replacement
// child is built from the original child, and every sibling subtree is
// shared by reference. The receiver is never modified.
func (a *Array) Set(value any, indices ...int) (array.Array, error) {
	out, err := a.set(value, indices)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Array) set(value any, indices []int) (*Array, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: set requires at least one index", array.ErrInvalidDimensionality)
	}
	i := indices[0]
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	clone := a.cloneOneLevel()
	if len(indices) == 1 {
		clone.slots[i] = value
		return clone, nil
	}
	c, ok := asChild(a.slots[i])
	if !ok {
		return nil, fmt.Errorf("%w: %d indices into a 1-dimensional array", array.ErrInvalidDimensionality, len(indices))
	}
	replacement, err := c.set(value, indices[1:])
	if err != nil {
		return nil, err
	}
	clone.slots[i] = replacement
	return clone, nil
}

// SetInPlace writes value at the index tuple, mutating the receiver
// directly. The write is visible through every alias of the containers on
// the touched path.
func (a *Array) SetInPlace(value any, indices ...int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: set requires at least one index", array.ErrInvalidDimensionality)
	}
	i := indices[0]
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if len(indices) == 1 {
		a.slots[i] = value
		return nil
	}
	c, ok := asChild(a.slots[i])
	if !ok {
		return fmt.Errorf("%w: %d indices into a 1-dimensional array", array.ErrInvalidDimensionality, len(indices))
	}
	return c.SetInPlace(value, indices[1:]...)
}
