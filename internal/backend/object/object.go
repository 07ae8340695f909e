package object

import (
	"github.com/ndkit/ndkit/internal/array"
)

// Array is a nested object array: a fixed-length ordered sequence of slots,
// each holding either a child *Array one dimension lower or a leaf value of
// any type. The innermost containers hold leaves; dimensionality 0 is not
// representable and denotes a bare scalar handled by the caller.
//
// Arrays are used through *Array handles. Two handles to the same struct
// alias the same data, which is how slicing, copy-on-write sharing and
// broadcasting express their aliasing guarantees.
//
// Rectangularity (all siblings sharing one shape) is a caller invariant and
// is not validated on construction; introspection reads the first child.
type Array struct {
	slots []any
}

// Compile-time check that *Array implements the abstraction surface.
var _ array.Array = (*Array)(nil)

// newArray allocates a container with n nil slots.
func newArray(n int) *Array {
	return &Array{slots: make([]any, n)}
}

// cloneOneLevel copies the slot sequence into a fresh container, sharing
// every slot value (child arrays included) with the receiver.
func (a *Array) cloneOneLevel() *Array {
	return &Array{slots: append([]any(nil), a.slots...)}
}

// asChild reports v as a nested child array. ok is false for leaves.
func asChild(v any) (*Array, bool) {
	c, ok := v.(*Array)
	return c, ok
}
