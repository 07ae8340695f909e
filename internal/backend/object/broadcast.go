package object

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/array"
)

// Broadcast expands the array to target by right-aligning its shape against
// the trailing axes of target. Every aligned pair of extents must match
// exactly; this backend does not stretch size-1 axes, it only prepends new
// leading axes. Each new container's slots all alias the same unexpanded
// array, so no data is materialized and an in-place write through one slot
// is visible through all of them.
func (a *Array) Broadcast(target array.Shape) (array.Array, error) {
	shape := a.Shape()
	if len(shape) > len(target) {
		return nil, fmt.Errorf("%w: cannot broadcast %v to lower-dimensional %v", array.ErrIncompatibleShape, shape, target)
	}
	lead := len(target) - len(shape)
	for i, extent := range shape {
		if target[lead+i] != extent {
			return nil, fmt.Errorf("%w: trailing extent %d is %d, want %d (broadcast %v to %v)",
				array.ErrIncompatibleShape, i, target[lead+i], extent, shape, target)
		}
	}
	cur := a
	for axis := lead - 1; axis >= 0; axis-- {
		wrap := newArray(target[axis])
		for i := range wrap.slots {
			wrap.slots[i] = cur
		}
		cur = wrap
	}
	return cur, nil
}
