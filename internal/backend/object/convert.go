package object

// ToNested materializes the array as plain nested []any slices. Every
// container is replaced by a freshly allocated slice, so the result shares
// no structure with the receiver and later mutation of either side is
// invisible to the other.
func (a *Array) ToNested() any {
	out := make([]any, len(a.slots))
	for i, slot := range a.slots {
		if c, ok := asChild(slot); ok {
			out[i] = c.ToNested()
		} else {
			out[i] = slot
		}
	}
	return out
}

// DeepClone returns a fully independent copy: a fresh container at every
// level with leaf values carried over. Unlike the copy-on-write Set family,
// nothing is shared with the receiver.
func (a *Array) DeepClone() *Array {
	out := newArray(len(a.slots))
	for i, slot := range a.slots {
		if c, ok := asChild(slot); ok {
			out.slots[i] = c.DeepClone()
		} else {
			out.slots[i] = slot
		}
	}
	return out
}
