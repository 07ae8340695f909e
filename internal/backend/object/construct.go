package object

import (
	"fmt"
	"reflect"

	"github.com/ndkit/ndkit/internal/array"
)

// FromShape allocates a fully nested structure matching shape exactly.
// Leaves are pre-filled with float64(0); the zero sentinel is numeric even
// though the element type stays unconstrained, a quirk kept from the
// reference backend.
func FromShape(shape array.Shape) (*Array, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: shape must have at least one axis", array.ErrInvalidDimensionality)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return fromValidShape(shape), nil
}

func fromValidShape(shape array.Shape) *Array {
	a := newArray(shape[0])
	if len(shape) == 1 {
		for i := range a.slots {
			a.slots[i] = float64(0)
		}
		return a
	}
	for i := range a.slots {
		a.slots[i] = fromValidShape(shape[1:])
	}
	return a
}

// FromSource builds a value equivalent to src: a bare scalar when src is
// 0-dimensional, otherwise a nested container materializing each major
// slice recursively.
func FromSource(src array.Source) (any, error) {
	d := src.Dims()
	switch {
	case d < 0:
		return nil, fmt.Errorf("%w: source dimensionality %d", array.ErrInvalidShape, d)
	case d == 0:
		return src.At()
	case d == 1:
		n, err := src.Len(0)
		if err != nil {
			return nil, err
		}
		a := newArray(n)
		for i := 0; i < n; i++ {
			v, err := src.At(i)
			if err != nil {
				return nil, err
			}
			a.slots[i] = v
		}
		return a, nil
	default:
		n, err := src.Len(0)
		if err != nil {
			return nil, err
		}
		a := newArray(n)
		for i := 0; i < n; i++ {
			sub, err := FromSource(sourceView{src: src, index: i})
			if err != nil {
				return nil, err
			}
			a.slots[i] = sub
		}
		return a, nil
	}
}

// sourceView is the major slice of a Source at a fixed leading index.
type sourceView struct {
	src   array.Source
	index int
}

func (v sourceView) Dims() int { return v.src.Dims() - 1 }

func (v sourceView) Len(axis int) (int, error) {
	if axis < 0 {
		return 0, fmt.Errorf("%w: axis %d", array.ErrInvalidAxis, axis)
	}
	return v.src.Len(axis + 1)
}

func (v sourceView) At(indices ...int) (any, error) {
	full := make([]int, 0, len(indices)+1)
	full = append(full, v.index)
	full = append(full, indices...)
	return v.src.At(full...)
}

// Coerce converts arbitrary foreign data into this representation by
// recursing on major slices until scalar leaves are reached. Sources are
// rebuilt via FromSource; Go slices and arrays become containers element by
// element; anything else is a scalar returned untouched. The result is a
// bare scalar when the input is 0-dimensional.
func Coerce(data any) (any, error) {
	if src, ok := data.(array.Source); ok {
		return FromSource(src)
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		a := newArray(rv.Len())
		for i := range a.slots {
			v, err := Coerce(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			a.slots[i] = v
		}
		return a, nil
	default:
		return data, nil
	}
}
