package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/array"
)

func mustMatrix(t *testing.T, data any) *Array {
	t.Helper()
	v, err := Coerce(data)
	require.NoError(t, err)
	a, ok := v.(*Array)
	require.True(t, ok)
	return a
}

func TestAtIdentity(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	v, err := m.At()
	require.NoError(t, err)
	assert.Same(t, m, v, "zero indices return the array itself")
}

func TestAtBounds(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	_, err := m.At(2)
	assert.ErrorIs(t, err, array.ErrIndexOutOfRange)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, array.ErrIndexOutOfRange)

	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, array.ErrIndexOutOfRange)
}

func TestAtTooManyIndices(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	_, err := m.At(0, 1, 0)
	assert.ErrorIs(t, err, array.ErrInvalidDimensionality)
}

func TestSetCopyOnWrite(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	updated, err := m.Set(9, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []any{[]any{1, 9}, []any{3, 4}}, updated.ToNested())
	assert.Equal(t, []any{[]any{1, 2}, []any{3, 4}}, m.ToNested(), "original stays unmodified")
}

func TestSetSharesUntouchedSubtrees(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	updated, err := m.Set(9, 0, 1)
	require.NoError(t, err)
	u := updated.(*Array)

	origRow1, err := m.MajorSlice(1)
	require.NoError(t, err)
	newRow1, err := u.MajorSlice(1)
	require.NoError(t, err)
	assert.Same(t, origRow1, newRow1, "untouched sibling rows are shared by reference")

	origRow0, err := m.MajorSlice(0)
	require.NoError(t, err)
	newRow0, err := u.MajorSlice(0)
	require.NoError(t, err)
	assert.NotSame(t, origRow0, newRow0, "the touched path gets fresh containers")
}

func TestSetIsolationAtOtherIndices(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	updated, err := m.Set(9, 0, 1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, err := m.At(i, j)
			require.NoError(t, err)
			got, err := updated.At(i, j)
			require.NoError(t, err)
			if i == 0 && j == 1 {
				assert.Equal(t, 9, got)
			} else {
				assert.Equal(t, want, got, "index (%d,%d)", i, j)
			}
		}
	}
}

func TestSetRequiresIndex(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	_, err := m.Set(9)
	assert.ErrorIs(t, err, array.ErrInvalidDimensionality)

	err = m.SetInPlace(9)
	assert.ErrorIs(t, err, array.ErrInvalidDimensionality)
}

func TestSetErrors(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	_, err := m.Set(9, 5, 0)
	assert.ErrorIs(t, err, array.ErrIndexOutOfRange)

	_, err = m.Set(9, 0, 0, 0)
	assert.ErrorIs(t, err, array.ErrInvalidDimensionality)

	err = m.SetInPlace(9, 0, 5)
	assert.ErrorIs(t, err, array.ErrIndexOutOfRange)
}

func TestSetInPlaceSameReference(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, m.SetInPlace(7, 1, 0))

	got, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSetInPlaceVisibleThroughAlias(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	slice, err := m.MajorSlice(0)
	require.NoError(t, err)
	row := slice.(*Array)

	require.NoError(t, m.SetInPlace(7, 0, 1))
	got, err := row.At(1)
	require.NoError(t, err)
	assert.Equal(t, 7, got, "a prior slice view observes the in-place write")

	// The other direction holds too: writing through the view mutates m.
	require.NoError(t, row.SetInPlace(8, 0))
	got, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}
