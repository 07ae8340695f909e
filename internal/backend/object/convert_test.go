package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNested(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	assert.Equal(t, []any{[]any{1, 2}, []any{3, 4}}, m.ToNested())
}

func TestToNestedSharesNothing(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	nested := m.ToNested().([]any)
	require.NoError(t, m.SetInPlace(9, 0, 0))

	assert.Equal(t, []any{1, 2}, nested[0], "materialized output is isolated from later writes")

	nested[1].([]any)[0] = 7
	got, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "mutating the output does not touch the array")
}

func TestDeepClone(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 2}, {3, 4}})

	clone := m.DeepClone()
	assert.Equal(t, m.ToNested(), clone.ToNested())

	require.NoError(t, clone.SetInPlace(9, 0, 0))
	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "deep clone shares no container with the original")

	row0, err := m.MajorSlice(0)
	require.NoError(t, err)
	cloneRow0, err := clone.MajorSlice(0)
	require.NoError(t, err)
	assert.NotSame(t, row0, cloneRow0)
}
