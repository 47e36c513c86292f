package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sketch/handle"
)

func TestTable(t *testing.T) {
	var tab Table[handle.Param, Param]
	_, ok := tab.Get(1)
	assert.False(t, ok)
	assert.False(t, tab.Has(1))
	assert.False(t, tab.Delete(1))

	hs := []handle.Param{30, 10, 20, 40}
	for _, h := range hs {
		p := tab.Add(h, Param{H: h, Val: float64(h)})
		assert.Equal(t, h, p.H)
	}
	assert.Equal(t, 4, tab.Len())
	diff(t, hs, tab.Handles())

	p, ok := tab.Get(20)
	require.True(t, ok)
	p.Val = 7
	p, _ = tab.Get(20)
	assert.Equal(t, 7.0, p.Val)

	assert.True(t, tab.Delete(10))
	diff(t, []handle.Param{30, 20, 40}, tab.Handles())
	p, ok = tab.Get(40)
	require.True(t, ok)
	assert.Equal(t, 40.0, p.Val)

	var order []handle.Param
	for h, p := range tab.All() {
		assert.Equal(t, h, p.H)
		order = append(order, h)
		if h == 20 {
			break
		}
	}
	diff(t, []handle.Param{30, 20}, order)

	cv := violation(t, func() { tab.Add(30, Param{}) })
	assert.Equal(t, "Table.Add", cv.Op)
}

func TestTableGenerations(t *testing.T) {
	var tab Table[handle.Entity, int]
	tab.Add(5, 1)
	ref := tab.Ref(5)
	v, err := tab.Resolve(ref)
	require.NoError(t, err)
	assert.Equal(t, 1, *v)

	_, err = tab.Resolve(tab.Ref(6))
	assert.ErrorIs(t, err, ErrNotFound)

	tab.Clear()
	assert.Equal(t, uint32(1), tab.Generation())
	assert.Equal(t, 0, tab.Len())
	tab.Add(5, 2)

	// The handle exists again, but the reference predates the rebuild.
	_, err = tab.Resolve(ref)
	assert.ErrorIs(t, err, ErrStale)
	v, err = tab.Resolve(tab.Ref(5))
	require.NoError(t, err)
	assert.Equal(t, 2, *v)
}

// Pointers returned by the table stay valid as it grows.
func TestTableStablePointers(t *testing.T) {
	var tab Table[handle.Param, Param]
	first := tab.Add(0, Param{})
	for i := 1; i < 1000; i++ {
		tab.Add(handle.Param(i), Param{H: handle.Param(i)})
	}
	first.Val = 3
	p, _ := tab.Get(0)
	assert.Same(t, first, p)
	assert.Equal(t, 3.0, p.Val)
}
