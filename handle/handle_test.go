package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sketch/handle"
)

func TestRequestOwnership(t *testing.T) {
	r := handle.Request(0x123)
	for _, i := range []int{0, 1, 32, 64, handle.MaxLocal} {
		e := r.Entity(i)
		assert.True(t, e.IsFromRequest())
		assert.Equal(t, r, e.Request())
		assert.Equal(t, i, e.Local())

		p := r.Param(i)
		assert.True(t, p.IsFromRequest())
		assert.Equal(t, r, p.Request())
		assert.Equal(t, i, p.Local())
	}
}

func TestGroupOwnership(t *testing.T) {
	g := handle.Group(0x2a)
	e := g.Entity(7)
	assert.False(t, e.IsFromRequest())
	assert.Equal(t, g, e.Group())
	assert.Equal(t, 7, e.Local())

	p := g.Param(9)
	assert.False(t, p.IsFromRequest())
	assert.Equal(t, g, p.Group())

	// A group-synthesized handle never equals a request-generated one with
	// the same owner index and local index.
	assert.NotEqual(t, uint32(handle.Request(0x2a).Entity(7)), uint32(e))
}

func TestEquationTags(t *testing.T) {
	c := handle.Constraint(5)
	qc := c.Equation(3)
	assert.True(t, qc.IsFromConstraint())
	assert.False(t, qc.IsFromEntity())
	assert.Equal(t, c, qc.Constraint())

	g := handle.Group(4)
	qg := g.Equation(1)
	assert.True(t, qg.IsFromGroup())
	assert.False(t, qg.IsFromConstraint())

	entities := []handle.Entity{
		handle.Request(9).Entity(0),
		handle.Request(9).Entity(32),
		g.Entity(100),
	}
	seen := map[handle.Equation]bool{}
	for _, e := range entities {
		for slot := 0; slot <= handle.MaxEquationSlot; slot++ {
			q := e.Equation(slot)
			require.True(t, q.IsFromEntity())
			assert.False(t, q.IsFromConstraint())
			assert.False(t, q.IsFromGroup())
			assert.Equal(t, e, q.Entity())
			assert.Equal(t, slot, q.Slot())
			assert.False(t, seen[q], "duplicate equation handle %s", q)
			seen[q] = true
		}
	}
}

func TestContractViolations(t *testing.T) {
	assert.Panics(t, func() { handle.Request(handle.MaxOwner + 1).Entity(0) })
	assert.Panics(t, func() { handle.Group(1).Param(-1) })
	assert.Panics(t, func() { handle.Request(1).Param(handle.MaxLocal + 1) })
	assert.Panics(t, func() { handle.Request(1).Entity(0).Equation(handle.MaxEquationSlot + 1) })
	assert.Panics(t, func() { handle.Request(1).Entity(handle.MaxEquationLocal + 1).Equation(0) })
}

func TestReferences(t *testing.T) {
	for _, r := range []handle.Request{handle.ReferenceXY, handle.ReferenceYZ, handle.ReferenceZX} {
		assert.True(t, r.IsFromReferences())
	}
	assert.False(t, handle.Request(4).IsFromReferences())
	assert.Equal(t, handle.NoEntity, handle.FreeIn3D)
}

func TestString(t *testing.T) {
	assert.Equal(t, "e002.1", handle.Request(2).Entity(1).String())
	assert.Equal(t, "p001.16", handle.Request(1).Param(16).String())
	assert.Equal(t, "eg003.4", handle.Group(3).Entity(4).String())
	assert.Equal(t, "q[e002.0#2]", handle.Request(2).Entity(0).Equation(2).String())
}
