package sketch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/sketch/handle"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside vectors and quaternions.
var approx = cmpopts.EquateApprox(0, 1e-9)

// violation runs f and returns the contract violation it panics with. It
// fails the test if f panics with anything else or does not panic at all.
func violation(t *testing.T, f func()) (cv *ContractViolation) {
	t.Helper()
	defer func() {
		r := recover()
		var ok bool
		cv, ok = r.(*ContractViolation)
		if !ok {
			t.Fatalf("got panic value %v, want a contract violation", r)
		}
	}()
	f()
	return nil
}

func values(sk *Sketch) func(handle.Param) float64 {
	return func(h handle.Param) float64 { return sk.Param(h).Val }
}

const drawing handle.Group = 2

// newRequestSketch returns a sketch with the reference workplanes and an
// empty drawing group.
func newRequestSketch() *Sketch {
	sk := NewSketch()
	sk.AddReferences()
	sk.AddGroup(Group{H: drawing, Name: "drawing"})
	return sk
}

// fixture builds entities and parameters by hand, outside of any request.
type fixture struct {
	sk     *Sketch
	g      handle.Group
	params int
	ents   int
}

func newFixture() *fixture {
	return &fixture{sk: NewSketch(), g: 7}
}

func (f *fixture) param(v float64) handle.Param {
	h := f.g.Param(f.params)
	f.params++
	return f.sk.addParam(h, v)
}

func (f *fixture) vec(v Vector) [3]handle.Param {
	return [3]handle.Param{f.param(v.X), f.param(v.Y), f.param(v.Z)}
}

func (f *fixture) quat(q Quaternion) [4]handle.Param {
	return [4]handle.Param{f.param(q.W), f.param(q.VX), f.param(q.VY), f.param(q.VZ)}
}

func (f *fixture) entity(wp handle.Entity, k Kind) *Entity {
	h := f.g.Entity(f.ents)
	f.ents++
	e := f.sk.addEntity(Entity{H: h, Group: f.g, Workplane: wp, Kind: k})
	return e
}
