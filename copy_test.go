package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sketch/handle"
)

const repeat handle.Group = 3

// newRepeatSketch draws a line from (1, 0) to (2, 0) in the XY plane and
// repeats it with a group of type typ.
func newRepeatSketch(typ GroupType, copies int) *Sketch {
	sk := newRequestSketch()
	sk.AddGroup(Group{H: repeat, Name: "repeat", Type: typ, Source: drawing, Copies: copies})
	sk.AddRequest(Request{H: 10, Type: RequestLineSegment, Group: drawing, Workplane: WorkplaneXY()})
	sk.Regenerate()
	place(sk, 10, Vec(1, 0, 0), Vec(2, 0, 0))
	// Copies are taken from the numeric state at regeneration time.
	sk.Regenerate()
	return sk
}

func groupEntities(sk *Sketch, g handle.Group) []*Entity {
	var out []*Entity
	for _, e := range sk.Entities.All() {
		if e.Group == g {
			out = append(out, e)
		}
	}
	return out
}

func TestTranslateCopies(t *testing.T) {
	sk := newRepeatSketch(GroupTranslate, 3)
	ents := groupEntities(sk, repeat)
	require.Len(t, ents, 9)
	for i, e := range ents {
		assert.Equal(t, repeat.Entity(i), e.H)
		assert.Equal(t, handle.FreeIn3D, e.Workplane)
	}
	line := ents[5]
	diff(t, LineSegment{Point: [2]handle.Entity{repeat.Entity(3), repeat.Entity(4)}}, line.Kind)

	sk.Param(repeat.Param(transParam)).Val = 1
	sk.Param(repeat.Param(transParam + 1)).Val = 0.5
	sk.CalculateNumerical(repeat)
	diff(t, Vec(1, 0, 0), ents[0].ActPoint)
	diff(t, Vec(2, 0.5, 0), ents[3].ActPoint)
	diff(t, Vec(3, 1, 0), ents[6].ActPoint)
	diff(t, Vec(4, 1, 0), ents[8].EndpointFinish(sk))

	// The first copy cannot be moved.
	ents[0].PointForceTo(sk, Vec(5, 5, 5))
	diff(t, Vec(1, 0, 0), ents[0].PointGetNum(sk))
	assert.Equal(t, 1.0, sk.Param(repeat.Param(transParam)).Val)

	// Moving a later copy moves the translation.
	ents[6].PointForceTo(sk, Vec(5, 0, 0))
	assert.Equal(t, 2.0, sk.Param(repeat.Param(transParam)).Val)
	assert.Equal(t, 0.0, sk.Param(repeat.Param(transParam+1)).Val)
}

func TestCopiesKeepHandlesAndParams(t *testing.T) {
	sk := newRepeatSketch(GroupTranslate, 2)
	before := sk.Entities.Handles()
	sk.Param(repeat.Param(transParam + 2)).Val = 7
	sk.Regenerate()
	diff(t, before, sk.Entities.Handles())
	assert.Equal(t, 7.0, sk.Param(repeat.Param(transParam+2)).Val)
	assert.Equal(t, repeat, sk.paramGroup(repeat.Param(transParam+2)))
}

func TestRotateCopies(t *testing.T) {
	sk := newRepeatSketch(GroupRotate, 3)
	ents := groupEntities(sk, repeat)
	require.Len(t, ents, 9)
	assert.Equal(t, defaultStep, sk.Param(repeat.Param(angleParam)).Val)
	for i, v := range []float64{0, 0, 1} {
		assert.Equal(t, v, sk.Param(repeat.Param(axisParam+i)).Val)
	}

	// Each application turns by twice the angle parameter.
	s, c := math.Sincos(math.Pi / 3)
	diff(t, Vec(1, 0, 0), ents[0].ActPoint, approx)
	diff(t, Vec(c, s, 0), ents[3].ActPoint, approx)
	s, c = math.Sincos(2 * math.Pi / 3)
	diff(t, Vec(2*c, 2*s, 0), ents[7].ActPoint, approx)
	_, ok := ents[3].Kind.(PointNRotAA)
	assert.True(t, ok)
}

func TestHelixCopies(t *testing.T) {
	sk := newRepeatSketch(GroupHelix, 2)
	sk.Param(repeat.Param(helixParam)).Val = 0.5
	sk.CalculateNumerical(repeat)
	ents := groupEntities(sk, repeat)
	require.Len(t, ents, 6)
	s, c := math.Sincos(math.Pi / 3)
	diff(t, Vec(c, s, 0.5), ents[3].ActPoint, approx)
}

func TestCopyEntityNormalAndDistance(t *testing.T) {
	sk := newRequestSketch()
	sk.AddGroup(Group{H: repeat, Name: "repeat", Type: GroupTranslate, Source: drawing, Copies: 2})
	sk.AddRequest(Request{H: 10, Type: RequestCircle, Group: drawing, Workplane: WorkplaneXY()})
	sk.Regenerate()
	sk.Entity(handle.Request(10).Entity(distanceEntity)).DistanceForceTo(sk, 3)
	sk.Regenerate()

	var circles []*Entity
	for _, e := range groupEntities(sk, repeat) {
		switch k := e.Kind.(type) {
		case NormalNCopy:
			diff(t, Quat(1, 0, 0, 0), k.Base)
			assert.NotEqual(t, handle.NoEntity, e.Anchor)
		case DistanceNCopy:
			assert.Equal(t, 3.0, k.Base)
		case Circle:
			circles = append(circles, e)
		}
	}
	require.Len(t, circles, 2)
	assert.Equal(t, 3.0, circles[1].CircleGetRadiusNum(sk))
	assert.Len(t, circles[1].Beziers(sk), 4)
}

func TestCopyEntityScale(t *testing.T) {
	f := newFixture()
	p := f.entity(handle.FreeIn3D, PointIn3D{Param: f.vec(Vec(1, 2, 3))})
	d := f.entity(handle.FreeIn3D, Distance{Param: f.param(4)})
	p.CalculateNumerical(f.sk)
	d.CalculateNumerical(f.sk)

	g := &Group{H: 9}
	cp := f.sk.CopyEntity(p, CopyOptions{Group: g, Scale: -1})
	cd := f.sk.CopyEntity(d, CopyOptions{Group: g, Scale: -1})
	diff(t, PointNCopy{Base: Vec(-1, -2, -3)}, cp.Kind)
	diff(t, DistanceNCopy{Base: 4}, cd.Kind)
	assert.Equal(t, g.H.Entity(0), cp.H)
	assert.Equal(t, g.H.Entity(1), cd.H)
	// Asking again gives the same handle.
	assert.Equal(t, g.H.Entity(0), g.Remap(p.H, 0))
	assert.Equal(t, g.H.Entity(2), g.Remap(p.H, 1))
}

func TestCopyEntityFace(t *testing.T) {
	f, es := variants()
	src := es["face-xprod"]
	src.CalculateNumerical(f.sk)

	g := &Group{H: 9}
	cp := f.sk.CopyEntity(src, CopyOptions{Group: g, As: CopyNumeric})
	k, ok := cp.Kind.(FaceNTrans)
	require.True(t, ok)
	assert.Equal(t, 0, k.TimesApplied)
	diff(t, src.ActFaceNormal, cp.FaceGetNormalNum(f.sk), approx)
	diff(t, src.ActPoint, cp.FaceGetPointNum(f.sk), approx)
	diff(t, cp.FaceGetPointNum(f.sk), cp.FaceGetPointExprs(f.sk).Eval(values(f.sk)), approx)
}

func TestCopyEntityWorkplane(t *testing.T) {
	sk := newRequestSketch()
	sk.Regenerate()
	assert.Nil(t, sk.CopyEntity(sk.Entity(WorkplaneXY()), CopyOptions{Group: &Group{H: 9}}))
}

func TestCopyAsString(t *testing.T) {
	assert.Equal(t, "n-rot-aa", CopyNRotAA.String())
	assert.Equal(t, "CopyAs(42)", CopyAs(42).String())
}
