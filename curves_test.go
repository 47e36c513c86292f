package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sketch/handle"
)

// newCurve adds a request of type typ to the XY plane, regenerates, and
// places its points.
func newCurve(typ RequestType, extra int, pts ...Vector) (*Sketch, *Entity) {
	sk := newRequestSketch()
	const r handle.Request = 10
	sk.AddRequest(Request{H: r, Type: typ, Group: drawing, Workplane: WorkplaneXY(), ExtraPoints: extra})
	sk.Regenerate()
	place(sk, r, pts...)
	sk.CalculateNumerical(drawing)
	return sk, sk.Entity(r.Entity(0))
}

func assertOnCircle(t *testing.T, segs []Bezier, c Vector, r float64) {
	t.Helper()
	for _, b := range segs {
		for _, t0 := range []float64{0, 0.25, 0.5, 0.75, 1} {
			assert.InDelta(t, r, b.PointAt(t0).Distance(c), 1e-9)
		}
	}
}

func TestCircleBeziers(t *testing.T) {
	sk, e := newCurve(RequestCircle, 0, Vec(1, 1, 0))
	// Zero radius.
	assert.Empty(t, e.Beziers(sk))
	assert.Empty(t, e.Edges(sk))

	sk.Entity(handle.Request(10).Entity(distanceEntity)).DistanceForceTo(sk, 2)
	sk.CalculateNumerical(drawing)
	segs := e.Beziers(sk)
	require.Len(t, segs, 4)
	for _, b := range segs {
		assert.Equal(t, 2, b.Deg)
		assert.InDelta(t, math.Cos(math.Pi/4), b.Weight[1], 1e-12)
	}
	assertOnCircle(t, segs, Vec(1, 1, 0), 2)
	diff(t, segs[0].Start(), segs[3].Finish(), approx)
}

func TestArcBeziers(t *testing.T) {
	tests := []struct {
		name   string
		finish Vector
		want   int
		dtheta float64
	}{
		{"quarter", Vec(0, 1, 0), 1, math.Pi / 2},
		{"half", Vec(-1, 0, 0), 2, math.Pi},
		{"three quarters", Vec(0, -1, 0), 3, 3 * math.Pi / 2},
		{"full", Vec(1, 0, 0), 4, 2 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk, e := newCurve(RequestArcOfCircle, 0, Vec(0, 0, 0), Vec(1, 0, 0), tt.finish)
			_, _, dtheta := e.ArcGetAngles(sk)
			assert.InDelta(t, tt.dtheta, dtheta, 1e-12)

			segs := e.Beziers(sk)
			require.Len(t, segs, tt.want)
			assertOnCircle(t, segs, Vector{}, 1)
			diff(t, Vec(1, 0, 0), segs[0].Start(), approx)
			diff(t, tt.finish, segs[len(segs)-1].Finish(), approx)
			for i := 1; i < len(segs); i++ {
				diff(t, segs[i-1].Finish(), segs[i].Start(), approx)
			}
		})
	}
}

func TestFullCircleArcIsExact(t *testing.T) {
	sk, e := newCurve(RequestArcOfCircle, 0, Vec(2, 3, 0), Vec(4, 3, 0), Vec(4, 3, 0))
	_, _, dtheta := e.ArcGetAngles(sk)
	assert.Equal(t, 2*math.Pi, dtheta)
	assert.Len(t, e.Beziers(sk), 4)
	assert.Equal(t, 2.0, e.CircleGetRadiusNum(sk))
}

func TestLineBeziers(t *testing.T) {
	sk, e := newCurve(RequestLineSegment, 0, Vec(1, 2, 0), Vec(3, 5, 0))
	diff(t, []Bezier{LineBezier(Vec(1, 2, 0), Vec(3, 5, 0))}, e.Beziers(sk))
	diff(t, []Vector{Vec(1, 2, 0), Vec(3, 5, 0)}, e.Polyline(sk))
}

func TestCubicBeziers(t *testing.T) {
	pts := []Vector{Vec(0, 0, 0), Vec(1, 1, 0), Vec(2, 0, 0), Vec(3, -1, 0), Vec(4, 0, 0)}
	sk, e := newCurve(RequestCubic, 1, pts...)
	segs := e.Beziers(sk)
	require.Len(t, segs, 2)
	diff(t, pts[0], segs[0].Start())
	diff(t, pts[1], segs[0].Ctrl[1])
	diff(t, pts[2], segs[0].Finish())
	diff(t, pts[3], segs[1].Ctrl[2])
	diff(t, pts[4], segs[1].Finish())
	assertJoinsSmooth(t, segs, false)
}

func TestCubicPeriodicBeziers(t *testing.T) {
	pts := []Vector{Vec(0, 0, 0), Vec(1, 0, 0), Vec(1, 1, 0), Vec(0, 1, 0)}
	sk, e := newCurve(RequestCubicPeriodic, 1, pts...)
	segs := e.Beziers(sk)
	require.Len(t, segs, 4)
	diff(t, InterpolateSpline(pts, Vector{}, Vector{}, true), segs, approx)
}

func TestNoCurves(t *testing.T) {
	sk := newRequestSketch()
	sk.Regenerate()
	wp := sk.Entity(WorkplaneXY())
	assert.Empty(t, wp.Beziers(sk))
	assert.Empty(t, wp.Polyline(sk))
}

func TestEdgesCache(t *testing.T) {
	sk, e := newCurve(RequestArcOfCircle, 0, Vec(0, 0, 0), Vec(10, 0, 0), Vec(0, 10, 0))
	coarse := e.Edges(sk)
	require.NotEmpty(t, coarse)
	assert.Equal(t, len(coarse), len(e.Edges(sk)))

	cfg := sk.Config()
	cfg.ChordTolerance = 1e-4
	cfg.MaxSegments = 1000
	require.NoError(t, sk.SetConfig(cfg))
	fine := e.Edges(sk)
	assert.Greater(t, len(fine), len(coarse))

	// Moving a point invalidates the curves as well.
	place(sk, handle.Request(10), Vec(0, 0, 0), Vec(1, 0, 0), Vec(0, 1, 0))
	e.CalculateNumerical(sk)
	small := e.Edges(sk)
	assert.Less(t, len(small), len(fine))
	for _, ed := range small {
		assert.InDelta(t, 1, ed.A.Hypot(), 1e-9)
		assert.InDelta(t, 1, ed.B.Hypot(), 1e-9)
	}
	for i := 1; i < len(small); i++ {
		diff(t, small[i-1].B, small[i].A)
	}
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	sk := NewSketch()
	cfg := sk.Config()
	cfg.ChordTolerance = 0
	assert.Error(t, sk.SetConfig(cfg))
	assert.Equal(t, DefaultConfig(), sk.Config())
}
