package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterCircle() Bezier {
	return QuadBezier(Vec(1, 0, 0), Vec(1, 1, 0), Vec(0, 1, 0), math.Cos(math.Pi/4))
}

func TestLineBezier(t *testing.T) {
	b := LineBezier(Vec(0, 0, 0), Vec(2, 4, 6))
	assert.False(t, b.IsRational())
	diff(t, Vec(1, 2, 3), b.PointAt(0.5), approx)
	diff(t, Vec(2, 4, 6), b.TangentAt(0.3), approx)
	diff(t, []Vector{Vec(0, 0, 0), Vec(2, 4, 6)}, b.Polyline(1e-9, 100))
}

func TestQuarterCircle(t *testing.T) {
	b := quarterCircle()
	assert.True(t, b.IsRational())
	diff(t, Vec(1, 0, 0), b.Start())
	diff(t, Vec(0, 1, 0), b.Finish())
	for t0 := 0.0; t0 <= 1; t0 += 1.0 / 16 {
		p := b.PointAt(t0)
		assert.InDelta(t, 1, p.Hypot(), 1e-12, "t = %g", t0)
		assert.InDelta(t, 0, p.Dot(b.TangentAt(t0)), 1e-12, "t = %g", t0)
	}
	mid := b.PointAt(0.5)
	diff(t, Vec(math.Sqrt2/2, math.Sqrt2/2, 0), mid, approx)
}

func TestCubicBezierTangent(t *testing.T) {
	b := CubicBezier(Vec(0, 0, 0), Vec(1, 2, 0), Vec(3, -1, 1), Vec(4, 1, 0))
	diff(t, Vec(3, 6, 0), b.TangentAt(0), approx)
	diff(t, Vec(3, 6, -3), b.TangentAt(1), approx)

	// Compare against a central difference.
	const h = 1e-6
	for _, t0 := range []float64{0.1, 0.5, 0.77} {
		fd := b.PointAt(t0 + h).Sub(b.PointAt(t0 - h)).Div(2 * h)
		assert.True(t, fd.Equal(b.TangentAt(t0), 1e-6), "t = %g", t0)
	}
}

func TestReverse(t *testing.T) {
	for _, b := range []Bezier{
		LineBezier(Vec(0, 0, 0), Vec(1, 1, 1)),
		quarterCircle(),
		QuadBezier(Vec(0, 0, 0), Vec(1, 2, 0), Vec(3, 0, 0), 0.3),
		CubicBezier(Vec(0, 0, 0), Vec(1, 2, 0), Vec(3, -1, 1), Vec(4, 1, 0)),
	} {
		r := b.Reverse()
		assert.Equal(t, b.Deg, r.Deg)
		diff(t, b.Finish(), r.Start())
		diff(t, b.Start(), r.Finish())
		for _, t0 := range []float64{0, 0.2, 0.5, 0.9} {
			diff(t, b.PointAt(t0), r.PointAt(1-t0), approx)
		}
		diff(t, b, r.Reverse())
	}
}

func TestBezierString(t *testing.T) {
	b := LineBezier(Vec(0, 0, 0), Vec(1, 2, 3))
	assert.Equal(t, "Bezier1[⟨0, 0, 0⟩ ⟨1, 2, 3⟩]", b.String())
}

// distanceToPolyline returns the distance from p to the nearest edge of pts.
func distanceToPolyline(p Vector, pts []Vector) float64 {
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		a, d := pts[i-1], pts[i].Sub(pts[i-1])
		s := min(max(p.Sub(a).Dot(d)/d.Hypot2(), 0), 1)
		best = min(best, p.Distance(a.Add(d.Mul(s))))
	}
	return best
}

func TestPolylineChordTolerance(t *testing.T) {
	const tol = 1e-3
	for _, b := range []Bezier{
		quarterCircle(),
		CubicBezier(Vec(0, 0, 0), Vec(1, 2, 0), Vec(3, -1, 1), Vec(4, 1, 0)),
	} {
		pts := b.Polyline(tol, 1000)
		require.Greater(t, len(pts), 3)
		diff(t, b.Start(), pts[0])
		diff(t, b.Finish(), pts[len(pts)-1])
		for t0 := 0.0; t0 <= 1; t0 += 1.0 / 1024 {
			assert.LessOrEqual(t, distanceToPolyline(b.PointAt(t0), pts), 1.5*tol, "t = %g", t0)
		}
	}
}

func TestPolylineCoarse(t *testing.T) {
	b := QuadBezier(Vec(0, 0, 0), Vec(1, 1, 0), Vec(2, 0, 0), 1)
	pts := b.Polyline(1e9, 100)
	diff(t, []Vector{Vec(0, 0, 0), b.PointAt(0.5), Vec(2, 0, 0)}, pts)
}

func TestPolylineClosedCurve(t *testing.T) {
	// Start and finish coincide; the unconditional first split keeps the
	// loop from collapsing into a point.
	b := CubicBezier(Vec(0, 0, 0), Vec(1, 1, 0), Vec(-1, 1, 0), Vec(0, 0, 0))
	pts := b.Polyline(1e9, 100)
	require.Len(t, pts, 3)
	assert.Greater(t, pts[1].Hypot(), 0.5)
}

func TestPolylineMaxSegments(t *testing.T) {
	b := quarterCircle()
	pts := b.Polyline(1e-12, 4)
	require.Len(t, pts, 9)
	for i, p := range pts {
		diff(t, b.PointAt(float64(i)/8), p, approx)
	}
}

func TestEdgesOf(t *testing.T) {
	pts := []Vector{Vec(0, 0, 0), Vec(1, 0, 0), Vec(1, 1, 0)}
	want := []Edge{
		{Vec(0, 0, 0), Vec(1, 0, 0)},
		{Vec(1, 0, 0), Vec(1, 1, 0)},
	}
	diff(t, want, edgesOf(pts, nil))
	assert.Empty(t, edgesOf(pts[:1], nil))
}
