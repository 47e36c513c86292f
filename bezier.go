package sketch

import "fmt"

// Bezier is a rational Bézier curve of degree 1, 2 or 3. Ctrl and Weight are
// used up to index Deg. Non-rational curves have all weights set to 1.
type Bezier struct {
	Deg    int
	Ctrl   [4]Vector
	Weight [4]float64
}

// LineBezier returns the degree 1 curve from p0 to p1.
func LineBezier(p0, p1 Vector) Bezier {
	return Bezier{Deg: 1, Ctrl: [4]Vector{p0, p1}, Weight: [4]float64{1, 1}}
}

// QuadBezier returns the rational quadratic curve from p0 to p2 with control
// point p1 of weight w. An arc of a circle spanning the angle θ is exact for
// w = cos(θ/2).
func QuadBezier(p0, p1, p2 Vector, w float64) Bezier {
	return Bezier{Deg: 2, Ctrl: [4]Vector{p0, p1, p2}, Weight: [4]float64{1, w, 1}}
}

// CubicBezier returns the non-rational cubic curve from p0 to p3.
func CubicBezier(p0, p1, p2, p3 Vector) Bezier {
	return Bezier{Deg: 3, Ctrl: [4]Vector{p0, p1, p2, p3}, Weight: [4]float64{1, 1, 1, 1}}
}

func (b Bezier) String() string {
	return fmt.Sprintf("Bezier%d%v", b.Deg, b.Ctrl[:b.Deg+1])
}

func (b Bezier) Start() Vector  { return b.Ctrl[0] }
func (b Bezier) Finish() Vector { return b.Ctrl[b.Deg] }

// IsRational reports whether any weight differs from 1.
func (b Bezier) IsRational() bool {
	for _, w := range b.Weight[:b.Deg+1] {
		if w != 1 {
			return true
		}
	}
	return false
}

// Reverse returns the same curve, traversed from finish to start.
func (b Bezier) Reverse() Bezier {
	out := Bezier{Deg: b.Deg}
	for i := 0; i <= b.Deg; i++ {
		out.Ctrl[i] = b.Ctrl[b.Deg-i]
		out.Weight[i] = b.Weight[b.Deg-i]
	}
	return out
}

// bernstein returns the i-th Bernstein polynomial of degree deg at t.
func bernstein(i, deg int, t float64) float64 {
	mt := 1 - t
	switch deg {
	case 1:
		return [2]float64{mt, t}[i]
	case 2:
		return [3]float64{mt * mt, 2 * mt * t, t * t}[i]
	case 3:
		return [4]float64{mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t}[i]
	default:
		violate("Bezier", "unsupported degree %d", deg)
		return 0
	}
}

// bernsteinDerivative returns the derivative of bernstein(i, deg, t).
func bernsteinDerivative(i, deg int, t float64) float64 {
	mt := 1 - t
	switch deg {
	case 1:
		return [2]float64{-1, 1}[i]
	case 2:
		return [3]float64{-2 * mt, 2 * (mt - t), 2 * t}[i]
	case 3:
		return [4]float64{-3 * mt * mt, 3 * mt * (mt - 2*t), 3 * t * (2*mt - t), 3 * t * t}[i]
	default:
		violate("Bezier", "unsupported degree %d", deg)
		return 0
	}
}

// PointAt evaluates the curve at t in [0, 1].
func (b Bezier) PointAt(t float64) Vector {
	var p Vector
	var d float64
	for i := 0; i <= b.Deg; i++ {
		bw := bernstein(i, b.Deg, t) * b.Weight[i]
		p = p.Add(b.Ctrl[i].Mul(bw))
		d += bw
	}
	return p.Div(d)
}

// TangentAt returns the derivative of the curve with respect to t.
func (b Bezier) TangentAt(t float64) Vector {
	var p, dp Vector
	var d, dd float64
	for i := 0; i <= b.Deg; i++ {
		bw := bernstein(i, b.Deg, t) * b.Weight[i]
		dbw := bernsteinDerivative(i, b.Deg, t) * b.Weight[i]
		p = p.Add(b.Ctrl[i].Mul(bw))
		dp = dp.Add(b.Ctrl[i].Mul(dbw))
		d += bw
		dd += dbw
	}
	// Quotient rule.
	return dp.Mul(d).Sub(p.Mul(dd)).Div(d * d)
}

// Polyline approximates the curve by a polyline whose distance from the
// curve is below chordTol. Subdivision also stops once a piece spans less
// than 1/maxSegments of the parameter range, tolerance or not. The first
// and last points are exactly the curve's endpoints.
func (b Bezier) Polyline(chordTol float64, maxSegments int) []Vector {
	out := []Vector{b.Start()}
	if b.Deg == 1 {
		return append(out, b.Finish())
	}
	step := 1 / float64(maxSegments)
	// Split once unconditionally: a curve that starts and ends at the same
	// point would otherwise pass the flatness test.
	out = b.polylineInitial(out, 0, 0.5, chordTol, step)
	out = b.polylineInitial(out, 0.5, 1, chordTol, step)
	return out
}

func (b Bezier) polylineInitial(out []Vector, ta, tb, tol, step float64) []Vector {
	pa, pb := b.pointOrEnd(ta), b.pointOrEnd(tb)
	dt := tb - ta
	d := max(
		distanceToSegmentLine(b.PointAt(ta+dt/4), pa, pb),
		distanceToSegmentLine(b.PointAt(ta+dt/2), pa, pb),
		distanceToSegmentLine(b.PointAt(ta+3*dt/4), pa, pb),
	)
	if d < tol || dt < step {
		return append(out, pb)
	}
	tm := (ta + tb) / 2
	out = b.polylineWorker(out, ta, tm, tol, step)
	return b.polylineWorker(out, tm, tb, tol, step)
}

func (b Bezier) polylineWorker(out []Vector, ta, tb, tol, step float64) []Vector {
	pa, pb := b.pointOrEnd(ta), b.pointOrEnd(tb)
	tm := (ta + tb) / 2
	if distanceToSegmentLine(b.PointAt(tm), pa, pb) < tol || tb-ta < step {
		return append(out, pb)
	}
	out = b.polylineWorker(out, ta, tm, tol, step)
	return b.polylineWorker(out, tm, tb, tol, step)
}

// pointOrEnd is PointAt, but exact at the endpoints.
func (b Bezier) pointOrEnd(t float64) Vector {
	switch t {
	case 0:
		return b.Start()
	case 1:
		return b.Finish()
	default:
		return b.PointAt(t)
	}
}

func distanceToSegmentLine(p, a, b Vector) float64 {
	d := b.Sub(a)
	if d.Hypot2() == 0 {
		return p.Distance(a)
	}
	return p.DistanceToLine(a, d)
}

// Edge is one segment of a polyline.
type Edge struct {
	A, B Vector
}

func edgesOf(pts []Vector, dst []Edge) []Edge {
	for i := 1; i < len(pts); i++ {
		dst = append(dst, Edge{pts[i-1], pts[i]})
	}
	return dst
}
