package sketch

import (
	"math"

	"honnef.co/go/sketch/handle"
)

// curveCache holds the curves of an entity, generated on first use.
type curveCache struct {
	beziers    []Bezier
	haveCurves bool

	edges     []Edge
	edgesTol  float64
	edgesSegs int
	haveEdges bool
}

// Beziers returns the curves that make up the entity: one line for a line
// segment, one to four exact rational quadratics for a circle or arc, and
// the interpolating spline of a cubic. Other entities have no curves, and
// neither has a circle whose radius is below the configured length epsilon.
//
// The result is cached until the entity's numeric state is next refreshed.
func (e *Entity) Beziers(sk *Sketch) []Bezier {
	if !e.curves.haveCurves {
		e.curves.beziers = e.generateBeziers(sk)
		e.curves.haveCurves = true
	}
	return e.curves.beziers
}

// Edges returns the polyline approximation of the entity's curves, using the
// sketch's chord tolerance. The cache is also dropped when the tolerance
// changes.
func (e *Entity) Edges(sk *Sketch) []Edge {
	cfg := sk.Config()
	c := &e.curves
	if !c.haveEdges || c.edgesTol != cfg.ChordTolerance || c.edgesSegs != cfg.MaxSegments {
		var edges []Edge
		for _, b := range e.Beziers(sk) {
			edges = edgesOf(b.Polyline(cfg.ChordTolerance, cfg.MaxSegments), edges)
		}
		c.edges = edges
		c.edgesTol = cfg.ChordTolerance
		c.edgesSegs = cfg.MaxSegments
		c.haveEdges = true
	}
	return c.edges
}

func (e *Entity) generateBeziers(sk *Sketch) []Bezier {
	point := func(h handle.Entity) Vector { return sk.Entity(h).PointGetNum(sk) }
	switch k := e.Kind.(type) {
	case LineSegment:
		return []Bezier{LineBezier(point(k.Point[0]), point(k.Point[1]))}
	case Circle, ArcOfCircle:
		return e.circleBeziers(sk)
	case Cubic:
		n := len(k.Point)
		pts := make([]Vector, 0, n-2)
		pts = append(pts, point(k.Point[0]))
		for _, h := range k.Point[2 : n-2] {
			pts = append(pts, point(h))
		}
		pts = append(pts, point(k.Point[n-1]))
		return InterpolateSpline(pts, point(k.Point[1]), point(k.Point[n-2]), false)
	case CubicPeriodic:
		pts := make([]Vector, len(k.Point))
		for i, h := range k.Point {
			pts[i] = point(h)
		}
		return InterpolateSpline(pts, Vector{}, Vector{}, true)
	default:
		return nil
	}
}

// circleBeziers splits a circle or arc into at most four exact rational
// quadratics, none spanning much more than a quarter turn.
func (e *Entity) circleBeziers(sk *Sketch) []Bezier {
	normal, center := e.circleFrame("Beziers")
	r := e.CircleGetRadiusNum(sk)
	if r < sk.Config().LengthEpsilon {
		Logger().Debug("skipping curves of zero-radius circle", "entity", e.H, "radius", r)
		return nil
	}
	q := sk.Entity(normal).NormalGetNum(sk)
	u, v := q.RotationU(), q.RotationV()
	c := sk.Entity(center).PointGetNum(sk)

	var thetaA, dtheta float64
	if e.Type() == TypeCircle {
		thetaA, dtheta = 0, 2*math.Pi
	} else {
		thetaA, _, dtheta = e.ArcGetAngles(sk)
	}
	var n int
	switch {
	case dtheta > 3*math.Pi/2+0.01:
		n = 4
	case dtheta > math.Pi+0.01:
		n = 3
	case dtheta > math.Pi/2+0.01:
		n = 2
	default:
		n = 1
	}
	dtheta /= float64(n)

	on := func(theta float64) (p, t Vector) {
		s, co := math.Sincos(theta)
		p = c.Add(u.Mul(r * co)).Add(v.Mul(r * s))
		t = u.Mul(-r * s).Add(v.Mul(r * co))
		return p, t
	}
	out := make([]Bezier, 0, n)
	for i := range n {
		s := thetaA + float64(i)*dtheta
		p0, t0 := on(s)
		p2, t2 := on(s + dtheta)
		p1, _ := AtIntersectionOfLines(p0, p0.Add(t0), p2, p2.Add(t2))
		out = append(out, QuadBezier(p0, p1, p2, math.Cos(dtheta/2)))
	}
	return out
}

// Polyline returns the points of the entity's polyline approximation, with
// shared points between consecutive edges listed once.
func (e *Entity) Polyline(sk *Sketch) []Vector {
	edges := e.Edges(sk)
	if len(edges) == 0 {
		return nil
	}
	out := make([]Vector, 0, len(edges)+1)
	out = append(out, edges[0].A)
	for _, ed := range edges {
		out = append(out, ed.B)
	}
	return out
}
