package sketch

import (
	"math"

	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// Workplane is a 2D coordinate frame: the position of Origin and the u and v
// directions of Normal.
type Workplane struct {
	Origin handle.Entity
	Normal handle.Entity
}

// LineSegment is the segment between two points.
type LineSegment struct {
	Point [2]handle.Entity
}

// Cubic is an interpolating cubic spline. Its points are the start point,
// the start control point, any number of interior on-curve points, the
// finish control point and the finish point.
type Cubic struct {
	Point []handle.Entity
}

// CubicPeriodic is a closed interpolating cubic spline through at least
// three on-curve points.
type CubicPeriodic struct {
	Point []handle.Entity
}

// Circle is the circle with the given center and radius in the plane of
// Normal.
type Circle struct {
	Center   handle.Entity
	Normal   handle.Entity
	Distance handle.Entity
}

// ArcOfCircle is an arc around Point[0], running counter-clockwise about
// Normal from Point[1] to Point[2].
type ArcOfCircle struct {
	Normal handle.Entity
	Point  [3]handle.Entity
}

// TTFText is a line of text laid out in the rectangle Point[0..3], which runs
// counter-clockwise from the origin of the baseline. AspectRatio is the
// ratio of the rectangle's width to its height.
type TTFText struct {
	Normal      handle.Entity
	Point       [4]handle.Entity
	Str         string
	Font        string
	AspectRatio float64
}

// Image is a raster image laid out in the rectangle Point[0..3], like
// [TTFText].
type Image struct {
	Normal      handle.Entity
	Point       [4]handle.Entity
	File        string
	AspectRatio float64
}

func (Workplane) Type() Type     { return TypeWorkplane }
func (LineSegment) Type() Type   { return TypeLineSegment }
func (Cubic) Type() Type         { return TypeCubic }
func (CubicPeriodic) Type() Type { return TypeCubicPeriodic }
func (Circle) Type() Type        { return TypeCircle }
func (ArcOfCircle) Type() Type   { return TypeArcOfCircle }
func (TTFText) Type() Type       { return TypeTTFText }
func (Image) Type() Type         { return TypeImage }

func (Workplane) Params() []handle.Param     { return nil }
func (LineSegment) Params() []handle.Param   { return nil }
func (Cubic) Params() []handle.Param         { return nil }
func (CubicPeriodic) Params() []handle.Param { return nil }
func (Circle) Params() []handle.Param        { return nil }
func (ArcOfCircle) Params() []handle.Param   { return nil }
func (TTFText) Params() []handle.Param       { return nil }
func (Image) Params() []handle.Param         { return nil }

// ExtraPoints returns the number of interior on-curve points.
func (k Cubic) ExtraPoints() int { return len(k.Point) - 4 }

// ExtraPoints returns the number of on-curve points beyond three.
func (k CubicPeriodic) ExtraPoints() int { return len(k.Point) - 3 }

func (e *Entity) workplane(op string) Workplane {
	k, ok := e.Kind.(Workplane)
	if !ok {
		violate(op, "%s is not a workplane", e)
	}
	return k
}

// WorkplaneGetOffset returns the origin of a workplane.
func (e *Entity) WorkplaneGetOffset(sk *Sketch) Vector {
	return sk.Entity(e.workplane("WorkplaneGetOffset").Origin).PointGetNum(sk)
}

// WorkplaneGetOffsetExprs returns the origin of a workplane as expressions.
func (e *Entity) WorkplaneGetOffsetExprs(sk *Sketch) ExprVector {
	return sk.Entity(e.workplane("WorkplaneGetOffsetExprs").Origin).PointGetExprs(sk)
}

// WorkplaneGetPlaneExprs returns the plane of a workplane as n·p = d.
func (e *Entity) WorkplaneGetPlaneExprs(sk *Sketch) (n ExprVector, d *expr.Expr) {
	w := e.workplane("WorkplaneGetPlaneExprs")
	n = sk.Entity(w.Normal).NormalExprsN(sk)
	p0 := sk.Entity(w.Origin).PointGetExprs(sk)
	return n, p0.Dot(n)
}

// WorkplaneGetNormal returns the normal entity of a workplane.
func (e *Entity) WorkplaneGetNormal(sk *Sketch) *Entity {
	return sk.Entity(e.workplane("WorkplaneGetNormal").Normal)
}

// circleFrame returns the normal and center of a circle or arc.
func (e *Entity) circleFrame(op string) (normal, center handle.Entity) {
	switch k := e.Kind.(type) {
	case Circle:
		return k.Normal, k.Center
	case ArcOfCircle:
		return k.Normal, k.Point[0]
	default:
		violate(op, "%s is not a circle or arc", e)
		return 0, 0
	}
}

// CircleGetRadiusNum returns the radius of a circle or arc.
func (e *Entity) CircleGetRadiusNum(sk *Sketch) float64 {
	switch k := e.Kind.(type) {
	case Circle:
		return sk.Entity(k.Distance).DistanceGetNum(sk)
	case ArcOfCircle:
		c := sk.Entity(k.Point[0]).PointGetNum(sk)
		pa := sk.Entity(k.Point[1]).PointGetNum(sk)
		return pa.Sub(c).Hypot()
	default:
		violate("CircleGetRadiusNum", "%s is not a circle or arc", e)
		return 0
	}
}

// CircleGetRadiusExpr returns the radius of a circle or arc as an expression.
// The radius of an arc is measured in its workplane.
func (e *Entity) CircleGetRadiusExpr(sk *Sketch) *expr.Expr {
	switch k := e.Kind.(type) {
	case Circle:
		return sk.Entity(k.Distance).DistanceGetExpr(sk)
	case ArcOfCircle:
		return pointDistance(symbolic(sk), e.Workplane, k.Point[0], k.Point[1])
	default:
		violate("CircleGetRadiusExpr", "%s is not a circle or arc", e)
		return nil
	}
}

// pointDistance returns the distance between two points, measured in the
// workplane wp, or in space for [handle.FreeIn3D].
func pointDistance[S any](c calc[S], wp, a, b handle.Entity) S {
	pa := pointInWorkplane(c, c.sk.Entity(a), wp)
	pb := pointInWorkplane(c, c.sk.Entity(b), wp)
	d := c.minus(pa, pb)
	if wp == handle.FreeIn3D {
		return c.magnitude(d)
	}
	return c.sqrt(c.add(c.sq(d.X), c.sq(d.Y)))
}

// ArcGetAngles returns the angles of an arc's start and finish points about
// its center, measured in the plane of its normal, and the swept angle
// dtheta between them. dtheta lies in (0, 2π]; coincident endpoints make a
// full circle, not an empty arc.
func (e *Entity) ArcGetAngles(sk *Sketch) (thetaA, thetaB, dtheta float64) {
	k, ok := e.Kind.(ArcOfCircle)
	if !ok {
		violate("ArcGetAngles", "%s is not an arc", e)
	}
	q := sk.Entity(k.Normal).NormalGetNum(sk)
	u, v := q.RotationU(), q.RotationV()
	c := sk.Entity(k.Point[0]).PointGetNum(sk)
	pa := sk.Entity(k.Point[1]).PointGetNum(sk).Sub(c)
	pb := sk.Entity(k.Point[2]).PointGetNum(sk).Sub(c)

	thetaA = math.Atan2(pa.Dot(v), pa.Dot(u))
	thetaB = math.Atan2(pb.Dot(v), pb.Dot(u))
	dtheta = thetaB - thetaA
	for dtheta < 1e-6 {
		dtheta += 2 * math.Pi
	}
	for dtheta > 2*math.Pi {
		dtheta -= 2 * math.Pi
	}
	return thetaA, thetaB, dtheta
}

// VectorGetNum returns the direction of a line segment (from its first to
// its second point) or of a normal (its n axis).
func (e *Entity) VectorGetNum(sk *Sketch) Vector {
	if e.IsNormal() {
		return e.NormalN(sk)
	}
	k, ok := e.Kind.(LineSegment)
	if !ok {
		violate("VectorGetNum", "%s has no direction", e)
	}
	return sk.Entity(k.Point[1]).PointGetNum(sk).Sub(sk.Entity(k.Point[0]).PointGetNum(sk))
}

// VectorGetExprs is the symbolic form of [Entity.VectorGetNum].
func (e *Entity) VectorGetExprs(sk *Sketch) ExprVector {
	if e.IsNormal() {
		return e.NormalExprsN(sk)
	}
	k, ok := e.Kind.(LineSegment)
	if !ok {
		violate("VectorGetExprs", "%s has no direction", e)
	}
	return sk.Entity(k.Point[1]).PointGetExprs(sk).Minus(sk.Entity(k.Point[0]).PointGetExprs(sk))
}

// VectorGetExprsInWorkplane returns the direction projected into the
// workplane wp, with z = 0.
func (e *Entity) VectorGetExprsInWorkplane(sk *Sketch, wp handle.Entity) ExprVector {
	v := e.VectorGetExprs(sk)
	if wp == handle.FreeIn3D {
		return v
	}
	n := sk.Entity(wp).WorkplaneGetNormal(sk)
	return ExprVector{v.Dot(n.NormalExprsU(sk)), v.Dot(n.NormalExprsV(sk)), expr.Const(0)}
}

// VectorGetRefPoint returns the point a direction is drawn from: the first
// point of a line segment, or the anchor of a normal.
func (e *Entity) VectorGetRefPoint(sk *Sketch) Vector {
	if e.IsNormal() {
		if e.Anchor == handle.NoEntity {
			return Vector{}
		}
		return sk.Entity(e.Anchor).PointGetNum(sk)
	}
	k, ok := e.Kind.(LineSegment)
	if !ok {
		violate("VectorGetRefPoint", "%s has no direction", e)
	}
	return sk.Entity(k.Point[0]).PointGetNum(sk)
}

func (e *Entity) endpoints(op string) (start, finish handle.Entity) {
	switch k := e.Kind.(type) {
	case LineSegment:
		return k.Point[0], k.Point[1]
	case ArcOfCircle:
		return k.Point[1], k.Point[2]
	case Cubic:
		return k.Point[0], k.Point[len(k.Point)-1]
	default:
		violate(op, "%s has no endpoints", e)
		return 0, 0
	}
}

// EndpointStart returns the start point of a line segment, arc or open
// cubic.
func (e *Entity) EndpointStart(sk *Sketch) Vector {
	s, _ := e.endpoints("EndpointStart")
	return sk.Entity(s).PointGetNum(sk)
}

// EndpointFinish returns the finish point of a line segment, arc or open
// cubic.
func (e *Entity) EndpointFinish(sk *Sketch) Vector {
	_, f := e.endpoints("EndpointFinish")
	return sk.Entity(f).PointGetNum(sk)
}
