package sketch

import (
	"math"

	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// The geometry of every entity variant is written once, against calc[S].
// calc[float64] evaluates it numerically by reading parameter values;
// calc[*expr.Expr] evaluates it symbolically by building expression trees
// over the same parameters. Both paths run the same code, so they cannot
// disagree.

type vec[S any] struct{ X, Y, Z S }

type quat[S any] struct{ W, VX, VY, VZ S }

type algebra[S any] interface {
	constant(v float64) S
	param(h handle.Param) S
	add(a, b S) S
	sub(a, b S) S
	mul(a, b S) S
	div(a, b S) S
	neg(a S) S
	sqrt(a S) S
	sin(a S) S
	cos(a S) S

	// Dispatch into the entity families. These select the numeric or
	// symbolic method of the entity's variant.
	point(c calc[S], e *Entity) vec[S]
	normal(c calc[S], e *Entity) quat[S]
	distance(c calc[S], e *Entity) S
	face(c calc[S], e *Entity) (n, p vec[S])
}

type calc[S any] struct {
	algebra[S]
	sk *Sketch
}

// reals reads parameter values from a sketch.
type reals struct{ sk *Sketch }

func (reals) constant(v float64) float64 { return v }
func (r reals) param(h handle.Param) float64 {
	return r.sk.Param(h).Val
}
func (reals) add(a, b float64) float64 { return a + b }
func (reals) sub(a, b float64) float64 { return a - b }
func (reals) mul(a, b float64) float64 { return a * b }
func (reals) div(a, b float64) float64 { return a / b }
func (reals) neg(a float64) float64    { return -a }
func (reals) sqrt(a float64) float64   { return math.Sqrt(a) }
func (reals) sin(a float64) float64    { return math.Sin(a) }
func (reals) cos(a float64) float64    { return math.Cos(a) }

func (reals) point(c calc[float64], e *Entity) vec[float64] {
	return e.pointKind("PointGetNum").pointNum(c, e)
}
func (reals) normal(c calc[float64], e *Entity) quat[float64] {
	return e.normalKind("NormalGetNum").normalNum(c, e)
}
func (reals) distance(c calc[float64], e *Entity) float64 {
	return e.distanceKind("DistanceGetNum").distanceNum(c, e)
}
func (reals) face(c calc[float64], e *Entity) (n, p vec[float64]) {
	return e.faceKind("FaceGetNum").faceNum(c, e)
}

// symbols builds expression trees.
type symbols struct{}

func (symbols) constant(v float64) *expr.Expr   { return expr.Const(v) }
func (symbols) param(h handle.Param) *expr.Expr { return expr.Param(h) }
func (symbols) add(a, b *expr.Expr) *expr.Expr  { return a.Plus(b) }
func (symbols) sub(a, b *expr.Expr) *expr.Expr  { return a.Minus(b) }
func (symbols) mul(a, b *expr.Expr) *expr.Expr  { return a.Times(b) }
func (symbols) div(a, b *expr.Expr) *expr.Expr  { return a.Div(b) }
func (symbols) neg(a *expr.Expr) *expr.Expr     { return a.Negate() }
func (symbols) sqrt(a *expr.Expr) *expr.Expr    { return a.Sqrt() }
func (symbols) sin(a *expr.Expr) *expr.Expr     { return a.Sin() }
func (symbols) cos(a *expr.Expr) *expr.Expr     { return a.Cos() }

func (symbols) point(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return e.pointKind("PointGetExprs").pointExprs(c, e)
}
func (symbols) normal(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return e.normalKind("NormalGetExprs").normalExprs(c, e)
}
func (symbols) distance(c calc[*expr.Expr], e *Entity) *expr.Expr {
	return e.distanceKind("DistanceGetExpr").distanceExprs(c, e)
}
func (symbols) face(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return e.faceKind("FaceGetExprs").faceExprs(c, e)
}

func numeric(sk *Sketch) calc[float64] {
	return calc[float64]{algebra: reals{sk}, sk: sk}
}

func symbolic(sk *Sketch) calc[*expr.Expr] {
	return calc[*expr.Expr]{algebra: symbols{}, sk: sk}
}

// Calculators for pure vector and quaternion algebra, which never look up
// parameters or entities.
var (
	numericOps  = numeric(nil)
	symbolicOps = symbolic(nil)
)

func (c calc[S]) pointAt(h handle.Entity) vec[S]   { return c.point(c, c.sk.Entity(h)) }
func (c calc[S]) normalAt(h handle.Entity) quat[S] { return c.normal(c, c.sk.Entity(h)) }
func (c calc[S]) distanceAt(h handle.Entity) S     { return c.distance(c, c.sk.Entity(h)) }

func (c calc[S]) cvec(v Vector) vec[S] {
	return vec[S]{c.constant(v.X), c.constant(v.Y), c.constant(v.Z)}
}

func (c calc[S]) cquat(q Quaternion) quat[S] {
	return quat[S]{c.constant(q.W), c.constant(q.VX), c.constant(q.VY), c.constant(q.VZ)}
}

func (c calc[S]) pvec(p [3]handle.Param) vec[S] {
	return vec[S]{c.param(p[0]), c.param(p[1]), c.param(p[2])}
}

func (c calc[S]) pquat(p [4]handle.Param) quat[S] {
	return quat[S]{c.param(p[0]), c.param(p[1]), c.param(p[2]), c.param(p[3])}
}

func (c calc[S]) plus(a, b vec[S]) vec[S] {
	return vec[S]{c.add(a.X, b.X), c.add(a.Y, b.Y), c.add(a.Z, b.Z)}
}

func (c calc[S]) minus(a, b vec[S]) vec[S] {
	return vec[S]{c.sub(a.X, b.X), c.sub(a.Y, b.Y), c.sub(a.Z, b.Z)}
}

func (c calc[S]) scaled(a vec[S], s S) vec[S] {
	return vec[S]{c.mul(a.X, s), c.mul(a.Y, s), c.mul(a.Z, s)}
}

func (c calc[S]) negated(a vec[S]) vec[S] {
	return vec[S]{c.neg(a.X), c.neg(a.Y), c.neg(a.Z)}
}

func (c calc[S]) dot(a, b vec[S]) S {
	return c.add(c.add(c.mul(a.X, b.X), c.mul(a.Y, b.Y)), c.mul(a.Z, b.Z))
}

func (c calc[S]) cross(a, b vec[S]) vec[S] {
	return vec[S]{
		c.sub(c.mul(a.Y, b.Z), c.mul(a.Z, b.Y)),
		c.sub(c.mul(a.Z, b.X), c.mul(a.X, b.Z)),
		c.sub(c.mul(a.X, b.Y), c.mul(a.Y, b.X)),
	}
}

func (c calc[S]) magnitude(a vec[S]) S {
	return c.sqrt(c.dot(a, a))
}

func (c calc[S]) withMagnitude(a vec[S], s S) vec[S] {
	return c.scaled(a, c.div(s, c.magnitude(a)))
}

func (c calc[S]) twice(a S) S { return c.mul(c.constant(2), a) }

func (c calc[S]) sq(a S) S { return c.mul(a, a) }

// rotationU returns the first column of the rotation matrix of q, that is
// the image of the x axis.
func (c calc[S]) rotationU(q quat[S]) vec[S] {
	return vec[S]{
		c.sub(c.sub(c.add(c.sq(q.W), c.sq(q.VX)), c.sq(q.VY)), c.sq(q.VZ)),
		c.add(c.twice(c.mul(q.W, q.VZ)), c.twice(c.mul(q.VX, q.VY))),
		c.sub(c.twice(c.mul(q.VX, q.VZ)), c.twice(c.mul(q.W, q.VY))),
	}
}

// rotationV returns the image of the y axis under q.
func (c calc[S]) rotationV(q quat[S]) vec[S] {
	return vec[S]{
		c.sub(c.twice(c.mul(q.VX, q.VY)), c.twice(c.mul(q.W, q.VZ))),
		c.sub(c.add(c.sub(c.sq(q.W), c.sq(q.VX)), c.sq(q.VY)), c.sq(q.VZ)),
		c.add(c.twice(c.mul(q.W, q.VX)), c.twice(c.mul(q.VY, q.VZ))),
	}
}

// rotationN returns the image of the z axis under q.
func (c calc[S]) rotationN(q quat[S]) vec[S] {
	return vec[S]{
		c.add(c.twice(c.mul(q.W, q.VY)), c.twice(c.mul(q.VX, q.VZ))),
		c.sub(c.twice(c.mul(q.VY, q.VZ)), c.twice(c.mul(q.W, q.VX))),
		c.add(c.sub(c.sub(c.sq(q.W), c.sq(q.VX)), c.sq(q.VY)), c.sq(q.VZ)),
	}
}

// rotate rotates p by the unit quaternion q.
func (c calc[S]) rotate(q quat[S], p vec[S]) vec[S] {
	u, v, n := c.rotationU(q), c.rotationV(q), c.rotationN(q)
	return c.plus(c.plus(c.scaled(u, p.X), c.scaled(v, p.Y)), c.scaled(n, p.Z))
}

func (c calc[S]) qtimes(a, b quat[S]) quat[S] {
	va := vec[S]{a.VX, a.VY, a.VZ}
	vb := vec[S]{b.VX, b.VY, b.VZ}
	w := c.sub(c.mul(a.W, b.W), c.dot(va, vb))
	vr := c.plus(c.scaled(vb, a.W), c.plus(c.scaled(va, b.W), c.cross(va, vb)))
	return quat[S]{w, vr.X, vr.Y, vr.Z}
}

func (c calc[S]) qmagnitude(q quat[S]) S {
	return c.sqrt(c.add(c.add(c.sq(q.W), c.sq(q.VX)), c.add(c.sq(q.VY), c.sq(q.VZ))))
}

// axisAngle returns the quaternion (cos kθ, sin kθ·axis) for the angle
// parameter θ, applied k times. It rotates by 2kθ about a unit axis.
func (c calc[S]) axisAngle(angle handle.Param, axis [3]handle.Param, k int) quat[S] {
	theta := c.mul(c.constant(float64(k)), c.param(angle))
	s, co := c.sin(theta), c.cos(theta)
	a := c.pvec(axis)
	return quat[S]{co, c.mul(s, a.X), c.mul(s, a.Y), c.mul(s, a.Z)}
}

// rotateAbout rotates p by q about the center o.
func (c calc[S]) rotateAbout(q quat[S], o, p vec[S]) vec[S] {
	return c.plus(c.rotate(q, c.minus(p, o)), o)
}

// workplaneFrame returns the origin and in-plane basis of a workplane.
func (c calc[S]) workplaneFrame(wp *Entity) (o, u, v vec[S]) {
	w := wp.workplane("WorkplaneGetOffset")
	q := c.normalAt(w.Normal)
	return c.pointAt(w.Origin), c.rotationU(q), c.rotationV(q)
}
