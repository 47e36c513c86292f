package sketch

import (
	"math"

	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// PointIn3D is a point free in space; its three parameters are its
// coordinates.
type PointIn3D struct {
	Param [3]handle.Param
}

// PointIn2D is a point in its entity's workplane; its two parameters are its
// coordinates along the workplane's u and v directions.
type PointIn2D struct {
	Param [2]handle.Param
}

// PointNCopy is a locked numeric copy of a point.
type PointNCopy struct {
	Base Vector
}

// PointNTrans is a copy of Base translated TimesApplied times by the vector
// Trans.
type PointNTrans struct {
	Base         Vector
	Trans        [3]handle.Param
	TimesApplied int
}

// PointNRotTrans is a copy of Base rotated by the quaternion Rot, then
// translated by Trans.
type PointNRotTrans struct {
	Base  Vector
	Trans [3]handle.Param
	Rot   [4]handle.Param
}

// PointNRotAA is a copy of Base rotated TimesApplied times about the line
// through Center along the unit vector Axis. The rotation per application is
// twice the Angle parameter.
type PointNRotAA struct {
	Base         Vector
	Center       [3]handle.Param
	Angle        handle.Param
	Axis         [3]handle.Param
	TimesApplied int
}

// PointNRotAxisTrans is a screw motion: the rotation of [PointNRotAA]
// followed by a displacement of Dist along Axis per application.
type PointNRotAxisTrans struct {
	Base         Vector
	Center       [3]handle.Param
	Angle        handle.Param
	Axis         [3]handle.Param
	Dist         handle.Param
	TimesApplied int
}

var (
	_ pointKind = PointIn3D{}
	_ pointKind = PointIn2D{}
	_ pointKind = PointNCopy{}
	_ pointKind = PointNTrans{}
	_ pointKind = PointNRotTrans{}
	_ pointKind = PointNRotAA{}
	_ pointKind = PointNRotAxisTrans{}
)

func (PointIn3D) Type() Type          { return TypePointIn3D }
func (PointIn2D) Type() Type          { return TypePointIn2D }
func (PointNCopy) Type() Type         { return TypePointNCopy }
func (PointNTrans) Type() Type        { return TypePointNTrans }
func (PointNRotTrans) Type() Type     { return TypePointNRotTrans }
func (PointNRotAA) Type() Type        { return TypePointNRotAA }
func (PointNRotAxisTrans) Type() Type { return TypePointNRotAxisTrans }

func (k PointIn3D) Params() []handle.Param   { return k.Param[:] }
func (k PointIn2D) Params() []handle.Param   { return k.Param[:] }
func (PointNCopy) Params() []handle.Param    { return nil }
func (k PointNTrans) Params() []handle.Param { return k.Trans[:] }
func (k PointNRotTrans) Params() []handle.Param {
	return append(k.Trans[:], k.Rot[:]...)
}
func (k PointNRotAA) Params() []handle.Param {
	return concatParams(k.Center[:], []handle.Param{k.Angle}, k.Axis[:])
}
func (k PointNRotAxisTrans) Params() []handle.Param {
	return concatParams(k.Center[:], []handle.Param{k.Angle}, k.Axis[:], []handle.Param{k.Dist})
}

func concatParams(ps ...[]handle.Param) []handle.Param {
	var out []handle.Param
	for _, p := range ps {
		out = append(out, p...)
	}
	return out
}

func pointIn2D[S any](c calc[S], e *Entity, k PointIn2D) vec[S] {
	o, u, v := c.workplaneFrame(c.sk.Entity(e.Workplane))
	return c.plus(o, c.plus(c.scaled(u, c.param(k.Param[0])), c.scaled(v, c.param(k.Param[1]))))
}

func pointNTrans[S any](c calc[S], k PointNTrans) vec[S] {
	base := c.cvec(k.Base)
	if k.TimesApplied == 0 {
		return base
	}
	return c.plus(base, c.scaled(c.pvec(k.Trans), c.constant(float64(k.TimesApplied))))
}

func pointNRotTrans[S any](c calc[S], k PointNRotTrans) vec[S] {
	return c.plus(c.rotate(c.pquat(k.Rot), c.cvec(k.Base)), c.pvec(k.Trans))
}

func pointNRotAA[S any](c calc[S], k PointNRotAA) vec[S] {
	q := c.axisAngle(k.Angle, k.Axis, k.TimesApplied)
	return c.rotateAbout(q, c.pvec(k.Center), c.cvec(k.Base))
}

func pointNRotAxisTrans[S any](c calc[S], k PointNRotAxisTrans) vec[S] {
	q := c.axisAngle(k.Angle, k.Axis, k.TimesApplied)
	p := c.rotateAbout(q, c.pvec(k.Center), c.cvec(k.Base))
	d := c.withMagnitude(c.pvec(k.Axis), c.param(k.Dist))
	return c.plus(p, c.scaled(d, c.constant(float64(k.TimesApplied))))
}

func (k PointIn3D) pointNum(c calc[float64], e *Entity) vec[float64] { return c.pvec(k.Param) }
func (k PointIn3D) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return c.pvec(k.Param)
}

func (k PointIn2D) pointNum(c calc[float64], e *Entity) vec[float64] { return pointIn2D(c, e, k) }
func (k PointIn2D) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return pointIn2D(c, e, k)
}

func (k PointNCopy) pointNum(c calc[float64], e *Entity) vec[float64] { return c.cvec(k.Base) }
func (k PointNCopy) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return c.cvec(k.Base)
}

func (k PointNTrans) pointNum(c calc[float64], e *Entity) vec[float64] { return pointNTrans(c, k) }
func (k PointNTrans) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return pointNTrans(c, k)
}

func (k PointNRotTrans) pointNum(c calc[float64], e *Entity) vec[float64] {
	return pointNRotTrans(c, k)
}
func (k PointNRotTrans) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return pointNRotTrans(c, k)
}

func (k PointNRotAA) pointNum(c calc[float64], e *Entity) vec[float64] { return pointNRotAA(c, k) }
func (k PointNRotAA) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return pointNRotAA(c, k)
}

func (k PointNRotAxisTrans) pointNum(c calc[float64], e *Entity) vec[float64] {
	return pointNRotAxisTrans(c, k)
}
func (k PointNRotAxisTrans) pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr] {
	return pointNRotAxisTrans(c, k)
}

func (k PointIn3D) forcePoint(sk *Sketch, e *Entity, p Vector) {
	sk.setParam(k.Param[0], p.X)
	sk.setParam(k.Param[1], p.Y)
	sk.setParam(k.Param[2], p.Z)
}

func (k PointIn2D) forcePoint(sk *Sketch, e *Entity, p Vector) {
	wp := sk.Entity(e.Workplane)
	n := sk.Entity(wp.workplane("PointForceTo").Normal)
	p = p.Sub(wp.WorkplaneGetOffset(sk))
	sk.setParam(k.Param[0], p.Dot(n.NormalU(sk)))
	sk.setParam(k.Param[1], p.Dot(n.NormalV(sk)))
}

// Copies are locked.
func (PointNCopy) forcePoint(*Sketch, *Entity, Vector) {}

func (k PointNTrans) forcePoint(sk *Sketch, e *Entity, p Vector) {
	if k.TimesApplied == 0 {
		return
	}
	t := p.Sub(k.Base).Div(float64(k.TimesApplied))
	sk.setParams(k.Trans, t)
}

// Only the translation is forced; the rotation stays as it is.
func (k PointNRotTrans) forcePoint(sk *Sketch, e *Entity, p Vector) {
	q := Quaternion(numeric(sk).pquat(k.Rot))
	sk.setParams(k.Trans, p.Sub(q.Rotate(k.Base)))
}

func (k PointNRotAA) forcePoint(sk *Sketch, e *Entity, p Vector) {
	c := Vector(numeric(sk).pvec(k.Center))
	axis := Vector(numeric(sk).pvec(k.Axis))
	forceRotationAngle(sk, k.Angle, k.TimesApplied, c, axis, k.Base, p)
}

// If the base point lies on the axis, rotating cannot move it and the
// distance is forced instead of the angle.
func (k PointNRotAxisTrans) forcePoint(sk *Sketch, e *Entity, p Vector) {
	if k.TimesApplied == 0 {
		return
	}
	c := Vector(numeric(sk).pvec(k.Center))
	axis := Vector(numeric(sk).pvec(k.Axis))
	n := axis.Normalize()
	if k.Base.Sub(c).Cross(n).Hypot2() < sk.Config().LengthEpsilon {
		sk.setParam(k.Dist, p.Sub(k.Base).Dot(n)/float64(k.TimesApplied))
		return
	}
	forceRotationAngle(sk, k.Angle, k.TimesApplied, c, axis, k.Base, p)
}

// forceRotationAngle writes the angle parameter of a rotation applied k
// times about the line through c along axis, so that base lands as close to
// p as rotation allows. The step taken is the one closest to the current
// angle, in (−π, π], so that dragging across ±π never jumps a full turn.
func forceRotationAngle(sk *Sketch, angle handle.Param, k int, c, axis, base, p Vector) {
	if k == 0 {
		return
	}
	u, v := axis.Normal(0), axis.Normal(1)
	po, bo := p.Sub(c), base.Sub(c)
	thetap := math.Atan2(v.Dot(po), u.Dot(po))
	thetab := math.Atan2(v.Dot(bo), u.Dot(bo))
	thetaf := thetap - thetab
	// The quaternion rotates by twice its angle parameter.
	thetai := sk.Param(angle).Val * float64(k) * 2
	dtheta := wrapAngle(thetaf - thetai)
	sk.setParam(angle, (thetai+dtheta)/(float64(k)*2))
}

// wrapAngle maps an angle into (−π, π].
func wrapAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// PointForceParamTo writes p directly into the parameters of a point that
// owns its coordinates. For a point in a workplane, p is in workplane
// coordinates and its z is ignored.
func (e *Entity) PointForceParamTo(sk *Sketch, p Vector) {
	switch k := e.Kind.(type) {
	case PointIn3D:
		sk.setParams(k.Param, p)
	case PointIn2D:
		sk.setParam(k.Param[0], p.X)
		sk.setParam(k.Param[1], p.Y)
	default:
		violate("PointForceParamTo", "%s does not own its coordinates", e)
	}
}

// PointGetQuaternion returns the rotation of a rotated copy.
func (e *Entity) PointGetQuaternion(sk *Sketch) Quaternion {
	c := numeric(sk)
	switch k := e.Kind.(type) {
	case PointNRotTrans:
		return Quaternion(c.pquat(k.Rot))
	case PointNRotAA:
		return Quaternion(c.axisAngle(k.Angle, k.Axis, k.TimesApplied))
	case PointNRotAxisTrans:
		return Quaternion(c.axisAngle(k.Angle, k.Axis, k.TimesApplied))
	default:
		violate("PointGetQuaternion", "%s is not a rotated point", e)
		return Quaternion{}
	}
}

// PointForceQuaternionTo sets the rotation of a rotated-and-translated copy.
func (e *Entity) PointForceQuaternionTo(sk *Sketch, q Quaternion) {
	k, ok := e.Kind.(PointNRotTrans)
	if !ok {
		violate("PointForceQuaternionTo", "%s is not a rotated-and-translated point", e)
	}
	sk.setParam(k.Rot[0], q.W)
	sk.setParam(k.Rot[1], q.VX)
	sk.setParam(k.Rot[2], q.VY)
	sk.setParam(k.Rot[3], q.VZ)
}

func pointInWorkplane[S any](c calc[S], e *Entity, wp handle.Entity) vec[S] {
	if k, ok := e.Kind.(PointIn2D); ok && e.Workplane == wp {
		return vec[S]{c.param(k.Param[0]), c.param(k.Param[1]), c.constant(0)}
	}
	p := c.point(c, e)
	if wp == handle.FreeIn3D {
		return p
	}
	o, u, v := c.workplaneFrame(c.sk.Entity(wp))
	d := c.minus(p, o)
	return vec[S]{c.dot(d, u), c.dot(d, v), c.constant(0)}
}

// PointGetNumInWorkplane returns the point's coordinates in the workplane wp,
// with z = 0. With wp = [handle.FreeIn3D], it returns the 3D position.
func (e *Entity) PointGetNumInWorkplane(sk *Sketch, wp handle.Entity) Vector {
	e.pointKind("PointGetNumInWorkplane")
	return Vector(pointInWorkplane(numeric(sk), e, wp))
}

// PointGetExprsInWorkplane is the symbolic form of
// [Entity.PointGetNumInWorkplane]. For a point in wp itself, the result is
// its raw parameters, which keeps equations written in workplane
// coordinates low-degree.
func (e *Entity) PointGetExprsInWorkplane(sk *Sketch, wp handle.Entity) ExprVector {
	e.pointKind("PointGetExprsInWorkplane")
	return ExprVector(pointInWorkplane(symbolic(sk), e, wp))
}
