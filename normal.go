package sketch

import (
	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// NormalIn3D is a free orientation. Its four parameters are the components
// of a quaternion, which the entity constrains to unit length.
type NormalIn3D struct {
	Param [4]handle.Param
}

// NormalIn2D is the normal of the entity's workplane.
type NormalIn2D struct{}

// NormalNCopy is a locked numeric copy of a normal.
type NormalNCopy struct {
	Base Quaternion
}

// NormalNRot is Base rotated by the quaternion Rot.
type NormalNRot struct {
	Base Quaternion
	Rot  [4]handle.Param
}

// NormalNRotAA is Base rotated TimesApplied times about Axis, by twice the
// Angle parameter each time.
type NormalNRotAA struct {
	Base         Quaternion
	Angle        handle.Param
	Axis         [3]handle.Param
	TimesApplied int
}

var (
	_ normalKind = NormalIn3D{}
	_ normalKind = NormalIn2D{}
	_ normalKind = NormalNCopy{}
	_ normalKind = NormalNRot{}
	_ normalKind = NormalNRotAA{}
)

func (NormalIn3D) Type() Type   { return TypeNormalIn3D }
func (NormalIn2D) Type() Type   { return TypeNormalIn2D }
func (NormalNCopy) Type() Type  { return TypeNormalNCopy }
func (NormalNRot) Type() Type   { return TypeNormalNRot }
func (NormalNRotAA) Type() Type { return TypeNormalNRotAA }

func (k NormalIn3D) Params() []handle.Param { return k.Param[:] }
func (NormalIn2D) Params() []handle.Param   { return nil }
func (NormalNCopy) Params() []handle.Param  { return nil }
func (k NormalNRot) Params() []handle.Param { return k.Rot[:] }
func (k NormalNRotAA) Params() []handle.Param {
	return concatParams([]handle.Param{k.Angle}, k.Axis[:])
}

func normalIn2D[S any](c calc[S], e *Entity) quat[S] {
	wp := c.sk.Entity(e.Workplane).workplane("NormalGetNum")
	return c.normalAt(wp.Normal)
}

func normalNRot[S any](c calc[S], k NormalNRot) quat[S] {
	return c.qtimes(c.pquat(k.Rot), c.cquat(k.Base))
}

func normalNRotAA[S any](c calc[S], k NormalNRotAA) quat[S] {
	return c.qtimes(c.axisAngle(k.Angle, k.Axis, k.TimesApplied), c.cquat(k.Base))
}

func (k NormalIn3D) normalNum(c calc[float64], e *Entity) quat[float64] { return c.pquat(k.Param) }
func (k NormalIn3D) normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return c.pquat(k.Param)
}

func (NormalIn2D) normalNum(c calc[float64], e *Entity) quat[float64] { return normalIn2D(c, e) }
func (NormalIn2D) normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return normalIn2D(c, e)
}

func (k NormalNCopy) normalNum(c calc[float64], e *Entity) quat[float64] { return c.cquat(k.Base) }
func (k NormalNCopy) normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return c.cquat(k.Base)
}

func (k NormalNRot) normalNum(c calc[float64], e *Entity) quat[float64] { return normalNRot(c, k) }
func (k NormalNRot) normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return normalNRot(c, k)
}

func (k NormalNRotAA) normalNum(c calc[float64], e *Entity) quat[float64] {
	return normalNRotAA(c, k)
}
func (k NormalNRotAA) normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr] {
	return normalNRotAA(c, k)
}

func (k NormalIn3D) forceNormal(sk *Sketch, e *Entity, q Quaternion) {
	sk.setParam(k.Param[0], q.W)
	sk.setParam(k.Param[1], q.VX)
	sk.setParam(k.Param[2], q.VY)
	sk.setParam(k.Param[3], q.VZ)
}

// Locked to the workplane.
func (NormalIn2D) forceNormal(*Sketch, *Entity, Quaternion) {}

func (NormalNCopy) forceNormal(*Sketch, *Entity, Quaternion) {}

func (k NormalNRot) forceNormal(sk *Sketch, e *Entity, q Quaternion) {
	r := q.Times(k.Base.Inverse())
	sk.setParam(k.Rot[0], r.W)
	sk.setParam(k.Rot[1], r.VX)
	sk.setParam(k.Rot[2], r.VY)
	sk.setParam(k.Rot[3], r.VZ)
}

// The axis is owned by the group that made the copy; the orientation follows
// from moving its points.
func (NormalNRotAA) forceNormal(*Sketch, *Entity, Quaternion) {}
