package sketch

import (
	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// Faces are planar faces of solids that constraints can refer to. Each
// variant produces a unit normal and a point on the plane, applying the
// same transforms as the corresponding point variants to a numeric base.

// FaceNormalPt is the plane with normal BaseNormal through the point entity
// Point.
type FaceNormalPt struct {
	BaseNormal Vector
	Point      handle.Entity
}

// FaceXProd is the plane through Base whose normal is the cross product of
// the parameter vector Vec with BaseNormal, as produced by extruding a line.
type FaceXProd struct {
	BaseNormal Vector
	Base       Vector
	Vec        [3]handle.Param
}

// FaceNTrans is a face translated TimesApplied times by Trans.
type FaceNTrans struct {
	BaseNormal   Vector
	Base         Vector
	Trans        [3]handle.Param
	TimesApplied int
}

// FaceNRotTrans is a face rotated by Rot, then translated by Trans.
type FaceNRotTrans struct {
	BaseNormal Vector
	Base       Vector
	Trans      [3]handle.Param
	Rot        [4]handle.Param
}

// FaceNRotAA is a face rotated TimesApplied times about the line through
// Center along Axis.
type FaceNRotAA struct {
	BaseNormal   Vector
	Base         Vector
	Center       [3]handle.Param
	Angle        handle.Param
	Axis         [3]handle.Param
	TimesApplied int
}

// FaceRotNormalPt is the plane through the point entity Point whose normal is
// BaseNormal rotated about Axis.
type FaceRotNormalPt struct {
	BaseNormal   Vector
	Point        handle.Entity
	Angle        handle.Param
	Axis         [3]handle.Param
	TimesApplied int
}

// FaceNRotAxisTrans is a face moved by the screw motion of
// [PointNRotAxisTrans].
type FaceNRotAxisTrans struct {
	BaseNormal   Vector
	Base         Vector
	Center       [3]handle.Param
	Angle        handle.Param
	Axis         [3]handle.Param
	Dist         handle.Param
	TimesApplied int
}

var (
	_ faceKind = FaceNormalPt{}
	_ faceKind = FaceXProd{}
	_ faceKind = FaceNTrans{}
	_ faceKind = FaceNRotTrans{}
	_ faceKind = FaceNRotAA{}
	_ faceKind = FaceRotNormalPt{}
	_ faceKind = FaceNRotAxisTrans{}
)

func (FaceNormalPt) Type() Type      { return TypeFaceNormalPt }
func (FaceXProd) Type() Type         { return TypeFaceXProd }
func (FaceNTrans) Type() Type        { return TypeFaceNTrans }
func (FaceNRotTrans) Type() Type     { return TypeFaceNRotTrans }
func (FaceNRotAA) Type() Type        { return TypeFaceNRotAA }
func (FaceRotNormalPt) Type() Type   { return TypeFaceRotNormalPt }
func (FaceNRotAxisTrans) Type() Type { return TypeFaceNRotAxisTrans }

func (FaceNormalPt) Params() []handle.Param { return nil }
func (k FaceXProd) Params() []handle.Param  { return k.Vec[:] }
func (k FaceNTrans) Params() []handle.Param { return k.Trans[:] }
func (k FaceNRotTrans) Params() []handle.Param {
	return concatParams(k.Trans[:], k.Rot[:])
}
func (k FaceNRotAA) Params() []handle.Param {
	return concatParams(k.Center[:], []handle.Param{k.Angle}, k.Axis[:])
}
func (k FaceRotNormalPt) Params() []handle.Param {
	return concatParams([]handle.Param{k.Angle}, k.Axis[:])
}
func (k FaceNRotAxisTrans) Params() []handle.Param {
	return concatParams(k.Center[:], []handle.Param{k.Angle}, k.Axis[:], []handle.Param{k.Dist})
}

func unit[S any](c calc[S], v vec[S]) vec[S] {
	return c.withMagnitude(v, c.constant(1))
}

func faceNormalPt[S any](c calc[S], k FaceNormalPt) (n, p vec[S]) {
	return unit(c, c.cvec(k.BaseNormal)), c.pointAt(k.Point)
}

func faceXProd[S any](c calc[S], k FaceXProd) (n, p vec[S]) {
	return unit(c, c.cross(c.pvec(k.Vec), c.cvec(k.BaseNormal))), c.cvec(k.Base)
}

func faceNTrans[S any](c calc[S], k FaceNTrans) (n, p vec[S]) {
	p = pointNTrans(c, PointNTrans{Base: k.Base, Trans: k.Trans, TimesApplied: k.TimesApplied})
	return unit(c, c.cvec(k.BaseNormal)), p
}

func faceNRotTrans[S any](c calc[S], k FaceNRotTrans) (n, p vec[S]) {
	n = c.rotate(c.pquat(k.Rot), c.cvec(k.BaseNormal))
	p = pointNRotTrans(c, PointNRotTrans{Base: k.Base, Trans: k.Trans, Rot: k.Rot})
	return unit(c, n), p
}

func faceNRotAA[S any](c calc[S], k FaceNRotAA) (n, p vec[S]) {
	n = c.rotate(c.axisAngle(k.Angle, k.Axis, k.TimesApplied), c.cvec(k.BaseNormal))
	p = pointNRotAA(c, PointNRotAA{
		Base:         k.Base,
		Center:       k.Center,
		Angle:        k.Angle,
		Axis:         k.Axis,
		TimesApplied: k.TimesApplied,
	})
	return unit(c, n), p
}

func faceRotNormalPt[S any](c calc[S], k FaceRotNormalPt) (n, p vec[S]) {
	n = c.rotate(c.axisAngle(k.Angle, k.Axis, k.TimesApplied), c.cvec(k.BaseNormal))
	return unit(c, n), c.pointAt(k.Point)
}

func faceNRotAxisTrans[S any](c calc[S], k FaceNRotAxisTrans) (n, p vec[S]) {
	n = c.rotate(c.axisAngle(k.Angle, k.Axis, k.TimesApplied), c.cvec(k.BaseNormal))
	p = pointNRotAxisTrans(c, PointNRotAxisTrans{
		Base:         k.Base,
		Center:       k.Center,
		Angle:        k.Angle,
		Axis:         k.Axis,
		Dist:         k.Dist,
		TimesApplied: k.TimesApplied,
	})
	return unit(c, n), p
}

func (k FaceNormalPt) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceNormalPt(c, k)
}
func (k FaceNormalPt) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceNormalPt(c, k)
}

func (k FaceXProd) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceXProd(c, k)
}
func (k FaceXProd) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceXProd(c, k)
}

func (k FaceNTrans) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceNTrans(c, k)
}
func (k FaceNTrans) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceNTrans(c, k)
}

func (k FaceNRotTrans) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceNRotTrans(c, k)
}
func (k FaceNRotTrans) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceNRotTrans(c, k)
}

func (k FaceNRotAA) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceNRotAA(c, k)
}
func (k FaceNRotAA) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceNRotAA(c, k)
}

func (k FaceRotNormalPt) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceRotNormalPt(c, k)
}
func (k FaceRotNormalPt) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceRotNormalPt(c, k)
}

func (k FaceNRotAxisTrans) faceNum(c calc[float64], e *Entity) (n, p vec[float64]) {
	return faceNRotAxisTrans(c, k)
}
func (k FaceNRotAxisTrans) faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr]) {
	return faceNRotAxisTrans(c, k)
}
