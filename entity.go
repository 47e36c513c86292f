package sketch

import (
	"fmt"

	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// Type identifies the variant of an entity.
type Type uint8

const (
	TypePointIn3D Type = iota + 1
	TypePointIn2D
	TypePointNCopy
	TypePointNTrans
	TypePointNRotTrans
	TypePointNRotAA
	TypePointNRotAxisTrans

	TypeNormalIn3D
	TypeNormalIn2D
	TypeNormalNCopy
	TypeNormalNRot
	TypeNormalNRotAA

	TypeDistance
	TypeDistanceNCopy

	TypeFaceNormalPt
	TypeFaceXProd
	TypeFaceNTrans
	TypeFaceNRotTrans
	TypeFaceNRotAA
	TypeFaceRotNormalPt
	TypeFaceNRotAxisTrans

	TypeWorkplane
	TypeLineSegment
	TypeCubic
	TypeCubicPeriodic
	TypeCircle
	TypeArcOfCircle
	TypeTTFText
	TypeImage
)

var typeNames = [...]string{
	TypePointIn3D:          "point-in-3d",
	TypePointIn2D:          "point-in-2d",
	TypePointNCopy:         "point-n-copy",
	TypePointNTrans:        "point-n-trans",
	TypePointNRotTrans:     "point-n-rot-trans",
	TypePointNRotAA:        "point-n-rot-aa",
	TypePointNRotAxisTrans: "point-n-rot-axis-trans",
	TypeNormalIn3D:         "normal-in-3d",
	TypeNormalIn2D:         "normal-in-2d",
	TypeNormalNCopy:        "normal-n-copy",
	TypeNormalNRot:         "normal-n-rot",
	TypeNormalNRotAA:       "normal-n-rot-aa",
	TypeDistance:           "distance",
	TypeDistanceNCopy:      "distance-n-copy",
	TypeFaceNormalPt:       "face-normal-pt",
	TypeFaceXProd:          "face-xprod",
	TypeFaceNTrans:         "face-n-trans",
	TypeFaceNRotTrans:      "face-n-rot-trans",
	TypeFaceNRotAA:         "face-n-rot-aa",
	TypeFaceRotNormalPt:    "face-rot-normal-pt",
	TypeFaceNRotAxisTrans:  "face-n-rot-axis-trans",
	TypeWorkplane:          "workplane",
	TypeLineSegment:        "line-segment",
	TypeCubic:              "cubic",
	TypeCubicPeriodic:      "cubic-periodic",
	TypeCircle:             "circle",
	TypeArcOfCircle:        "arc-of-circle",
	TypeTTFText:            "ttf-text",
	TypeImage:              "image",
}

func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

func (t Type) IsPoint() bool    { return t >= TypePointIn3D && t <= TypePointNRotAxisTrans }
func (t Type) IsNormal() bool   { return t >= TypeNormalIn3D && t <= TypeNormalNRotAA }
func (t Type) IsDistance() bool { return t == TypeDistance || t == TypeDistanceNCopy }
func (t Type) IsFace() bool     { return t >= TypeFaceNormalPt && t <= TypeFaceNRotAxisTrans }

// IsCircle reports whether t is a circle or an arc of a circle.
func (t Type) IsCircle() bool { return t == TypeCircle || t == TypeArcOfCircle }

// Kind is the variant payload of an [Entity]. Each variant is its own struct
// carrying exactly the fields its type needs.
type Kind interface {
	Type() Type
	// Params returns the parameters the variant owns or reads, in slot order.
	Params() []handle.Param
}

// Entity is a geometric primitive of the sketch. Entities refer to each
// other and to their parameters only by handle.
type Entity struct {
	H            handle.Entity
	Group        handle.Group
	Workplane    handle.Entity
	Construction bool
	// Anchor is the point a normal is displayed at. It has no effect on
	// geometry.
	Anchor handle.Entity
	Kind   Kind

	// Numeric state, refreshed by CalculateNumerical.
	ActPoint      Vector
	ActNormal     Quaternion
	ActDistance   float64
	ActFaceNormal Vector

	curves curveCache
}

func (e *Entity) Type() Type { return e.Kind.Type() }

func (e *Entity) IsPoint() bool    { return e.Type().IsPoint() }
func (e *Entity) IsNormal() bool   { return e.Type().IsNormal() }
func (e *Entity) IsDistance() bool { return e.Type().IsDistance() }
func (e *Entity) IsFace() bool     { return e.Type().IsFace() }
func (e *Entity) IsCircle() bool   { return e.Type().IsCircle() }

// IsWorkplane reports whether e is a workplane.
func (e *Entity) IsWorkplane() bool { return e.Type() == TypeWorkplane }

// Params returns the parameters of e in slot order.
func (e *Entity) Params() []handle.Param { return e.Kind.Params() }

func (e *Entity) String() string {
	return fmt.Sprintf("%s(%s)", e.Type(), e.H)
}

type pointKind interface {
	Kind
	pointNum(c calc[float64], e *Entity) vec[float64]
	pointExprs(c calc[*expr.Expr], e *Entity) vec[*expr.Expr]
	forcePoint(sk *Sketch, e *Entity, p Vector)
}

type normalKind interface {
	Kind
	normalNum(c calc[float64], e *Entity) quat[float64]
	normalExprs(c calc[*expr.Expr], e *Entity) quat[*expr.Expr]
	forceNormal(sk *Sketch, e *Entity, q Quaternion)
}

type distanceKind interface {
	Kind
	distanceNum(c calc[float64], e *Entity) float64
	distanceExprs(c calc[*expr.Expr], e *Entity) *expr.Expr
	forceDistance(sk *Sketch, e *Entity, v float64)
}

type faceKind interface {
	Kind
	faceNum(c calc[float64], e *Entity) (n, p vec[float64])
	faceExprs(c calc[*expr.Expr], e *Entity) (n, p vec[*expr.Expr])
}

func (e *Entity) pointKind(op string) pointKind {
	k, ok := e.Kind.(pointKind)
	if !ok {
		violate(op, "%s is not a point", e)
	}
	return k
}

func (e *Entity) normalKind(op string) normalKind {
	k, ok := e.Kind.(normalKind)
	if !ok {
		violate(op, "%s is not a normal", e)
	}
	return k
}

func (e *Entity) distanceKind(op string) distanceKind {
	k, ok := e.Kind.(distanceKind)
	if !ok {
		violate(op, "%s is not a distance", e)
	}
	return k
}

func (e *Entity) faceKind(op string) faceKind {
	k, ok := e.Kind.(faceKind)
	if !ok {
		violate(op, "%s is not a face", e)
	}
	return k
}

// CalculateNumerical refreshes the entity's numeric state from the current
// parameter values and drops its cached curves.
func (e *Entity) CalculateNumerical(sk *Sketch) {
	switch {
	case e.IsPoint():
		e.ActPoint = e.PointGetNum(sk)
	case e.IsNormal():
		e.ActNormal = e.NormalGetNum(sk)
	case e.IsDistance():
		e.ActDistance = e.DistanceGetNum(sk)
	case e.IsFace():
		e.ActPoint = e.FaceGetPointNum(sk)
		e.ActFaceNormal = e.FaceGetNormalNum(sk)
	}
	e.curves = curveCache{}
}

// HasFreeParams reports whether any parameter the entity depends on was
// found to be free by the last solve. Structural entities ask their points,
// normal and distance.
func (e *Entity) HasFreeParams(sk *Sketch) bool {
	for _, p := range e.Params() {
		if sk.Param(p).Free {
			return true
		}
	}
	for _, h := range e.children() {
		if sk.Entity(h).HasFreeParams(sk) {
			return true
		}
	}
	return false
}

// children returns the entities a structural entity is defined by.
func (e *Entity) children() []handle.Entity {
	switch k := e.Kind.(type) {
	case Workplane:
		return []handle.Entity{k.Origin, k.Normal}
	case LineSegment:
		return k.Point[:]
	case Cubic:
		return k.Point
	case CubicPeriodic:
		return k.Point
	case Circle:
		return []handle.Entity{k.Center, k.Normal, k.Distance}
	case ArcOfCircle:
		return append([]handle.Entity{k.Normal}, k.Point[:]...)
	case TTFText:
		return append([]handle.Entity{k.Normal}, k.Point[:]...)
	case Image:
		return append([]handle.Entity{k.Normal}, k.Point[:]...)
	case FaceNormalPt:
		return []handle.Entity{k.Point}
	case FaceRotNormalPt:
		return []handle.Entity{k.Point}
	default:
		return nil
	}
}

// PointGetNum returns the position of a point.
func (e *Entity) PointGetNum(sk *Sketch) Vector {
	return Vector(e.pointKind("PointGetNum").pointNum(numeric(sk), e))
}

// PointGetExprs returns the position of a point as expressions.
func (e *Entity) PointGetExprs(sk *Sketch) ExprVector {
	return ExprVector(e.pointKind("PointGetExprs").pointExprs(symbolic(sk), e))
}

// PointForceTo moves the point to p, as far as its transform allows, by
// writing its parameters.
func (e *Entity) PointForceTo(sk *Sketch, p Vector) {
	e.pointKind("PointForceTo").forcePoint(sk, e, p)
}

// NormalGetNum returns the orientation of a normal.
func (e *Entity) NormalGetNum(sk *Sketch) Quaternion {
	return Quaternion(e.normalKind("NormalGetNum").normalNum(numeric(sk), e))
}

// NormalGetExprs returns the orientation of a normal as expressions.
func (e *Entity) NormalGetExprs(sk *Sketch) ExprQuaternion {
	return ExprQuaternion(e.normalKind("NormalGetExprs").normalExprs(symbolic(sk), e))
}

// NormalForceTo sets the orientation of a normal, if it owns parameters that
// allow it.
func (e *Entity) NormalForceTo(sk *Sketch, q Quaternion) {
	e.normalKind("NormalForceTo").forceNormal(sk, e, q)
}

func (e *Entity) NormalU(sk *Sketch) Vector { return e.NormalGetNum(sk).RotationU() }
func (e *Entity) NormalV(sk *Sketch) Vector { return e.NormalGetNum(sk).RotationV() }
func (e *Entity) NormalN(sk *Sketch) Vector { return e.NormalGetNum(sk).RotationN() }

func (e *Entity) NormalExprsU(sk *Sketch) ExprVector { return e.NormalGetExprs(sk).RotationU() }
func (e *Entity) NormalExprsV(sk *Sketch) ExprVector { return e.NormalGetExprs(sk).RotationV() }
func (e *Entity) NormalExprsN(sk *Sketch) ExprVector { return e.NormalGetExprs(sk).RotationN() }

// DistanceGetNum returns the value of a distance.
func (e *Entity) DistanceGetNum(sk *Sketch) float64 {
	return e.distanceKind("DistanceGetNum").distanceNum(numeric(sk), e)
}

// DistanceGetExpr returns the value of a distance as an expression.
func (e *Entity) DistanceGetExpr(sk *Sketch) *expr.Expr {
	return e.distanceKind("DistanceGetExpr").distanceExprs(symbolic(sk), e)
}

// DistanceForceTo sets the value of a distance, unless it is a copy.
func (e *Entity) DistanceForceTo(sk *Sketch, v float64) {
	e.distanceKind("DistanceForceTo").forceDistance(sk, e, v)
}

// FaceGetNormalNum returns the unit normal of a face.
func (e *Entity) FaceGetNormalNum(sk *Sketch) Vector {
	n, _ := e.faceKind("FaceGetNormalNum").faceNum(numeric(sk), e)
	return Vector(n)
}

// FaceGetNormalExprs returns the unit normal of a face as expressions.
func (e *Entity) FaceGetNormalExprs(sk *Sketch) ExprVector {
	n, _ := e.faceKind("FaceGetNormalExprs").faceExprs(symbolic(sk), e)
	return ExprVector(n)
}

// FaceGetPointNum returns a point on the face's plane.
func (e *Entity) FaceGetPointNum(sk *Sketch) Vector {
	_, p := e.faceKind("FaceGetPointNum").faceNum(numeric(sk), e)
	return Vector(p)
}

// FaceGetPointExprs returns a point on the face's plane as expressions.
func (e *Entity) FaceGetPointExprs(sk *Sketch) ExprVector {
	_, p := e.faceKind("FaceGetPointExprs").faceExprs(symbolic(sk), e)
	return ExprVector(p)
}
