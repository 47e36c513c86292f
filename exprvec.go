package sketch

import (
	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// ExprVector is a vector of symbolic expressions.
type ExprVector struct {
	X *expr.Expr
	Y *expr.Expr
	Z *expr.Expr
}

// ExprQuaternion is a quaternion of symbolic expressions.
type ExprQuaternion struct {
	W  *expr.Expr
	VX *expr.Expr
	VY *expr.Expr
	VZ *expr.Expr
}

// ExprVec returns the constant vector v.
func ExprVec(v Vector) ExprVector {
	return ExprVector(symbolicOps.cvec(v))
}

// ExprVecParams returns the vector of the three parameters.
func ExprVecParams(x, y, z handle.Param) ExprVector {
	return ExprVector{expr.Param(x), expr.Param(y), expr.Param(z)}
}

func (v ExprVector) Plus(o ExprVector) ExprVector {
	return ExprVector(symbolicOps.plus(vec[*expr.Expr](v), vec[*expr.Expr](o)))
}

func (v ExprVector) Minus(o ExprVector) ExprVector {
	return ExprVector(symbolicOps.minus(vec[*expr.Expr](v), vec[*expr.Expr](o)))
}

func (v ExprVector) ScaledBy(s *expr.Expr) ExprVector {
	return ExprVector(symbolicOps.scaled(vec[*expr.Expr](v), s))
}

func (v ExprVector) Dot(o ExprVector) *expr.Expr {
	return symbolicOps.dot(vec[*expr.Expr](v), vec[*expr.Expr](o))
}

func (v ExprVector) Cross(o ExprVector) ExprVector {
	return ExprVector(symbolicOps.cross(vec[*expr.Expr](v), vec[*expr.Expr](o)))
}

func (v ExprVector) Magnitude() *expr.Expr {
	return symbolicOps.magnitude(vec[*expr.Expr](v))
}

func (v ExprVector) WithMagnitude(s *expr.Expr) ExprVector {
	return ExprVector(symbolicOps.withMagnitude(vec[*expr.Expr](v), s))
}

// Eval evaluates all three components.
func (v ExprVector) Eval(value func(handle.Param) float64) Vector {
	return Vector{v.X.Eval(value), v.Y.Eval(value), v.Z.Eval(value)}
}

// ExprQuat returns the constant quaternion q.
func ExprQuat(q Quaternion) ExprQuaternion {
	return ExprQuaternion(symbolicOps.cquat(q))
}

func (q ExprQuaternion) RotationU() ExprVector {
	return ExprVector(symbolicOps.rotationU(quat[*expr.Expr](q)))
}

func (q ExprQuaternion) RotationV() ExprVector {
	return ExprVector(symbolicOps.rotationV(quat[*expr.Expr](q)))
}

func (q ExprQuaternion) RotationN() ExprVector {
	return ExprVector(symbolicOps.rotationN(quat[*expr.Expr](q)))
}

func (q ExprQuaternion) Rotate(p ExprVector) ExprVector {
	return ExprVector(symbolicOps.rotate(quat[*expr.Expr](q), vec[*expr.Expr](p)))
}

func (q ExprQuaternion) Times(o ExprQuaternion) ExprQuaternion {
	return ExprQuaternion(symbolicOps.qtimes(quat[*expr.Expr](q), quat[*expr.Expr](o)))
}

func (q ExprQuaternion) Magnitude() *expr.Expr {
	return symbolicOps.qmagnitude(quat[*expr.Expr](q))
}

// Eval evaluates all four components.
func (q ExprQuaternion) Eval(value func(handle.Param) float64) Quaternion {
	return Quaternion{q.W.Eval(value), q.VX.Eval(value), q.VY.Eval(value), q.VZ.Eval(value)}
}
