package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/sketch/handle"
)

// PartialWrt returns the partial derivative of e with respect to p.
//
// The result is not simplified; call [Expr.FoldConstants] on it before
// handing it to a solver that evaluates it many times.
func (e *Expr) PartialWrt(p handle.Param) *Expr {
	switch e.op {
	case OpParam:
		if e.param == p {
			return Const(1)
		}
		return Const(0)
	case OpConst:
		return Const(0)
	case OpPlus:
		return e.a.PartialWrt(p).Plus(e.b.PartialWrt(p))
	case OpMinus:
		return e.a.PartialWrt(p).Minus(e.b.PartialWrt(p))
	case OpTimes:
		da, db := e.a.PartialWrt(p), e.b.PartialWrt(p)
		return e.a.Times(db).Plus(e.b.Times(da))
	case OpDiv:
		// (a/b)' = (a'b - ab') / b²
		da, db := e.a.PartialWrt(p), e.b.PartialWrt(p)
		return da.Times(e.b).Minus(e.a.Times(db)).Div(e.b.Square())
	case OpNegate:
		return e.a.PartialWrt(p).Negate()
	case OpSqrt:
		return Const(0.5).Div(e.a.Sqrt()).Times(e.a.PartialWrt(p))
	case OpSquare:
		return Const(2).Times(e.a).Times(e.a.PartialWrt(p))
	case OpSin:
		return e.a.Cos().Times(e.a.PartialWrt(p))
	case OpCos:
		return e.a.Sin().Times(e.a.PartialWrt(p)).Negate()
	case OpASin:
		return Const(1).Div(Const(1).Minus(e.a.Square()).Sqrt()).Times(e.a.PartialWrt(p))
	case OpACos:
		return Const(-1).Div(Const(1).Minus(e.a.Square()).Sqrt()).Times(e.a.PartialWrt(p))
	default:
		panic(fmt.Sprintf("expr: unexpected operator %s", e.op))
	}
}

// FoldConstants returns an equivalent tree with constant subtrees evaluated
// and the identities x+0, x-0, x*1, x*0 and x/1 applied.
func (e *Expr) FoldConstants() *Expr {
	switch e.op.Arity() {
	case 0:
		return e
	case 1:
		a := e.a.FoldConstants()
		if a.op == OpConst {
			return Const(unary(e.op, a).Eval(nil))
		}
		if a == e.a {
			return e
		}
		return unary(e.op, a)
	}

	a, b := e.a.FoldConstants(), e.b.FoldConstants()
	if a.op == OpConst && b.op == OpConst {
		return Const(binary(e.op, a, b).Eval(nil))
	}
	switch e.op {
	case OpPlus:
		if a.IsConst(0) {
			return b
		}
		if b.IsConst(0) {
			return a
		}
	case OpMinus:
		if b.IsConst(0) {
			return a
		}
		if a.IsConst(0) {
			return b.Negate()
		}
	case OpTimes:
		if a.IsConst(0) || b.IsConst(0) {
			return Const(0)
		}
		if a.IsConst(1) {
			return b
		}
		if b.IsConst(1) {
			return a
		}
	case OpDiv:
		if b.IsConst(1) {
			return a
		}
		if a.IsConst(0) {
			return Const(0)
		}
	}
	if a == e.a && b == e.b {
		return e
	}
	return binary(e.op, a, b)
}

// String formats e in infix notation with explicit parentheses.
func (e *Expr) String() string {
	var sb strings.Builder
	e.format(&sb)
	return sb.String()
}

func (e *Expr) format(sb *strings.Builder) {
	switch e.op {
	case OpParam:
		sb.WriteString(e.param.String())
	case OpConst:
		if math.IsInf(e.v, 0) || math.IsNaN(e.v) || e.v < 0 {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatFloat(e.v, 'g', -1, 64))
			sb.WriteByte(')')
		} else {
			sb.WriteString(strconv.FormatFloat(e.v, 'g', -1, 64))
		}
	case OpPlus, OpMinus, OpTimes, OpDiv:
		sb.WriteByte('(')
		e.a.format(sb)
		sb.WriteByte(' ')
		sb.WriteString(e.op.String())
		sb.WriteByte(' ')
		e.b.format(sb)
		sb.WriteByte(')')
	case OpNegate:
		sb.WriteString("-")
		e.a.format(sb)
	default:
		sb.WriteString(e.op.String())
		sb.WriteByte('(')
		e.a.format(sb)
		sb.WriteByte(')')
	}
}
