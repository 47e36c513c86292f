// Package expr implements the symbolic expressions that the sketch kernel
// hands to a nonlinear equation solver.
//
// An [Expr] is an immutable tree over parameters, constants and a small set
// of operators. Trees may share subtrees freely. Parameters are referenced by
// handle and resolved only at evaluation time, so the same tree can be
// evaluated against successive parameter assignments while a solver iterates.
package expr

import (
	"fmt"
	"math"

	"honnef.co/go/sketch/handle"
)

// Op identifies the operator of an expression node.
type Op uint8

const (
	OpParam Op = iota + 1
	OpConst
	OpPlus
	OpMinus
	OpTimes
	OpDiv
	OpNegate
	OpSqrt
	OpSquare
	OpSin
	OpCos
	OpASin
	OpACos
)

func (op Op) String() string {
	switch op {
	case OpParam:
		return "param"
	case OpConst:
		return "const"
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDiv:
		return "/"
	case OpNegate:
		return "neg"
	case OpSqrt:
		return "sqrt"
	case OpSquare:
		return "square"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpASin:
		return "asin"
	case OpACos:
		return "acos"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Arity returns the number of operands op takes.
func (op Op) Arity() int {
	switch op {
	case OpParam, OpConst:
		return 0
	case OpPlus, OpMinus, OpTimes, OpDiv:
		return 2
	default:
		return 1
	}
}

// Expr is a node of an expression tree.
type Expr struct {
	op    Op
	param handle.Param
	v     float64
	a, b  *Expr
}

// Param returns an expression referring to the parameter h.
func Param(h handle.Param) *Expr {
	return &Expr{op: OpParam, param: h}
}

// Const returns a constant expression.
func Const(v float64) *Expr {
	return &Expr{op: OpConst, v: v}
}

func unary(op Op, a *Expr) *Expr     { return &Expr{op: op, a: a} }
func binary(op Op, a, b *Expr) *Expr { return &Expr{op: op, a: a, b: b} }

func (e *Expr) Plus(o *Expr) *Expr  { return binary(OpPlus, e, o) }
func (e *Expr) Minus(o *Expr) *Expr { return binary(OpMinus, e, o) }
func (e *Expr) Times(o *Expr) *Expr { return binary(OpTimes, e, o) }
func (e *Expr) Div(o *Expr) *Expr   { return binary(OpDiv, e, o) }
func (e *Expr) Negate() *Expr       { return unary(OpNegate, e) }
func (e *Expr) Sqrt() *Expr         { return unary(OpSqrt, e) }
func (e *Expr) Square() *Expr       { return unary(OpSquare, e) }
func (e *Expr) Sin() *Expr          { return unary(OpSin, e) }
func (e *Expr) Cos() *Expr          { return unary(OpCos, e) }
func (e *Expr) ASin() *Expr         { return unary(OpASin, e) }
func (e *Expr) ACos() *Expr         { return unary(OpACos, e) }

// Op returns the operator of the node.
func (e *Expr) Op() Op { return e.op }

// ParamHandle returns the parameter of an [OpParam] node.
func (e *Expr) ParamHandle() handle.Param {
	if e.op != OpParam {
		panic(fmt.Sprintf("expr: ParamHandle called on %s node", e.op))
	}
	return e.param
}

// Value returns the value of an [OpConst] node.
func (e *Expr) Value() float64 {
	if e.op != OpConst {
		panic(fmt.Sprintf("expr: Value called on %s node", e.op))
	}
	return e.v
}

// Operands returns the node's operands. Missing operands are nil.
func (e *Expr) Operands() (a, b *Expr) { return e.a, e.b }

// IsConst reports whether e is a constant node with value v.
func (e *Expr) IsConst(v float64) bool { return e.op == OpConst && e.v == v }

// Eval evaluates the expression, looking up parameter values with value.
func (e *Expr) Eval(value func(handle.Param) float64) float64 {
	switch e.op {
	case OpParam:
		return value(e.param)
	case OpConst:
		return e.v
	case OpPlus:
		return e.a.Eval(value) + e.b.Eval(value)
	case OpMinus:
		return e.a.Eval(value) - e.b.Eval(value)
	case OpTimes:
		return e.a.Eval(value) * e.b.Eval(value)
	case OpDiv:
		return e.a.Eval(value) / e.b.Eval(value)
	case OpNegate:
		return -e.a.Eval(value)
	case OpSqrt:
		return math.Sqrt(e.a.Eval(value))
	case OpSquare:
		v := e.a.Eval(value)
		return v * v
	case OpSin:
		return math.Sin(e.a.Eval(value))
	case OpCos:
		return math.Cos(e.a.Eval(value))
	case OpASin:
		return math.Asin(e.a.Eval(value))
	case OpACos:
		return math.Acos(e.a.Eval(value))
	default:
		panic(fmt.Sprintf("expr: unexpected operator %s", e.op))
	}
}

// DependsOn reports whether p appears in e.
func (e *Expr) DependsOn(p handle.Param) bool {
	switch e.op.Arity() {
	case 0:
		return e.op == OpParam && e.param == p
	case 1:
		return e.a.DependsOn(p)
	default:
		return e.a.DependsOn(p) || e.b.DependsOn(p)
	}
}

// Params appends the distinct parameters of e to dst, in order of first
// appearance, and returns the extended slice.
func (e *Expr) Params(dst []handle.Param) []handle.Param {
	seen := make(map[handle.Param]struct{}, len(dst))
	for _, p := range dst {
		seen[p] = struct{}{}
	}
	var walk func(*Expr)
	walk = func(n *Expr) {
		switch n.op.Arity() {
		case 0:
			if n.op == OpParam {
				if _, ok := seen[n.param]; !ok {
					seen[n.param] = struct{}{}
					dst = append(dst, n.param)
				}
			}
		case 1:
			walk(n.a)
		default:
			walk(n.a)
			walk(n.b)
		}
	}
	walk(e)
	return dst
}

// Nodes returns the number of nodes in the tree, counting shared subtrees
// once per reference.
func (e *Expr) Nodes() int {
	switch e.op.Arity() {
	case 0:
		return 1
	case 1:
		return 1 + e.a.Nodes()
	default:
		return 1 + e.a.Nodes() + e.b.Nodes()
	}
}

// Equal reports whether e and o are structurally identical.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.op != o.op {
		return false
	}
	switch e.op.Arity() {
	case 0:
		if e.op == OpParam {
			return e.param == o.param
		}
		return e.v == o.v || (math.IsNaN(e.v) && math.IsNaN(o.v))
	case 1:
		return e.a.Equal(o.a)
	default:
		return e.a.Equal(o.a) && e.b.Equal(o.b)
	}
}

// Substitute returns e with every reference to from replaced by to.
func (e *Expr) Substitute(from, to handle.Param) *Expr {
	switch e.op.Arity() {
	case 0:
		if e.op == OpParam && e.param == from {
			return Param(to)
		}
		return e
	case 1:
		a := e.a.Substitute(from, to)
		if a == e.a {
			return e
		}
		return unary(e.op, a)
	default:
		a, b := e.a.Substitute(from, to), e.b.Substitute(from, to)
		if a == e.a && b == e.b {
			return e
		}
		return binary(e.op, a, b)
	}
}
