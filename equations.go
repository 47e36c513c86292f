package sketch

import (
	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// Equation is an expression that the solver drives to zero.
type Equation struct {
	H handle.Equation
	E *expr.Expr
}

// GenerateEquations appends the equations implied by the entity itself to
// dst and returns the extended slice. Only unit normals, arcs in a workplane
// and text or image rectangles in a workplane emit equations; their
// handles are [handle.Entity.Equation] of the entity.
func (e *Entity) GenerateEquations(sk *Sketch, dst []Equation) []Equation {
	switch k := e.Kind.(type) {
	case NormalIn3D:
		q := e.NormalGetExprs(sk)
		dst = append(dst, Equation{e.H.Equation(0), q.Magnitude().Minus(expr.Const(1))})

	case ArcOfCircle:
		if _, ok := sk.Entity(k.Point[0]).Kind.(PointIn2D); !ok {
			break
		}
		if sk.endpointsCoincident(e.Group, k.Point[1], k.Point[2]) {
			// Equal radii would be redundant with the coincidence and leave
			// the system overconstrained.
			Logger().Debug("skipping arc radius equation", "entity", e.H)
			break
		}
		c := symbolic(sk)
		ra := pointDistance(c, e.Workplane, k.Point[0], k.Point[1])
		rb := pointDistance(c, e.Workplane, k.Point[0], k.Point[2])
		dst = append(dst, Equation{e.H.Equation(0), ra.Minus(rb)})

	case TTFText:
		dst = rectangleEquations(sk, e, k.Point, k.AspectRatio, dst)
	case Image:
		dst = rectangleEquations(sk, e, k.Point, k.AspectRatio, dst)
	}
	return dst
}

// rectangleEquations pins the top corners of a text or image rectangle to
// the baseline from pts[0] to pts[1], raised by the baseline's length over
// the aspect ratio. They are written in workplane coordinates.
func rectangleEquations(sk *Sketch, e *Entity, pts [4]handle.Entity, aspect float64, dst []Equation) []Equation {
	if _, ok := sk.Entity(pts[0]).Kind.(PointIn2D); !ok {
		return dst
	}
	var p [4]ExprVector
	for i, h := range pts {
		p[i] = sk.Entity(h).PointGetExprsInWorkplane(sk, e.Workplane)
	}
	a, b, c, d := p[0], p[1], p[2], p[3]
	ab := b.Minus(a)
	// Rotate the baseline by 90° in the plane.
	ar := expr.Const(aspect)
	h := ExprVector{ab.Y.Negate().Div(ar), ab.X.Div(ar), expr.Const(0)}

	c0 := c.Minus(b.Plus(h))
	d0 := d.Minus(a.Plus(h))
	return append(dst,
		Equation{e.H.Equation(0), c0.X},
		Equation{e.H.Equation(1), c0.Y},
		Equation{e.H.Equation(2), d0.X},
		Equation{e.H.Equation(3), d0.Y},
	)
}

// endpointsCoincident reports whether group g has a points-coincident
// constraint between a and b, in either order.
func (sk *Sketch) endpointsCoincident(g handle.Group, a, b handle.Entity) bool {
	for _, c := range sk.Constraints.All() {
		if c.Group != g || c.Type != PointsCoincident {
			continue
		}
		if (c.PtA == a && c.PtB == b) || (c.PtA == b && c.PtB == a) {
			return true
		}
	}
	return false
}

// GenerateEquations returns the equations emitted by the entities of group
// g, in table order.
func (sk *Sketch) GenerateEquations(g handle.Group) []Equation {
	var out []Equation
	for _, e := range sk.Entities.All() {
		if e.Group == g {
			out = e.GenerateEquations(sk, out)
		}
	}
	return out
}
