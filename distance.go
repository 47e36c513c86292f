package sketch

import (
	"honnef.co/go/sketch/expr"
	"honnef.co/go/sketch/handle"
)

// Distance is a free scalar, such as the radius of a circle.
type Distance struct {
	Param handle.Param
}

// DistanceNCopy is a locked numeric copy of a distance.
type DistanceNCopy struct {
	Base float64
}

var (
	_ distanceKind = Distance{}
	_ distanceKind = DistanceNCopy{}
)

func (Distance) Type() Type      { return TypeDistance }
func (DistanceNCopy) Type() Type { return TypeDistanceNCopy }

func (k Distance) Params() []handle.Param    { return []handle.Param{k.Param} }
func (DistanceNCopy) Params() []handle.Param { return nil }

func (k Distance) distanceNum(c calc[float64], e *Entity) float64 { return c.param(k.Param) }
func (k Distance) distanceExprs(c calc[*expr.Expr], e *Entity) *expr.Expr {
	return c.param(k.Param)
}

func (k DistanceNCopy) distanceNum(c calc[float64], e *Entity) float64 { return c.constant(k.Base) }
func (k DistanceNCopy) distanceExprs(c calc[*expr.Expr], e *Entity) *expr.Expr {
	return c.constant(k.Base)
}

func (k Distance) forceDistance(sk *Sketch, e *Entity, v float64) { sk.setParam(k.Param, v) }

func (DistanceNCopy) forceDistance(*Sketch, *Entity, float64) {}
