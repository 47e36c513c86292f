package sketch

import (
	"fmt"

	"honnef.co/go/sketch/handle"
)

// System is what a [Solver] is handed: the equations of one group and the
// parameters they mention.
type System struct {
	Group handle.Group
	// Params are the unknowns: the parameters the group solves for. The
	// solver writes their values and Free flags.
	Params []Param
	// Fixed are the other parameters the equations refer to, at their
	// current values.
	Fixed     []Param
	Equations []Equation
}

// Value returns the current value of the parameter h, which must be in
// Params or Fixed.
func (s *System) Value(h handle.Param) (float64, bool) {
	for _, ps := range [][]Param{s.Params, s.Fixed} {
		for _, p := range ps {
			if p.H == h {
				return p.Val, true
			}
		}
	}
	return 0, false
}

// Solver finds parameter values that satisfy a system of equations.
type Solver interface {
	Solve(sys *System) error
}

// System assembles the system of group g: the equations emitted by its
// entities followed by extra, typically the equations of its constraints.
func (sk *Sketch) System(g handle.Group, extra ...Equation) *System {
	sys := &System{Group: g}
	sys.Equations = append(sk.GenerateEquations(g), extra...)

	unknown := make(map[handle.Param]bool)
	for _, p := range sk.Params.All() {
		if !p.Known && sk.paramGroup(p.H) == g {
			unknown[p.H] = true
			sys.Params = append(sys.Params, *p)
		}
	}
	var mentioned []handle.Param
	for _, eq := range sys.Equations {
		mentioned = eq.E.Params(mentioned)
	}
	for _, h := range mentioned {
		if !unknown[h] {
			sys.Fixed = append(sys.Fixed, *sk.Param(h))
		}
	}
	return sys
}

// Solve solves group g with s and applies the result: parameter values and
// Free flags are written back and the group's entities are refreshed. On
// failure, the sketch is left unchanged.
func (sk *Sketch) Solve(g handle.Group, s Solver, extra ...Equation) error {
	sys := sk.System(g, extra...)
	if err := s.Solve(sys); err != nil {
		err = fmt.Errorf("solving group %s: %w", g, err)
		Logger().Warn("solve failed", "group", g, "error", err)
		return err
	}
	for _, p := range sys.Params {
		dst := sk.Param(p.H)
		dst.Val = p.Val
		dst.Free = p.Free
	}
	sk.CalculateNumerical(g)
	return nil
}
