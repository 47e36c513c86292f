package sketch_test

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/sketch"
	"honnef.co/go/sketch/handle"
)

// round drops rounding noise, including the sign of negative zero.
func round(v float64) float64 { return math.Round(v*100)/100 + 0 }

func ExampleInterpolateSpline() {
	square := []sketch.Vector{
		sketch.Vec(0, 0, 0),
		sketch.Vec(1, 0, 0),
		sketch.Vec(1, 1, 0),
		sketch.Vec(0, 1, 0),
	}
	for _, seg := range sketch.InterpolateSpline(square, sketch.Vector{}, sketch.Vector{}, true) {
		var pts []string
		for _, p := range seg.Ctrl {
			pts = append(pts, fmt.Sprintf("(%.2f, %.2f)", round(p.X), round(p.Y)))
		}
		fmt.Println(strings.Join(pts, " "))
	}
	// Output:
	// (0.00, 0.00) (0.25, -0.25) (0.75, -0.25) (1.00, 0.00)
	// (1.00, 0.00) (1.25, 0.25) (1.25, 0.75) (1.00, 1.00)
	// (1.00, 1.00) (0.75, 1.25) (0.25, 1.25) (0.00, 1.00)
	// (0.00, 1.00) (-0.25, 0.75) (-0.25, 0.25) (0.00, 0.00)
}

func ExampleSketch_Regenerate() {
	sk := sketch.NewSketch()
	sk.AddReferences()
	const drawing handle.Group = 2
	sk.AddGroup(sketch.Group{H: drawing, Name: "drawing"})

	const arc handle.Request = 10
	sk.AddRequest(sketch.Request{
		H:         arc,
		Type:      sketch.RequestArcOfCircle,
		Group:     drawing,
		Workplane: sketch.WorkplaneXY(),
	})
	sk.Regenerate()

	// Center, start and finish, in workplane coordinates.
	for i, p := range []sketch.Vector{sketch.Vec(0, 0, 0), sketch.Vec(2, 0, 0), sketch.Vec(0, 2, 0)} {
		sk.Entity(arc.Entity(1+i)).PointForceParamTo(sk, p)
	}
	sk.CalculateNumerical(drawing)

	e := sk.Entity(arc.Entity(0))
	fmt.Println(e.Type(), "radius", e.CircleGetRadiusNum(sk))
	fmt.Println(len(e.Beziers(sk)), "segment(s),", len(sk.GenerateEquations(drawing)), "equation(s)")
	// Output:
	// arc-of-circle radius 2
	// 1 segment(s), 1 equation(s)
}
