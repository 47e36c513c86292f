// Package sketch is the geometric core of a parametric CAD sketcher. It
// represents the primitives of a sketch as entities whose positions are
// functions of scalar parameters, evaluates those functions both numerically
// and symbolically, emits the equations some entities imply on their own, and
// turns curves into exact rational Béziers and polylines.
//
// Solving the equations is not part of this package. A [Solver] is handed a
// [System] per group and writes the solved parameter values back.
//
// # Sketches, requests and entities
//
// A [Sketch] owns everything by handle (see package
// [honnef.co/go/sketch/handle]): groups, requests, entities, parameters and
// constraints, each in a [Table]. Objects never point at each other.
//
// Users place [Request] values: a line, an arc, a cubic spline and so on.
// [Sketch.Regenerate] turns each request into its entities and their
// parameters, with handles derived from the request's own handle so that they
// survive regeneration. Step-and-repeat groups (see [GroupTranslate],
// [GroupRotate] and [GroupHelix]) add transformed copies of an earlier
// group's entities via [Sketch.CopyEntity].
//
// # Entity families
//
// Each [Entity] carries a [Kind], one struct per variant. Variants fall into
// families:
//
//   - points, such as [PointIn3D], [PointIn2D] and [PointNRotAA]
//   - normals (orientations stored as quaternions), such as [NormalIn3D]
//   - distances: [Distance] and [DistanceNCopy]
//   - faces, such as [FaceNormalPt]
//   - structural entities built from the above, such as [LineSegment],
//     [ArcOfCircle] and [Cubic]
//
// Family methods like [Entity.PointGetNum] panic with a [*ContractViolation]
// when called on an entity of another family.
//
// # Numeric and symbolic evaluation
//
// Every family has a numeric and a symbolic form of its accessors, for
// example [Entity.PointGetNum] returning a [Vector] and [Entity.PointGetExprs]
// returning an [ExprVector] of [expr.Expr] trees over parameter handles. Both
// forms are computed by the same code, instantiated for float64 and for
// expression trees, so evaluating the symbolic result at the current
// parameter values reproduces the numeric one.
//
// The Force methods, like [Entity.PointForceTo], go the other way: they write
// parameters so that the entity lands at a given value, as far as its
// transform allows.
//
// # Curves
//
// [InterpolateSpline] builds C² cubic splines through a list of points by
// solving a small [BandedMatrix] per axis. Circles and arcs become exact
// rational quadratics. [Entity.Beziers] and [Entity.Edges] cache an entity's
// curves and their polyline approximation, which depends on the chord
// tolerance of the sketch's [Config].
package sketch
