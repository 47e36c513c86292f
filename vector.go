package sketch

import (
	"fmt"
	"math"
)

// LengthEps is the tolerance used when comparing lengths and positions.
const LengthEps = 1e-6

// Vector is a point or direction in 3D space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vector {
	return Vector{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's coordinates.
func (v Vector) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vector) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Element returns the i-th coordinate, with 0, 1 and 2 selecting x, y and z.
func (v Vector) Element(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		violate("Vector.Element", "index %d out of range", i)
		return 0
	}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vector) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector.Hypot].
func (v Vector) Hypot2() float64 {
	return v.Dot(v)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector) Add(o Vector) Vector {
	return Vector{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector) Sub(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vector) Mul(f float64) Vector {
	return Vector{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vector) Div(f float64) Vector {
	return Vector{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with all signs flipped.
func (v Vector) Negate() Vector {
	return Vector{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the point halfway between v and o.
func (v Vector) Midpoint(o Vector) Vector {
	return v.Add(o).Mul(0.5)
}

// Distance returns the distance between the points v and o.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Hypot()
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vector) Normalize() Vector {
	return v.Mul(1.0 / v.Hypot())
}

// WithMagnitude returns a vector of magnitude s with the same direction as v.
// The zero vector is returned unchanged.
func (v Vector) WithMagnitude(s float64) Vector {
	m := v.Hypot()
	if m == 0 {
		// Only likely to happen with degenerate geometry.
		if s == 0 {
			return Vector{}
		}
		return v
	}
	return v.Mul(s / m)
}

// Equal reports whether v and o are within tol of each other.
func (v Vector) Equal(o Vector, tol float64) bool {
	d := v.Sub(o)
	if math.Abs(d.X) > tol || math.Abs(d.Y) > tol || math.Abs(d.Z) > tol {
		return false
	}
	return d.Hypot2() < tol*tol
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Normal returns one of two unit vectors perpendicular to v; which selects
// between them and must be 0 or 1. Normal(0), Normal(1) and v form a
// right-handed frame.
//
// The choice pivots on the smallest coordinate of v, except that the z axis
// maps to the x axis, so that entities in the XY plane get the familiar
// basis.
func (v Vector) Normal(which int) Vector {
	var n Vector
	xa, ya, za := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case v.Equal(Vec(0, 0, 1), LengthEps):
		n = Vec(1, 0, 0)
	case xa < ya && xa < za:
		n = Vec(0, v.Z, -v.Y)
	case ya < za:
		n = Vec(-v.Z, 0, v.X)
	default:
		n = Vec(v.Y, -v.X, 0)
	}
	switch which {
	case 0:
	case 1:
		n = v.Cross(n)
	default:
		violate("Vector.Normal", "unexpected normal index %d", which)
	}
	return n.WithMagnitude(1)
}

// InBasis returns the coordinates of v in the frame spanned by u, w and n,
// which must be orthonormal.
func (v Vector) InBasis(u, w, n Vector) Vector {
	return Vec(v.Dot(u), v.Dot(w), v.Dot(n))
}

// OutOfBasis is the inverse of [Vector.InBasis].
func (v Vector) OutOfBasis(u, w, n Vector) Vector {
	return u.Mul(v.X).Add(w.Mul(v.Y)).Add(n.Mul(v.Z))
}

// DistanceToLine returns the distance from the point v to the line through
// p0 with direction dp.
func (v Vector) DistanceToLine(p0, dp Vector) float64 {
	m := dp.Hypot()
	return v.Sub(p0).Cross(dp).Hypot() / m
}

// ClosestPointOnLine returns the point on the line through p0 with direction
// dp that is closest to v.
func (v Vector) ClosestPointOnLine(p0, dp Vector) Vector {
	t := v.Sub(p0).Dot(dp) / dp.Hypot2()
	return p0.Add(dp.Mul(t))
}

// ClosestPointBetweenLines returns the parameters ta and tb of the points
// a0 + ta·da and b0 + tb·db at which the two lines come closest.
func ClosestPointBetweenLines(a0, da, b0, db Vector) (ta, tb float64) {
	// Dot a0 + ta·da = b0 + tb·db against the normals of each direction
	// within the plane they span.
	dn := da.Cross(db)
	dna := dn.Cross(da)
	dnb := dn.Cross(db)
	tb = a0.Sub(b0).Dot(dna) / db.Dot(dna)
	ta = -a0.Sub(b0).Dot(dnb) / da.Dot(dnb)
	return ta, tb
}

// AtIntersectionOfLines returns the point where the line through a0 and a1
// meets the line through b0 and b1. If the lines are skew, the result is the
// point on the first line closest to the second and skew is true.
func AtIntersectionOfLines(a0, a1, b0, b1 Vector) (p Vector, skew bool) {
	da, db := a1.Sub(a0), b1.Sub(b0)
	ta, tb := ClosestPointBetweenLines(a0, da, b0, db)
	p = a0.Add(da.Mul(ta))
	skew = !p.Equal(b0.Add(db.Mul(tb)), LengthEps)
	return p, skew
}
