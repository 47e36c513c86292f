package sketch

import (
	"fmt"
	"math"
)

// Quaternion represents an orientation. Normals are stored as unit
// quaternions; the rotation maps the x, y and z axes to the normal's u, v and
// n directions.
type Quaternion struct {
	W  float64
	VX float64
	VY float64
	VZ float64
}

// IdentityQuaternion is the rotation that does nothing.
var IdentityQuaternion = Quaternion{W: 1}

func Quat(w, vx, vy, vz float64) Quaternion {
	return Quaternion{W: w, VX: vx, VY: vy, VZ: vz}
}

// QuaternionFromUV returns the rotation that maps the x and y axes to the
// orthonormal vectors u and v.
func QuaternionFromUV(u, v Vector) Quaternion {
	n := u.Cross(v)

	var q Quaternion
	tr := 1 + u.X + v.Y + n.Z
	if tr > 1e-4 {
		s := 2 * math.Sqrt(tr)
		q = Quaternion{
			W:  s / 4,
			VX: (v.Z - n.Y) / s,
			VY: (n.X - u.Z) / s,
			VZ: (u.Y - v.X) / s,
		}
	} else if u.X > v.Y && u.X > n.Z {
		s := 2 * math.Sqrt(1+u.X-v.Y-n.Z)
		q = Quaternion{
			W:  (v.Z - n.Y) / s,
			VX: s / 4,
			VY: (u.Y + v.X) / s,
			VZ: (n.X + u.Z) / s,
		}
	} else if v.Y > n.Z {
		s := 2 * math.Sqrt(1-u.X+v.Y-n.Z)
		q = Quaternion{
			W:  (n.X - u.Z) / s,
			VX: (u.Y + v.X) / s,
			VY: s / 4,
			VZ: (v.Z + n.Y) / s,
		}
	} else {
		s := 2 * math.Sqrt(1-u.X-v.Y+n.Z)
		q = Quaternion{
			W:  (u.Y - v.X) / s,
			VX: (n.X + u.Z) / s,
			VY: (v.Z + n.Y) / s,
			VZ: s / 4,
		}
	}
	return q.WithMagnitude(1)
}

// QuaternionFromAxisAngle returns the rotation by theta radians about axis.
func QuaternionFromAxisAngle(axis Vector, theta float64) Quaternion {
	s, c := math.Sincos(theta / 2)
	axis = axis.WithMagnitude(s)
	return Quaternion{W: c, VX: axis.X, VY: axis.Y, VZ: axis.Z}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", q.W, q.VX, q.VY, q.VZ)
}

// Vector returns the vector part of q.
func (q Quaternion) Vector() Vector {
	return Vector{X: q.VX, Y: q.VY, Z: q.VZ}
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.W + o.W, q.VX + o.VX, q.VY + o.VY, q.VZ + o.VZ}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.W - o.W, q.VX - o.VX, q.VY - o.VY, q.VZ - o.VZ}
}

func (q Quaternion) Mul(f float64) Quaternion {
	return Quaternion{q.W * f, q.VX * f, q.VY * f, q.VZ * f}
}

// Hypot returns the magnitude of q.
func (q Quaternion) Hypot() float64 {
	return math.Sqrt(q.W*q.W + q.VX*q.VX + q.VY*q.VY + q.VZ*q.VZ)
}

// WithMagnitude returns q scaled to magnitude s.
func (q Quaternion) WithMagnitude(s float64) Quaternion {
	return q.Mul(s / q.Hypot())
}

// Equal reports whether all components of q and o are within tol.
func (q Quaternion) Equal(o Quaternion, tol float64) bool {
	return math.Abs(q.W-o.W) <= tol && math.Abs(q.VX-o.VX) <= tol &&
		math.Abs(q.VY-o.VY) <= tol && math.Abs(q.VZ-o.VZ) <= tol
}

// Times returns the Hamilton product q·o, the rotation o followed by q.
func (q Quaternion) Times(o Quaternion) Quaternion {
	return Quaternion(numericOps.qtimes(quat[float64](q), quat[float64](o)))
}

// Inverse returns the inverse rotation of a unit quaternion.
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{q.W, -q.VX, -q.VY, -q.VZ}.WithMagnitude(1)
}

// RotationU returns the image of the x axis.
func (q Quaternion) RotationU() Vector {
	return Vector(numericOps.rotationU(quat[float64](q)))
}

// RotationV returns the image of the y axis.
func (q Quaternion) RotationV() Vector {
	return Vector(numericOps.rotationV(quat[float64](q)))
}

// RotationN returns the image of the z axis.
func (q Quaternion) RotationN() Vector {
	return Vector(numericOps.rotationN(quat[float64](q)))
}

// Rotate rotates p by q.
func (q Quaternion) Rotate(p Vector) Vector {
	return Vector(numericOps.rotate(quat[float64](q), vec[float64](p)))
}
