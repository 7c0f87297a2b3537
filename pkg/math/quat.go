package math

import "math"

// Quat is a rotation quaternion in glTF component order: X, Y, Z, W
// with W the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromArray builds a Quat from a glTF XYZW component array.
func QuatFromArray(a [4]float32) Quat {
	return Quat{a[0], a[1], a[2], a[3]}
}

// Array returns the components in glTF XYZW order.
func (q Quat) Array() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// Dot returns the dot product.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Normalize returns a unit quaternion. Degenerate quaternions collapse
// to the identity.
func (q Quat) Normalize() Quat {
	l := float32(math.Sqrt(float64(q.Dot(q))))
	if l < 1e-6 {
		return QuatIdentity()
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Mul returns the composed rotation q * other (other applied first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Slerp spherically interpolates towards other by t in [0, 1], taking
// the shorter arc.
func (q Quat) Slerp(other Quat, t float32) Quat {
	d := q.Dot(other)
	if d < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		d = -d
	}

	// Nearly parallel rotations fall back to a normalized lerp.
	if d > 0.9995 {
		return Quat{
			q.X + (other.X-q.X)*t,
			q.Y + (other.Y-q.Y)*t,
			q.Z + (other.Z-q.Z)*t,
			q.W + (other.W-q.W)*t,
		}.Normalize()
	}

	theta := math.Acos(float64(d))
	sinTheta := math.Sin(theta)
	wa := float32(math.Sin((1-float64(t))*theta) / sinTheta)
	wb := float32(math.Sin(float64(t)*theta) / sinTheta)

	return Quat{
		q.X*wa + other.X*wb,
		q.Y*wa + other.Y*wb,
		q.Z*wa + other.Z*wb,
		q.W*wa + other.W*wb,
	}
}
