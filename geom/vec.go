package geom

import "math"

// Vec is a 3D Euclidean vector with float64 components.
// The zero value is the origin.
type Vec struct {
	X, Y, Z float64
}

// V constructs a Vec from its three components.
// Complexity: O(1).
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum v + o.
// Complexity: O(1).
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
// Complexity: O(1).
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by s.
// Complexity: O(1).
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the inner product v · o.
// Complexity: O(1).
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
// Complexity: O(1).
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm2 returns the squared Euclidean norm of v.
// Prefer it over Norm when only comparisons are needed.
// Complexity: O(1).
func (v Vec) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm of v.
// Complexity: O(1).
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Distance returns the Euclidean distance between v and o.
// Complexity: O(1).
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Norm()
}

// Unit returns v scaled to unit length.
// The zero vector is returned unchanged, as it has no direction.
// Complexity: O(1).
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}
