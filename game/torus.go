package game

import "math"

// Vec is a 2D vector in world units
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o (raw, not wrapped)
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the vector magnitude
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared magnitude
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// IsNaN reports whether either component is NaN or infinite
func (v Vec) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// Forward returns the unit heading for a rotation.
// Rotation 0 faces up (negative Y) and increases clockwise.
func Forward(theta float64) Vec {
	return Vec{math.Sin(theta), -math.Cos(theta)}
}

// HeadingTo returns the rotation that faces along d
func HeadingTo(d Vec) float64 {
	return math.Atan2(d.X, -d.Y)
}

// wrapAxis folds one component of a displacement into [-half, half]
func wrapAxis(d, size float64) float64 {
	if size <= 0 {
		return d
	}
	half := size / 2
	if d > half {
		d -= size
	} else if d < -half {
		d += size
	}
	return d
}

// WrapDelta returns the shortest displacement from b to a on the torus.
// Every distance, bearing and collision query goes through here.
func WrapDelta(a, b Vec, size float64) Vec {
	return Vec{wrapAxis(a.X-b.X, size), wrapAxis(a.Y-b.Y, size)}
}

// WrapDistance returns the toroidal distance between a and b
func WrapDistance(a, b Vec, size float64) float64 {
	return WrapDelta(a, b, size).Len()
}

// WrapPosition maps p back into [-half, half) on both axes
func WrapPosition(p Vec, size float64) Vec {
	return Vec{wrapCoord(p.X, size), wrapCoord(p.Y, size)}
}

func wrapCoord(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	half := size / 2
	if x >= -half && x < half {
		return x
	}
	x = math.Mod(x+half, size)
	if x < 0 {
		x += size
	}
	return x - half
}

// NormalizeAngle normalizes an angle to the range [-π, π]
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// RotateTowards turns current towards target by at most maxStep, snapping to
// target when the remaining difference fits in one step.
func RotateTowards(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) < maxStep {
		return target
	}
	if diff > 0 {
		return current + maxStep
	}
	return current - maxStep
}
