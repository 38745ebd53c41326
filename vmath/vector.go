package vmath

import "math"

// Vec2 is a 2D vector in table units, passed by value
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies vector by scalar factor
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns Euclidean magnitude
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns Euclidean distance between two points
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Length() }

// Normalize returns unit vector, zero-safe
// ok is false for the zero vector, in which case the zero vector is returned
func (v Vec2) Normalize() (n Vec2, ok bool) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Reflect returns velocity reflected off surface with given unit normal
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// ClampBox clamps each component into [min, max]
func (v Vec2) ClampBox(min, max Vec2) Vec2 {
	return Vec2{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

// ApproxEqual compares component-wise within eps
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// IsFinite reports whether neither component is NaN or Inf
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
