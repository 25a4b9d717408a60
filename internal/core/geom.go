// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The simulation ignores depth.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOrZero returns the unit vector pointing along v.
// Zero-length, infinite and NaN inputs yield the zero vector instead of NaN.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp linearly interpolates from v towards o by t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Clamp restricts each component of v to [-bound, bound] of the matching axis.
func (v Vec2) Clamp(bound Vec2) Vec2 {
	return Vec2{ClampF(v.X, -bound.X, bound.X), ClampF(v.Y, -bound.Y, bound.Y)}
}

// FromAngle returns the unit vector at angle radians from the +X axis.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// AABB is an axis-aligned bounding box described by its center and half extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a square box of the given full size centered on c.
func NewAABB(c Vec2, size float64) AABB {
	return AABB{Center: c, Half: Vec2{size / 2, size / 2}}
}

// Min returns the lower-left corner.
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right corner.
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Intersects reports whether two boxes overlap. Touching edges count as contact.
func (b AABB) Intersects(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X <= oMax.X && bMax.X >= oMin.X &&
		bMin.Y <= oMax.Y && bMax.Y >= oMin.Y
}

// Rect represents an integer axis-aligned rectangle on the screen grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
