// Package core provides fundamental types and utilities for the bricker game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Reflect mirrors v across the surface with the given unit normal.
// For axis-aligned normals only the sign of one component changes, so the
// magnitude is preserved bit for bit.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	switch normal {
	case Vec2{X: 1}, Vec2{X: -1}:
		return Vec2{X: -v.X, Y: v.Y}
	case Vec2{Y: 1}, Vec2{Y: -1}:
		return Vec2{X: v.X, Y: -v.Y}
	}
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Box is an axis-aligned bounding box in world units.
type Box struct {
	Pos  Vec2 // Top-left corner
	Size Vec2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return b.Pos.Add(b.Size.Scale(0.5))
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.Pos.X >= o.Right() || o.Pos.X >= b.Right() {
		return false
	}
	if b.Pos.Y >= o.Bottom() || o.Pos.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contact returns the unit normal pointing from o towards b along the axis of
// least penetration, and the penetration depth along that normal.
// ok is false when the boxes do not overlap.
func (b Box) Contact(o Box) (normal Vec2, depth float64, ok bool) {
	if !b.Intersects(o) {
		return Vec2{}, 0, false
	}

	overlapX := math.Min(b.Right(), o.Right()) - math.Max(b.Pos.X, o.Pos.X)
	overlapY := math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Pos.Y, o.Pos.Y)

	bc, oc := b.Center(), o.Center()
	if overlapX < overlapY {
		if bc.X < oc.X {
			return Vec2{X: -1}, overlapX, true
		}
		return Vec2{X: 1}, overlapX, true
	}
	if bc.Y < oc.Y {
		return Vec2{Y: -1}, overlapY, true
	}
	return Vec2{Y: 1}, overlapY, true
}

// Rect represents an axis-aligned box in screen cells.
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

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
