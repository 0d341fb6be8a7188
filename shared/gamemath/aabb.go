package gamemath

import "github.com/yohamta/donburi/features/math"

// Aabb is an axis-aligned box stored as center and half extent.
// World space is y-up: Min().Y is the bottom edge.
type Aabb struct {
	Center     math.Vec2
	HalfExtent math.Vec2
}

// NewAabb builds a box from its center and half extent.
func NewAabb(center, halfExtent math.Vec2) Aabb {
	return Aabb{Center: center, HalfExtent: halfExtent}
}

// Min returns the lower-left corner.
func (a Aabb) Min() math.Vec2 {
	return math.Vec2{X: a.Center.X - a.HalfExtent.X, Y: a.Center.Y - a.HalfExtent.Y}
}

// Max returns the upper-right corner.
func (a Aabb) Max() math.Vec2 {
	return math.Vec2{X: a.Center.X + a.HalfExtent.X, Y: a.Center.Y + a.HalfExtent.Y}
}

// Size returns the full width and height.
func (a Aabb) Size() math.Vec2 {
	return math.Vec2{X: a.HalfExtent.X * 2, Y: a.HalfExtent.Y * 2}
}

// Translate returns a copy moved by (dx, dy).
func (a Aabb) Translate(dx, dy float64) Aabb {
	a.Center.X += dx
	a.Center.Y += dy
	return a
}

func (a Aabb) WithCenterX(x float64) Aabb {
	a.Center.X = x
	return a
}

func (a Aabb) WithCenterY(y float64) Aabb {
	a.Center.Y = y
	return a
}

// Intersects reports overlap on both axes. Bounds are inclusive, so boxes that
// only touch along an edge intersect.
func Intersects(a, b Aabb) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

// Intersects is the method form of Intersects.
func (a Aabb) Intersects(b Aabb) bool {
	return Intersects(a, b)
}

// ContainsX reports whether inner lies within outer on the X axis.
func ContainsX(outer, inner Aabb) bool {
	return outer.Min().X <= inner.Min().X && outer.Max().X >= inner.Max().X
}

// ContainsY reports whether inner lies within outer on the Y axis.
func ContainsY(outer, inner Aabb) bool {
	return outer.Min().Y <= inner.Min().Y && outer.Max().Y >= inner.Max().Y
}

// Union returns the smallest box covering both a and b.
func Union(a, b Aabb) Aabb {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	minX, minY := min(aMin.X, bMin.X), min(aMin.Y, bMin.Y)
	maxX, maxY := max(aMax.X, bMax.X), max(aMax.Y, bMax.Y)
	return Aabb{
		Center:     math.Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		HalfExtent: math.Vec2{X: (maxX - minX) / 2, Y: (maxY - minY) / 2},
	}
}
