package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is the axis-aligned bounding box of the mesh's vertices.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBounds returns an empty box: Min at +Inf and Max at -Inf.
func NewBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to include p.
func (b *Bounds) Extend(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Empty reports whether no point was ever added.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the box, or the origin when empty.
func (b Bounds) Center() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}
