package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is one fully resolved mesh vertex. Optional attributes are only
// meaningful when their Has flag is set.
type Vertex struct {
	Position   mgl64.Vec3
	Normal     mgl64.Vec3
	Tangent    mgl64.Vec3
	Handedness float64 // +1 or -1 once a tangent is generated
	TexCoord   mgl64.Vec2

	HasNormal   bool
	HasTangent  bool
	HasTexCoord bool
}

// TangentFinite reports whether the generated tangent is usable.
// Triangles with degenerate texture coordinates produce NaN or Inf tangents.
func (v Vertex) TangentFinite() bool {
	if !v.HasTangent {
		return false
	}
	for _, c := range v.Tangent {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
