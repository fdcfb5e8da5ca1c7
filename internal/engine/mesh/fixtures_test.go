package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/meshpack/pkg/objmodel"
)

// quadObject is a unit quad in the XY plane made of two triangles that share
// the corners v0 and v2. Texcoords equal the XY position.
func quadObject() *objmodel.Object {
	return &objmodel.Object{
		Name: "quad",
		Positions: []mgl64.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Normals:   []mgl64.Vec3{{0, 0, 1}},
		TexCoords: []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Groups: []objmodel.Group{{
			Shapes: []objmodel.Shape{
				objmodel.Triangle(objmodel.CornerPTN(0, 0, 0), objmodel.CornerPTN(1, 1, 0), objmodel.CornerPTN(2, 2, 0)),
				objmodel.Triangle(objmodel.CornerPTN(0, 0, 0), objmodel.CornerPTN(2, 2, 0), objmodel.CornerPTN(3, 3, 0)),
			},
		}},
	}
}

// pyramidObject is a four-sided pyramid with per-face normals and UVs,
// giving vertices that are shared by triangles of different orientation.
func pyramidObject() *objmodel.Object {
	s := 1 / math.Sqrt(2)
	return &objmodel.Object{
		Name: "pyramid",
		Positions: []mgl64.Vec3{
			{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}, {0, 1, 0},
		},
		Normals: []mgl64.Vec3{
			{0, s, -s}, {s, s, 0}, {0, s, s}, {-s, s, 0},
		},
		TexCoords: []mgl64.Vec2{{0, 0}, {1, 0}, {0.5, 1}},
		Groups: []objmodel.Group{{
			Shapes: []objmodel.Shape{
				objmodel.Triangle(objmodel.CornerPTN(0, 0, 0), objmodel.CornerPTN(4, 2, 0), objmodel.CornerPTN(1, 1, 0)),
				objmodel.Triangle(objmodel.CornerPTN(1, 0, 1), objmodel.CornerPTN(4, 2, 1), objmodel.CornerPTN(2, 1, 1)),
				objmodel.Triangle(objmodel.CornerPTN(2, 0, 2), objmodel.CornerPTN(4, 2, 2), objmodel.CornerPTN(3, 1, 2)),
				objmodel.Triangle(objmodel.CornerPTN(3, 0, 3), objmodel.CornerPTN(4, 2, 3), objmodel.CornerPTN(0, 1, 3)),
			},
		}},
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApproxEqual(a, b mgl64.Vec3, eps float64) bool {
	return approxEqual(a[0], b[0], eps) && approxEqual(a[1], b[1], eps) && approxEqual(a[2], b[2], eps)
}
