// Package objmodel holds the face-vertex model handed to the mesh builder.
//
// A model keeps positions, normals and texture coordinates in separate pools.
// Every triangle corner picks one entry from each pool through its own index,
// so a corner's position and normal do not have to co-vary.
package objmodel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// NoIndex marks an optional corner index (texcoord or normal) as absent.
const NoIndex = -1

// CornerIndex selects the attributes of one triangle corner.
// It is comparable and is used directly as a map key for deduplication.
type CornerIndex struct {
	Position int
	TexCoord int // NoIndex when the corner has no texcoord
	Normal   int // NoIndex when the corner has no normal
}

// Corner returns a corner index with only a position.
func Corner(position int) CornerIndex {
	return CornerIndex{Position: position, TexCoord: NoIndex, Normal: NoIndex}
}

// CornerPTN returns a corner index with position, texcoord and normal.
func CornerPTN(position, texCoord, normal int) CornerIndex {
	return CornerIndex{Position: position, TexCoord: texCoord, Normal: normal}
}

// HasTexCoord reports whether the corner references a texcoord.
func (c CornerIndex) HasTexCoord() bool { return c.TexCoord != NoIndex }

// HasNormal reports whether the corner references a normal.
func (c CornerIndex) HasNormal() bool { return c.Normal != NoIndex }

// String formats the corner the way face records are usually written (p/t/n).
func (c CornerIndex) String() string {
	t, n := "", ""
	if c.HasTexCoord() {
		t = fmt.Sprint(c.TexCoord)
	}
	if c.HasNormal() {
		n = fmt.Sprint(c.Normal)
	}
	return fmt.Sprintf("%d/%s/%s", c.Position, t, n)
}

// PrimitiveKind identifies the primitive a shape describes.
type PrimitiveKind int

const (
	PrimitiveTriangle PrimitiveKind = 0
	PrimitivePoint    PrimitiveKind = 1
	PrimitiveLine     PrimitiveKind = 2
)

// String returns a human-readable primitive name.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveTriangle:
		return "triangle"
	case PrimitivePoint:
		return "point"
	case PrimitiveLine:
		return "line"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Shape is one primitive of a group.
type Shape struct {
	Kind    PrimitiveKind
	Corners []CornerIndex
}

// Triangle builds a triangle shape.
func Triangle(a, b, c CornerIndex) Shape {
	return Shape{Kind: PrimitiveTriangle, Corners: []CornerIndex{a, b, c}}
}

// Triangle returns the three corners if the shape is a well-formed triangle.
func (s Shape) Triangle() ([3]CornerIndex, bool) {
	if s.Kind != PrimitiveTriangle || len(s.Corners) != 3 {
		return [3]CornerIndex{}, false
	}
	return [3]CornerIndex{s.Corners[0], s.Corners[1], s.Corners[2]}, true
}

// Group is an ordered list of shapes sharing the object's pools.
type Group struct {
	Name   string
	Shapes []Shape
}

// Object is a named model with its own attribute pools.
type Object struct {
	Name      string
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	TexCoords []mgl64.Vec2
	Groups    []Group
}

// ObjSet is an ordered collection of objects.
type ObjSet struct {
	Objects []Object
}

// Shapes calls fn for every shape of every group in order.
// Iteration stops at the first error, which is returned.
func (o *Object) Shapes(fn func(Shape) error) error {
	for gi := range o.Groups {
		for si := range o.Groups[gi].Shapes {
			if err := fn(o.Groups[gi].Shapes[si]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ShapeCount returns the number of shapes across all groups.
func (o *Object) ShapeCount() int {
	n := 0
	for _, g := range o.Groups {
		n += len(g.Shapes)
	}
	return n
}

// TriangleCount returns the number of triangle shapes across all groups.
func (o *Object) TriangleCount() int {
	n := 0
	for _, g := range o.Groups {
		for _, s := range g.Shapes {
			if s.Kind == PrimitiveTriangle {
				n++
			}
		}
	}
	return n
}
