// Package mesh converts face-vertex models into deduplicated, indexed meshes
// ready for GPU upload, with optional tangent generation and compact
// attribute packing.
package mesh

import (
	"fmt"

	"github.com/Faultbox/meshpack/pkg/objmodel"
)

// Mesh is the converted output. Vertices are stored in first-seen order and
// Indices holds one entry per triangle corner.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Layout   Layout
	Bounds   Bounds

	slots map[objmodel.CornerIndex]uint32
}

// Slot returns the vertex slot assigned to a corner, if any.
func (m *Mesh) Slot(c objmodel.CornerIndex) (uint32, bool) {
	slot, ok := m.slots[c]
	return slot, ok
}

// UniqueCorners returns the number of distinct corners seen.
// It always equals len(m.Vertices).
func (m *Mesh) UniqueCorners() int {
	return len(m.slots)
}

// TriangleCount returns the number of triangles referenced by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// NonFiniteTangents counts vertices whose generated tangent is NaN or Inf.
func (m *Mesh) NonFiniteTangents() int {
	n := 0
	for i := range m.Vertices {
		if m.Vertices[i].HasTangent && !m.Vertices[i].TangentFinite() {
			n++
		}
	}
	return n
}

// Builder deduplicates corners of one object into a Mesh.
type Builder struct {
	obj  *objmodel.Object
	mesh *Mesh
}

// NewBuilder starts a mesh for obj using the given layout.
func NewBuilder(obj *objmodel.Object, layout Layout) *Builder {
	return &Builder{
		obj: obj,
		mesh: &Mesh{
			Name:   obj.Name,
			Layout: layout,
			Bounds: NewBounds(),
			slots:  make(map[objmodel.CornerIndex]uint32),
		},
	}
}

// AddIndex appends the slot for corner c to the index list, creating the
// vertex the first time c is seen. Repeated corners are a pure lookup.
func (b *Builder) AddIndex(c objmodel.CornerIndex) (uint32, error) {
	m := b.mesh
	if slot, ok := m.slots[c]; ok {
		m.Indices = append(m.Indices, slot)
		return slot, nil
	}

	v, err := b.resolve(c)
	if err != nil {
		return 0, err
	}

	slot := uint32(len(m.Vertices))
	m.Bounds.Extend(v.Position)
	m.Vertices = append(m.Vertices, v)
	m.slots[c] = slot
	m.Indices = append(m.Indices, slot)
	return slot, nil
}

// Mesh returns the mesh built so far. The builder must not be used afterwards.
func (b *Builder) Mesh() *Mesh {
	return b.mesh
}

// resolve looks up the corner's attributes in the object pools. Optional
// attributes are taken only when the layout carries them.
func (b *Builder) resolve(c objmodel.CornerIndex) (Vertex, error) {
	obj, layout := b.obj, b.mesh.Layout

	if c.Position < 0 || c.Position >= len(obj.Positions) {
		return Vertex{}, fmt.Errorf("%w: position %d of %d", ErrCornerOutOfRange, c.Position, len(obj.Positions))
	}
	v := Vertex{Position: obj.Positions[c.Position]}

	if c.HasNormal() && layout.Has(AttrNormal) {
		if c.Normal < 0 || c.Normal >= len(obj.Normals) {
			return Vertex{}, fmt.Errorf("%w: normal %d of %d", ErrCornerOutOfRange, c.Normal, len(obj.Normals))
		}
		v.Normal = obj.Normals[c.Normal]
		v.HasNormal = true
	}

	if c.HasTexCoord() && layout.Has(AttrTexCoord) {
		if c.TexCoord < 0 || c.TexCoord >= len(obj.TexCoords) {
			return Vertex{}, fmt.Errorf("%w: texcoord %d of %d", ErrCornerOutOfRange, c.TexCoord, len(obj.TexCoords))
		}
		v.TexCoord = obj.TexCoords[c.TexCoord]
		v.HasTexCoord = true
	}

	return v, nil
}
