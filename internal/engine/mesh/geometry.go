package mesh

import "fmt"

// Geometry is the mesh flattened into float32 arrays, the shape most
// renderers expect for separate attribute buffers.
type Geometry struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex, empty without normals
	Tangents  []float32 // xyzw per vertex (w = handedness), empty without tangents
	TexCoords []float32 // uv per vertex, empty without texcoords
	Indices   []uint32
}

// Geometry flattens the mesh. Optional arrays are filled only for the
// attributes the layout carries.
func (m *Mesh) Geometry() Geometry {
	n := len(m.Vertices)
	g := Geometry{
		Positions: make([]float32, 0, 3*n),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	hasNormal := m.Layout.Has(AttrNormal)
	hasTangent := m.Layout.Has(AttrTangent)
	hasTexCoord := m.Layout.Has(AttrTexCoord)

	for i := range m.Vertices {
		v := &m.Vertices[i]
		g.Positions = append(g.Positions, float32(v.Position[0]), float32(v.Position[1]), float32(v.Position[2]))
		if hasNormal {
			g.Normals = append(g.Normals, float32(v.Normal[0]), float32(v.Normal[1]), float32(v.Normal[2]))
		}
		if hasTangent {
			g.Tangents = append(g.Tangents,
				float32(v.Tangent[0]), float32(v.Tangent[1]), float32(v.Tangent[2]), float32(v.Handedness))
		}
		if hasTexCoord {
			g.TexCoords = append(g.TexCoords, float32(v.TexCoord[0]), float32(v.TexCoord[1]))
		}
	}
	return g
}

// VertexCount returns the number of vertices in the flattened arrays.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// Indices16 narrows the indices to 16 bits, failing instead of truncating.
func (g Geometry) Indices16() ([]uint16, error) {
	out := make([]uint16, len(g.Indices))
	for i, idx := range g.Indices {
		if idx > 0xffff {
			return nil, fmt.Errorf("%w: index %d at %d", ErrIndexOverflow, idx, i)
		}
		out[i] = uint16(idx)
	}
	return out, nil
}

// Indices8 narrows the indices to 8 bits, failing instead of truncating.
func (g Geometry) Indices8() ([]uint8, error) {
	out := make([]uint8, len(g.Indices))
	for i, idx := range g.Indices {
		if idx > 0xff {
			return nil, fmt.Errorf("%w: index %d at %d", ErrIndexOverflow, idx, i)
		}
		out[i] = uint8(idx)
	}
	return out, nil
}
