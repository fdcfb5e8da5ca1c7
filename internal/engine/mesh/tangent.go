package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// GenerateTangents derives a tangent and handedness for every vertex from
// triangle edges and texture coordinate deltas.
//
// Contributions of all triangles sharing a vertex are summed first and only
// then orthogonalized against the normal (Gram-Schmidt) and normalized.
// Triangles with a zero UV determinant are not skipped: they make the
// affected tangents non-finite, see Vertex.TangentFinite.
func (m *Mesh) GenerateTangents() error {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if !v.HasNormal || !v.HasTexCoord {
			return fmt.Errorf("%w: vertex %d lacks normal or texcoord", ErrMissingRequiredAttribute, i)
		}
	}

	tan1 := make([]mgl64.Vec3, len(m.Vertices))
	tan2 := make([]mgl64.Vec3, len(m.Vertices))

	for ii := 0; ii+2 < len(m.Indices); ii += 3 {
		i1, i2, i3 := m.Indices[ii], m.Indices[ii+1], m.Indices[ii+2]
		a, b, c := &m.Vertices[i1], &m.Vertices[i2], &m.Vertices[i3]

		e1 := b.Position.Sub(a.Position)
		e2 := c.Position.Sub(a.Position)

		s1 := b.TexCoord[0] - a.TexCoord[0]
		s2 := c.TexCoord[0] - a.TexCoord[0]
		t1 := b.TexCoord[1] - a.TexCoord[1]
		t2 := c.TexCoord[1] - a.TexCoord[1]

		r := 1.0 / (s1*t2 - s2*t1)
		sdir := e1.Mul(t2).Sub(e2.Mul(t1)).Mul(r)
		tdir := e2.Mul(s1).Sub(e1.Mul(s2)).Mul(r)

		for _, i := range [3]uint32{i1, i2, i3} {
			tan1[i] = tan1[i].Add(sdir)
			tan2[i] = tan2[i].Add(tdir)
		}
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		n, t := v.Normal, tan1[i]

		v.Tangent = t.Sub(n.Mul(n.Dot(t))).Normalize()
		v.HasTangent = true
		if n.Cross(t).Dot(tan2[i]) < 0 {
			v.Handedness = -1
		} else {
			v.Handedness = 1
		}
	}
	return nil
}
