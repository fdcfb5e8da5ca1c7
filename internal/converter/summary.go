package converter

import (
	"fmt"
	"io"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
	"github.com/Faultbox/meshpack/internal/engine/vertexattrib"
)

// Summary describes one built mesh.
type Summary struct {
	Name              string
	Triangles         int
	Vertices          int
	Indices           int
	IndexSize         int
	Layout            string
	Bounds            mesh.Bounds
	NonFiniteTangents int
	Attribs           []vertexattrib.Attrib
}

// Summarize describes each mesh.
func Summarize(meshes []*mesh.Mesh) []Summary {
	out := make([]Summary, len(meshes))
	for i, m := range meshes {
		out[i] = Summary{
			Name:              m.Name,
			Triangles:         m.TriangleCount(),
			Vertices:          len(m.Vertices),
			Indices:           len(m.Indices),
			IndexSize:         m.IndexSize(),
			Layout:            m.Layout.String(),
			Bounds:            m.Bounds,
			NonFiniteTangents: m.NonFiniteTangents(),
			Attribs:           vertexattrib.Describe(m.Layout),
		}
	}
	return out
}

// WriteSummaries prints summaries in a human-readable form.
func WriteSummaries(w io.Writer, summaries []Summary) {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Object:    %s\n", s.Name)
		fmt.Fprintf(w, "Triangles: %d\n", s.Triangles)
		fmt.Fprintf(w, "Vertices:  %d (%d indices, %d-byte %s)\n",
			s.Vertices, s.Indices, s.IndexSize, vertexattrib.TypeName(vertexattrib.IndexType(s.IndexSize)))
		fmt.Fprintf(w, "Layout:    %s\n", s.Layout)
		if s.Bounds.Empty() {
			fmt.Fprintln(w, "Bounds:    empty")
		} else {
			fmt.Fprintf(w, "Bounds:    min %v max %v\n", s.Bounds.Min, s.Bounds.Max)
		}
		if s.NonFiniteTangents > 0 {
			fmt.Fprintf(w, "Warning:   %d vertices have non-finite tangents\n", s.NonFiniteTangents)
		}
		for _, a := range s.Attribs {
			fmt.Fprintf(w, "  %s\n", a)
		}
	}
}
