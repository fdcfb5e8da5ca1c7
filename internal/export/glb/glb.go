// Package glb exports built meshes as binary glTF so they can be inspected
// in any glTF viewer.
package glb

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
)

// Generator is stamped into the asset header.
const Generator = "meshpack"

// Document converts meshes into a glTF document with one node per mesh.
// Meshes without vertices are skipped; glTF has no empty accessors.
func Document(meshes []*mesh.Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator

	for i, m := range meshes {
		if len(m.Vertices) == 0 {
			continue
		}
		prim, err := writePrimitive(doc, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%s): %w", i, m.Name, err)
		}
		idx := uint32(len(doc.Meshes))
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(idx)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, idx)
	}
	return doc, nil
}

// Write saves meshes to path as a .glb file.
func Write(path string, meshes []*mesh.Mesh) error {
	doc, err := Document(meshes)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writePrimitive(doc *gltf.Document, m *mesh.Mesh) (*gltf.Primitive, error) {
	g := m.Geometry()
	n := g.VertexCount()

	attrs := map[string]uint32{
		gltf.POSITION: uint32(modeler.WritePosition(doc, vec3s(g.Positions, n))),
	}
	if len(g.Normals) > 0 {
		attrs[gltf.NORMAL] = uint32(modeler.WriteNormal(doc, vec3s(g.Normals, n)))
	}
	if len(g.Tangents) > 0 {
		attrs[gltf.TANGENT] = uint32(modeler.WriteTangent(doc, vec4s(g.Tangents, n)))
	}
	if len(g.TexCoords) > 0 {
		attrs[gltf.TEXCOORD_0] = uint32(modeler.WriteTextureCoord(doc, vec2s(g.TexCoords, n)))
	}

	indices, err := sizedIndices(g, m.IndexSize())
	if err != nil {
		return nil, err
	}
	return &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
		Mode:       gltf.PrimitiveTriangles,
	}, nil
}

// sizedIndices narrows indices to the mesh's index width.
func sizedIndices(g mesh.Geometry, size int) (any, error) {
	switch size {
	case 1:
		return g.Indices8()
	case 2:
		return g.Indices16()
	default:
		return g.Indices, nil
	}
}

func vec2s(flat []float32, n int) [][2]float32 {
	out := make([][2]float32, n)
	for i := range out {
		copy(out[i][:], flat[2*i:])
	}
	return out
}

func vec3s(flat []float32, n int) [][3]float32 {
	out := make([][3]float32, n)
	for i := range out {
		copy(out[i][:], flat[3*i:])
	}
	return out
}

func vec4s(flat []float32, n int) [][4]float32 {
	out := make([][4]float32, n)
	for i := range out {
		copy(out[i][:], flat[4*i:])
	}
	return out
}
