package mesh

import (
	"fmt"

	"github.com/Faultbox/meshpack/pkg/objmodel"
)

// BuildOptions controls mesh conversion.
type BuildOptions struct {
	// GenerateTangents adds a tangent + handedness attribute. Every corner
	// must then reference both a normal and a texcoord.
	GenerateTangents bool
	// Codec selects the packed attribute encoding. Nil means PackedCodec.
	Codec Codec
}

// Build converts one object into a mesh. The conversion either completes
// or fails as a whole; no partial mesh is returned.
func Build(obj *objmodel.Object, opts BuildOptions) (*Mesh, error) {
	layout, err := ComputeLayout(obj, opts.GenerateTangents, opts.Codec)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(obj, layout)
	err = obj.Shapes(func(s objmodel.Shape) error {
		corners, ok := s.Triangle()
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, s.Kind)
		}
		for _, c := range corners {
			if _, err := b.AddIndex(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m := b.Mesh()
	if layout.Has(AttrTangent) {
		if err := m.GenerateTangents(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BuildSet converts every object of a set, in order.
func BuildSet(set *objmodel.ObjSet, opts BuildOptions) ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, len(set.Objects))
	for i := range set.Objects {
		m, err := Build(&set.Objects[i], opts)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, set.Objects[i].Name, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
