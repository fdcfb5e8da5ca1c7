package mesh

import (
	"fmt"

	"github.com/Faultbox/meshpack/pkg/objmodel"
)

// Layout records which attributes a mesh carries and where each one sits
// inside a packed vertex record. It is computed once per mesh, before any
// vertex is created, and never changes afterwards.
type Layout struct {
	codec   Codec
	present [attributeCount]bool
	offsets [attributeCount]int
	stride  int
}

// ComputeLayout decides the vertex format of obj.
//
// Normal and texcoord are included only if every corner of every triangle
// references them. Tangent is included when generateTangents is set; it is
// derived rather than read, so it additionally requires both normal and
// texcoord to be present. A nil codec selects PackedCodec.
func ComputeLayout(obj *objmodel.Object, generateTangents bool, codec Codec) (Layout, error) {
	if codec == nil {
		codec = PackedCodec{}
	}

	allNormals, allTexCoords := true, true
	err := obj.Shapes(func(s objmodel.Shape) error {
		corners, ok := s.Triangle()
		if !ok {
			return fmt.Errorf("%w: %s with %d corners", ErrUnsupportedPrimitive, s.Kind, len(s.Corners))
		}
		for _, c := range corners {
			allNormals = allNormals && c.HasNormal()
			allTexCoords = allTexCoords && c.HasTexCoord()
		}
		return nil
	})
	if err != nil {
		return Layout{}, err
	}

	if generateTangents {
		switch {
		case !allNormals && !allTexCoords:
			return Layout{}, fmt.Errorf("%w: tangents need normals and texcoords on every corner", ErrMissingRequiredAttribute)
		case !allNormals:
			return Layout{}, fmt.Errorf("%w: tangents need normals on every corner", ErrMissingRequiredAttribute)
		case !allTexCoords:
			return Layout{}, fmt.Errorf("%w: tangents need texcoords on every corner", ErrMissingRequiredAttribute)
		}
	}

	want := [attributeCount]bool{
		AttrPosition: true,
		AttrNormal:   allNormals,
		AttrTangent:  generateTangents,
		AttrTexCoord: allTexCoords,
	}
	return newLayout(codec, want), nil
}

// NewLayout builds a layout for an explicit attribute set. Position is
// always included.
func NewLayout(codec Codec, attrs ...Attribute) Layout {
	if codec == nil {
		codec = PackedCodec{}
	}
	want := [attributeCount]bool{AttrPosition: true}
	for _, a := range attrs {
		if a >= 0 && a < attributeCount {
			want[a] = true
		}
	}
	return newLayout(codec, want)
}

func newLayout(codec Codec, want [attributeCount]bool) Layout {
	l := Layout{codec: codec}
	l.present[AttrPosition] = true
	offset := codec.Size(AttrPosition)
	for _, a := range optionalAttributes {
		if !want[a] {
			continue
		}
		l.present[a] = true
		l.offsets[a] = offset
		offset += codec.Size(a)
	}
	l.stride = offset
	return l
}

// Has reports whether the attribute is part of every vertex.
func (l Layout) Has(attr Attribute) bool {
	if attr < 0 || attr >= attributeCount {
		return false
	}
	return l.present[attr]
}

// Offset returns the byte offset of attr, or false if it is absent.
func (l Layout) Offset(attr Attribute) (int, bool) {
	if !l.Has(attr) {
		return 0, false
	}
	return l.offsets[attr], true
}

// Stride returns the size in bytes of one packed vertex.
func (l Layout) Stride() int { return l.stride }

// Codec returns the attribute codec the layout was computed for.
func (l Layout) Codec() Codec {
	if l.codec == nil {
		return PackedCodec{}
	}
	return l.codec
}

// Attributes lists the present attributes in ascending offset order.
func (l Layout) Attributes() []Attribute {
	attrs := []Attribute{AttrPosition}
	for _, a := range optionalAttributes {
		if l.present[a] {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// String describes the layout, e.g. "packed stride=20 position@0 normal@12 texcoord@16".
func (l Layout) String() string {
	s := fmt.Sprintf("%s stride=%d", l.Codec().Name(), l.stride)
	for _, a := range l.Attributes() {
		s += fmt.Sprintf(" %s@%d", a, l.offsets[a])
	}
	return s
}

// AppendVertex appends one packed record of exactly Stride bytes to dst.
// Attributes absent from the layout are never written.
func (l Layout) AppendVertex(dst []byte, v Vertex) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, l.stride)...)
	rec := dst[start:]
	c := l.Codec()

	c.PutPosition(rec, v.Position)
	if l.present[AttrNormal] {
		c.PutNormal(rec[l.offsets[AttrNormal]:], v.Normal)
	}
	if l.present[AttrTangent] {
		c.PutTangent(rec[l.offsets[AttrTangent]:], v.Tangent, v.Handedness)
	}
	if l.present[AttrTexCoord] {
		c.PutTexCoord(rec[l.offsets[AttrTexCoord]:], v.TexCoord)
	}
	return dst
}

// DecodeVertex parses one packed record produced by AppendVertex.
func (l Layout) DecodeVertex(rec []byte) (Vertex, error) {
	if len(rec) < l.stride {
		return Vertex{}, fmt.Errorf("%w: %d < %d", ErrShortRecord, len(rec), l.stride)
	}
	c := l.Codec()

	v := Vertex{Position: c.Position(rec)}
	if l.present[AttrNormal] {
		v.Normal = c.Normal(rec[l.offsets[AttrNormal]:])
		v.HasNormal = true
	}
	if l.present[AttrTangent] {
		v.Tangent, v.Handedness = c.Tangent(rec[l.offsets[AttrTangent]:])
		v.HasTangent = true
	}
	if l.present[AttrTexCoord] {
		v.TexCoord = c.TexCoord(rec[l.offsets[AttrTexCoord]:])
		v.HasTexCoord = true
	}
	return v, nil
}
