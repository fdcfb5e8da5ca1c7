// Package vertexattrib translates mesh layouts into OpenGL vertex attribute
// descriptors, the arguments a renderer passes to VertexAttribPointer.
package vertexattrib

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
)

// Shader attribute locations used for each mesh attribute.
const (
	LocationPosition uint32 = 0
	LocationNormal   uint32 = 1
	LocationTangent  uint32 = 2
	LocationTexCoord uint32 = 3
)

// Attrib describes one enabled vertex attribute.
type Attrib struct {
	Attribute  mesh.Attribute
	Location   uint32
	Size       int32  // components
	Type       uint32 // GL component type
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Describe returns one descriptor per attribute present in the layout,
// in ascending offset order.
func Describe(l mesh.Layout) []Attrib {
	codec := l.Codec()
	attrs := l.Attributes()
	out := make([]Attrib, 0, len(attrs))
	for _, a := range attrs {
		offset, _ := l.Offset(a)
		f := codec.Format(a)
		out = append(out, Attrib{
			Attribute:  a,
			Location:   Location(a),
			Size:       int32(f.Components),
			Type:       ComponentGLType(f.Type),
			Normalized: f.Normalized,
			Stride:     int32(l.Stride()),
			Offset:     uintptr(offset),
		})
	}
	return out
}

// Location returns the shader location bound to an attribute.
func Location(a mesh.Attribute) uint32 {
	switch a {
	case mesh.AttrNormal:
		return LocationNormal
	case mesh.AttrTangent:
		return LocationTangent
	case mesh.AttrTexCoord:
		return LocationTexCoord
	default:
		return LocationPosition
	}
}

// ComponentGLType maps a mesh component type to its GL enum.
func ComponentGLType(t mesh.ComponentType) uint32 {
	switch t {
	case mesh.ComponentFloat16:
		return gl.HALF_FLOAT
	case mesh.ComponentInt2_10_10_10:
		return gl.INT_2_10_10_10_REV
	default:
		return gl.FLOAT
	}
}

// IndexType returns the GL element type for an index width in bytes.
func IndexType(size int) uint32 {
	switch size {
	case 1:
		return gl.UNSIGNED_BYTE
	case 2:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

// TypeName returns the GL spelling of the enums used here.
func TypeName(glType uint32) string {
	switch glType {
	case gl.FLOAT:
		return "GL_FLOAT"
	case gl.HALF_FLOAT:
		return "GL_HALF_FLOAT"
	case gl.INT_2_10_10_10_REV:
		return "GL_INT_2_10_10_10_REV"
	case gl.UNSIGNED_BYTE:
		return "GL_UNSIGNED_BYTE"
	case gl.UNSIGNED_SHORT:
		return "GL_UNSIGNED_SHORT"
	case gl.UNSIGNED_INT:
		return "GL_UNSIGNED_INT"
	default:
		return fmt.Sprintf("0x%04X", glType)
	}
}

// String formats the descriptor like a VertexAttribPointer call.
func (a Attrib) String() string {
	return fmt.Sprintf("%s: location=%d size=%d type=%s normalized=%v stride=%d offset=%d",
		a.Attribute, a.Location, a.Size, TypeName(a.Type), a.Normalized, a.Stride, a.Offset)
}
