package mesh

import "fmt"

// Attribute identifies one field of a packed vertex record.
type Attribute int

const (
	AttrPosition Attribute = iota
	AttrNormal
	AttrTangent
	AttrTexCoord

	attributeCount
)

// optionalAttributes is the priority order in which offsets are assigned
// after the position.
var optionalAttributes = [...]Attribute{AttrNormal, AttrTangent, AttrTexCoord}

// String returns the attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrPosition:
		return "position"
	case AttrNormal:
		return "normal"
	case AttrTangent:
		return "tangent"
	case AttrTexCoord:
		return "texcoord"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// ComponentType is the scalar encoding of an attribute's components.
type ComponentType int

const (
	ComponentFloat32 ComponentType = iota
	ComponentFloat16
	ComponentInt2_10_10_10 // signed 10/10/10 + 2-bit word, one per attribute
)

// String returns a short type name.
func (c ComponentType) String() string {
	switch c {
	case ComponentFloat32:
		return "f32"
	case ComponentFloat16:
		return "f16"
	case ComponentInt2_10_10_10:
		return "i2_10_10_10"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(c))
	}
}

// Format describes how an attribute is laid out inside a record.
type Format struct {
	Components int
	Type       ComponentType
	Normalized bool
}
