package vertexattrib

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
)

func TestDescribe_Packed(t *testing.T) {
	l := mesh.NewLayout(mesh.PackedCodec{}, mesh.AttrNormal, mesh.AttrTangent, mesh.AttrTexCoord)
	attribs := Describe(l)

	want := []Attrib{
		{mesh.AttrPosition, LocationPosition, 3, gl.FLOAT, false, 24, 0},
		{mesh.AttrNormal, LocationNormal, 4, gl.INT_2_10_10_10_REV, true, 24, 12},
		{mesh.AttrTangent, LocationTangent, 4, gl.INT_2_10_10_10_REV, true, 24, 16},
		{mesh.AttrTexCoord, LocationTexCoord, 2, gl.HALF_FLOAT, false, 24, 20},
	}
	if len(attribs) != len(want) {
		t.Fatalf("expected %d attribs, got %d", len(want), len(attribs))
	}
	for i := range want {
		if attribs[i] != want[i] {
			t.Errorf("attrib %d = %v, want %v", i, attribs[i], want[i])
		}
	}
}

func TestDescribe_Float32PositionOnly(t *testing.T) {
	attribs := Describe(mesh.NewLayout(mesh.Float32Codec{}))
	if len(attribs) != 1 {
		t.Fatalf("expected 1 attrib, got %d", len(attribs))
	}
	a := attribs[0]
	if a.Type != gl.FLOAT || a.Size != 3 || a.Stride != 12 || a.Offset != 0 {
		t.Errorf("position attrib = %v", a)
	}
}

func TestIndexType(t *testing.T) {
	tests := []struct {
		size int
		want uint32
	}{
		{1, gl.UNSIGNED_BYTE},
		{2, gl.UNSIGNED_SHORT},
		{4, gl.UNSIGNED_INT},
	}
	for _, tt := range tests {
		if got := IndexType(tt.size); got != tt.want {
			t.Errorf("IndexType(%d) = %s, want %s", tt.size, TypeName(got), TypeName(tt.want))
		}
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName(gl.INT_2_10_10_10_REV); got != "GL_INT_2_10_10_10_REV" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := TypeName(0x1234); got != "0x1234" {
		t.Errorf("TypeName(unknown) = %q", got)
	}
}

func TestAttrib_String(t *testing.T) {
	a := Attrib{mesh.AttrTexCoord, LocationTexCoord, 2, gl.HALF_FLOAT, false, 20, 16}
	want := "texcoord: location=3 size=2 type=GL_HALF_FLOAT normalized=false stride=20 offset=16"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
