package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/meshpack/pkg/objmodel"
)

func TestBuild_QuadSharesCorners(t *testing.T) {
	m, err := Build(quadObject(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(m.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(m.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if len(m.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(m.Indices))
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], want[i])
		}
	}
	if m.UniqueCorners() != len(m.Vertices) {
		t.Errorf("UniqueCorners() = %d, want %d", m.UniqueCorners(), len(m.Vertices))
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}

	// First-seen order follows the positions of the quad.
	for i, v := range m.Vertices {
		if v.Position != quadObject().Positions[i] {
			t.Errorf("vertex %d position = %v, want %v", i, v.Position, quadObject().Positions[i])
		}
	}
}

func TestBuild_NoRepeatedCorners(t *testing.T) {
	obj := &objmodel.Object{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {2, 0, 0}, {3, 0, 0}, {2, 1, 0}},
		Groups: []objmodel.Group{{Shapes: []objmodel.Shape{
			objmodel.Triangle(objmodel.Corner(0), objmodel.Corner(1), objmodel.Corner(2)),
			objmodel.Triangle(objmodel.Corner(3), objmodel.Corner(4), objmodel.Corner(5)),
		}}},
	}

	m, err := Build(obj, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(m.Vertices) != 6 || len(m.Indices) != 6 {
		t.Errorf("got %d vertices and %d indices, want 6 and 6", len(m.Vertices), len(m.Indices))
	}
}

func TestBuild_RepeatedTrianglesDeduplicate(t *testing.T) {
	obj := quadObject()
	// Append copies of already processed triangles.
	shapes := obj.Groups[0].Shapes
	obj.Groups[0].Shapes = append(shapes, shapes[0], shapes[1], shapes[0])

	m, err := Build(obj, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	triangles := obj.TriangleCount()
	if len(m.Indices) != 3*triangles {
		t.Errorf("expected %d indices, got %d", 3*triangles, len(m.Indices))
	}
	if len(m.Vertices) >= 3*triangles {
		t.Errorf("expected fewer than %d vertices, got %d", 3*triangles, len(m.Vertices))
	}
	if m.UniqueCorners() != len(m.Vertices) {
		t.Errorf("UniqueCorners() = %d, want %d", m.UniqueCorners(), len(m.Vertices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Errorf("Indices[%d] = %d out of range", i, idx)
		}
	}
}

func TestBuilder_AddIndexIdempotent(t *testing.T) {
	obj := quadObject()
	layout, err := ComputeLayout(obj, false, nil)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	b := NewBuilder(obj, layout)

	c := objmodel.CornerPTN(2, 2, 0)
	first, err := b.AddIndex(c)
	if err != nil {
		t.Fatalf("AddIndex() error = %v", err)
	}
	second, err := b.AddIndex(c)
	if err != nil {
		t.Fatalf("AddIndex() error = %v", err)
	}
	if first != second {
		t.Errorf("same corner got slots %d and %d", first, second)
	}

	m := b.Mesh()
	if len(m.Vertices) != 1 {
		t.Errorf("expected 1 vertex, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 2 {
		t.Errorf("expected 2 indices, got %d", len(m.Indices))
	}
	if slot, ok := m.Slot(c); !ok || slot != first {
		t.Errorf("Slot() = %d, %v; want %d, true", slot, ok, first)
	}
	if _, ok := m.Slot(objmodel.CornerPTN(0, 0, 0)); ok {
		t.Error("unseen corner should have no slot")
	}
}

func TestBuilder_DistinctNormalMakesDistinctVertex(t *testing.T) {
	obj := quadObject()
	obj.Normals = append(obj.Normals, mgl64.Vec3{0, 0, -1})
	layout, _ := ComputeLayout(obj, false, nil)
	b := NewBuilder(obj, layout)

	a, _ := b.AddIndex(objmodel.CornerPTN(0, 0, 0))
	c, _ := b.AddIndex(objmodel.CornerPTN(0, 0, 1))
	if a == c {
		t.Error("corners differing only by normal must not share a slot")
	}
}

func TestBuild_Bounds(t *testing.T) {
	m, err := Build(pyramidObject(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantMin := mgl64.Vec3{-1, 0, -1}
	wantMax := mgl64.Vec3{1, 1, 1}
	if m.Bounds.Min != wantMin {
		t.Errorf("Bounds.Min = %v, want %v", m.Bounds.Min, wantMin)
	}
	if m.Bounds.Max != wantMax {
		t.Errorf("Bounds.Max = %v, want %v", m.Bounds.Max, wantMax)
	}
	for i, v := range m.Vertices {
		if !m.Bounds.Contains(v.Position) {
			t.Errorf("vertex %d at %v outside bounds", i, v.Position)
		}
	}
	if c := m.Bounds.Center(); c != (mgl64.Vec3{0, 0.5, 0}) {
		t.Errorf("Center() = %v", c)
	}
}

func TestBounds_Empty(t *testing.T) {
	b := NewBounds()
	if !b.Empty() {
		t.Error("new bounds should be empty")
	}
	if s := b.Size(); s != (mgl64.Vec3{}) {
		t.Errorf("Size() of empty bounds = %v, want zero", s)
	}
	if c := b.Center(); c != (mgl64.Vec3{}) {
		t.Errorf("Center() of empty bounds = %v, want zero", c)
	}
	b.Extend(mgl64.Vec3{1, 2, 3})
	if b.Empty() {
		t.Error("bounds with one point should not be empty")
	}
	if b.Min != b.Max {
		t.Errorf("single point bounds: Min %v != Max %v", b.Min, b.Max)
	}
}

func TestBuild_Errors(t *testing.T) {
	point := quadObject()
	point.Groups[0].Shapes = append(point.Groups[0].Shapes, objmodel.Shape{
		Kind:    objmodel.PrimitivePoint,
		Corners: []objmodel.CornerIndex{objmodel.Corner(0)},
	})

	line := quadObject()
	line.Groups = append(line.Groups, objmodel.Group{Shapes: []objmodel.Shape{{
		Kind:    objmodel.PrimitiveLine,
		Corners: []objmodel.CornerIndex{objmodel.Corner(0), objmodel.Corner(1)},
	}}})

	outOfRange := quadObject()
	outOfRange.Groups[0].Shapes[1].Corners[2] = objmodel.CornerPTN(9, 3, 0)

	badNormal := quadObject()
	badNormal.Groups[0].Shapes[0].Corners[0] = objmodel.CornerPTN(0, 0, 5)

	noTexCoords := quadObject()
	for si := range noTexCoords.Groups[0].Shapes {
		for ci := range noTexCoords.Groups[0].Shapes[si].Corners {
			noTexCoords.Groups[0].Shapes[si].Corners[ci].TexCoord = objmodel.NoIndex
		}
	}

	tests := []struct {
		name     string
		obj      *objmodel.Object
		tangents bool
		wantErr  error
	}{
		{"point primitive", point, false, ErrUnsupportedPrimitive},
		{"line primitive", line, false, ErrUnsupportedPrimitive},
		{"position out of range", outOfRange, false, ErrCornerOutOfRange},
		{"normal out of range", badNormal, false, ErrCornerOutOfRange},
		{"tangents without texcoords", noTexCoords, true, ErrMissingRequiredAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.obj, BuildOptions{GenerateTangents: tt.tangents})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("expected no mesh on error")
			}
		})
	}
}

func TestBuildSet(t *testing.T) {
	set := &objmodel.ObjSet{Objects: []objmodel.Object{*quadObject(), *pyramidObject()}}

	meshes, err := BuildSet(set, BuildOptions{GenerateTangents: true})
	if err != nil {
		t.Fatalf("BuildSet() error = %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].Name != "quad" || meshes[1].Name != "pyramid" {
		t.Errorf("mesh names = %q, %q", meshes[0].Name, meshes[1].Name)
	}

	set.Objects[1].Groups[0].Shapes[0].Kind = objmodel.PrimitiveLine
	if _, err := BuildSet(set, BuildOptions{}); !errors.Is(err, ErrUnsupportedPrimitive) {
		t.Errorf("BuildSet() error = %v, want %v", err, ErrUnsupportedPrimitive)
	}
}

func TestMesh_Geometry(t *testing.T) {
	m, err := Build(quadObject(), BuildOptions{GenerateTangents: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g := m.Geometry()

	if g.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", g.VertexCount())
	}
	if len(g.Normals) != 12 {
		t.Errorf("expected 12 normal floats, got %d", len(g.Normals))
	}
	if len(g.Tangents) != 16 {
		t.Errorf("expected 16 tangent floats, got %d", len(g.Tangents))
	}
	if len(g.TexCoords) != 8 {
		t.Errorf("expected 8 texcoord floats, got %d", len(g.TexCoords))
	}

	idx16, err := g.Indices16()
	if err != nil {
		t.Fatalf("Indices16() error = %v", err)
	}
	if len(idx16) != 6 || idx16[5] != 3 {
		t.Errorf("Indices16() = %v", idx16)
	}

	g.Indices = append(g.Indices, 70000)
	if _, err := g.Indices16(); !errors.Is(err, ErrIndexOverflow) {
		t.Errorf("Indices16() error = %v, want %v", err, ErrIndexOverflow)
	}
	if _, err := g.Indices8(); !errors.Is(err, ErrIndexOverflow) {
		t.Errorf("Indices8() error = %v, want %v", err, ErrIndexOverflow)
	}
}

func TestMesh_GeometryWithoutOptionalAttributes(t *testing.T) {
	obj := quadObject()
	obj.Groups[0].Shapes[0].Corners[1].Normal = objmodel.NoIndex

	m, err := Build(obj, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g := m.Geometry()
	if len(g.Normals) != 0 || len(g.Tangents) != 0 {
		t.Errorf("expected no normals or tangents, got %d and %d floats", len(g.Normals), len(g.Tangents))
	}
	if len(g.TexCoords) != 8 {
		t.Errorf("expected 8 texcoord floats, got %d", len(g.TexCoords))
	}
	for i, v := range m.Vertices {
		if v.HasNormal {
			t.Errorf("vertex %d should not carry a normal", i)
		}
	}
}
