package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
	"github.com/Faultbox/meshpack/internal/engine/vertexattrib"
	"github.com/Faultbox/meshpack/internal/logger"
)

// File suffixes written by Pack.
const (
	VertexSuffix = ".vtx"
	IndexSuffix  = ".idx"
	LayoutSuffix = ".layout.yaml"
)

// LayoutFile is the sidecar describing a packed vertex buffer, enough for a
// renderer to set up its attribute pointers without this module.
type LayoutFile struct {
	Name        string            `yaml:"name"`
	Codec       string            `yaml:"codec"`
	Stride      int               `yaml:"stride"`
	VertexCount int               `yaml:"vertex_count"`
	IndexCount  int               `yaml:"index_count"`
	IndexSize   int               `yaml:"index_size"`
	IndexType   string            `yaml:"index_type"`
	Bounds      *LayoutBounds     `yaml:"bounds,omitempty"`
	Attributes  []LayoutAttribute `yaml:"attributes"`
}

// LayoutBounds is the axis-aligned box of the positions.
type LayoutBounds struct {
	Min [3]float64 `yaml:"min,flow"`
	Max [3]float64 `yaml:"max,flow"`
}

// LayoutAttribute is one vertex attribute of the sidecar.
type LayoutAttribute struct {
	Name       string `yaml:"name"`
	Location   uint32 `yaml:"location"`
	Components int32  `yaml:"components"`
	Type       string `yaml:"type"`
	GLType     uint32 `yaml:"gl_type"`
	Normalized bool   `yaml:"normalized"`
	Offset     int    `yaml:"offset"`
}

// NewLayoutFile describes m.
func NewLayoutFile(m *mesh.Mesh) LayoutFile {
	lf := LayoutFile{
		Name:        m.Name,
		Codec:       m.Layout.Codec().Name(),
		Stride:      m.Layout.Stride(),
		VertexCount: len(m.Vertices),
		IndexCount:  len(m.Indices),
		IndexSize:   m.IndexSize(),
		IndexType:   vertexattrib.TypeName(vertexattrib.IndexType(m.IndexSize())),
	}
	if !m.Bounds.Empty() {
		lf.Bounds = &LayoutBounds{Min: m.Bounds.Min, Max: m.Bounds.Max}
	}
	for _, a := range vertexattrib.Describe(m.Layout) {
		lf.Attributes = append(lf.Attributes, LayoutAttribute{
			Name:       a.Attribute.String(),
			Location:   a.Location,
			Components: a.Size,
			Type:       vertexattrib.TypeName(a.Type),
			GLType:     a.Type,
			Normalized: a.Normalized,
			Offset:     int(a.Offset),
		})
	}
	return lf
}

// ReadLayoutFile loads a sidecar written by Pack.
func ReadLayoutFile(path string) (*LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf LayoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &lf, nil
}

// Pack writes vertex buffer, index buffer and layout sidecar per mesh into
// the output directory and returns the written paths.
func (c *Converter) Pack(meshes []*mesh.Mesh) ([]string, error) {
	if err := c.ensureOutDir(); err != nil {
		return nil, err
	}

	var written []string
	for i, stem := range fileStems(meshes) {
		m := meshes[i]
		base := filepath.Join(c.outDir, stem)

		layout, err := yaml.Marshal(NewLayoutFile(m))
		if err != nil {
			return written, fmt.Errorf("failed to encode layout for %s: %w", m.Name, err)
		}

		files := []struct {
			path string
			data []byte
		}{
			{base + VertexSuffix, m.VertexBuffer()},
			{base + IndexSuffix, m.IndexBuffer()},
			{base + LayoutSuffix, layout},
		}
		for _, f := range files {
			if err := os.WriteFile(f.path, f.data, 0644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", f.path, err)
			}
			written = append(written, f.path)
		}

		logger.Info("packed mesh",
			zap.String("object", m.Name),
			zap.String("vertex_file", base+VertexSuffix),
			zap.Int("vertex_bytes", len(files[0].data)),
			zap.Int("index_bytes", len(files[1].data)))
	}
	return written, nil
}
