package objmodel

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Model document errors.
var (
	ErrInvalidModel = errors.New("invalid model document")
	ErrNoObjects    = errors.New("model document has no objects")
)

// The document types mirror the in-memory model one to one. Only the
// optional corner indices need special handling so that a missing key
// decodes to NoIndex instead of zero.

type documentFile struct {
	Objects []documentObject `yaml:"objects"`
}

type documentObject struct {
	Name      string          `yaml:"name"`
	Positions [][3]float64    `yaml:"positions"`
	Normals   [][3]float64    `yaml:"normals"`
	TexCoords [][2]float64    `yaml:"texcoords"`
	Groups    []documentGroup `yaml:"groups"`
}

type documentGroup struct {
	Name   string          `yaml:"name"`
	Shapes []documentShape `yaml:"shapes"`
}

type documentShape struct {
	Kind    string           `yaml:"kind"`
	Corners []documentCorner `yaml:"corners"`
}

type documentCorner struct {
	P int  `yaml:"p"`
	T *int `yaml:"t,omitempty"`
	N *int `yaml:"n,omitempty"`
}

// Parse decodes a YAML model document.
func Parse(data []byte) (*ObjSet, error) {
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if len(doc.Objects) == 0 {
		return nil, ErrNoObjects
	}

	set := &ObjSet{Objects: make([]Object, len(doc.Objects))}
	for i, do := range doc.Objects {
		obj, err := do.toObject()
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, do.Name, err)
		}
		set.Objects[i] = obj
	}
	return set, nil
}

// ParseFile reads and decodes a YAML model document from disk.
func ParseFile(path string) (*ObjSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a set back into the YAML document form.
func Marshal(set *ObjSet) ([]byte, error) {
	doc := documentFile{Objects: make([]documentObject, len(set.Objects))}
	for i := range set.Objects {
		doc.Objects[i] = fromObject(&set.Objects[i])
	}
	return yaml.Marshal(&doc)
}

func (do documentObject) toObject() (Object, error) {
	obj := Object{
		Name:      do.Name,
		Positions: make([]mgl64.Vec3, len(do.Positions)),
		Normals:   make([]mgl64.Vec3, len(do.Normals)),
		TexCoords: make([]mgl64.Vec2, len(do.TexCoords)),
		Groups:    make([]Group, len(do.Groups)),
	}
	for i, p := range do.Positions {
		obj.Positions[i] = mgl64.Vec3(p)
	}
	for i, n := range do.Normals {
		obj.Normals[i] = mgl64.Vec3(n)
	}
	for i, t := range do.TexCoords {
		obj.TexCoords[i] = mgl64.Vec2(t)
	}

	for gi, dg := range do.Groups {
		g := Group{Name: dg.Name, Shapes: make([]Shape, len(dg.Shapes))}
		for si, ds := range dg.Shapes {
			kind, err := parseKind(ds.Kind)
			if err != nil {
				return Object{}, fmt.Errorf("group %d shape %d: %w", gi, si, err)
			}
			s := Shape{Kind: kind, Corners: make([]CornerIndex, len(ds.Corners))}
			for ci, dc := range ds.Corners {
				c := Corner(dc.P)
				if dc.T != nil {
					c.TexCoord = *dc.T
				}
				if dc.N != nil {
					c.Normal = *dc.N
				}
				s.Corners[ci] = c
			}
			g.Shapes[si] = s
		}
		obj.Groups[gi] = g
	}
	return obj, nil
}

func fromObject(o *Object) documentObject {
	do := documentObject{
		Name:      o.Name,
		Positions: make([][3]float64, len(o.Positions)),
		Normals:   make([][3]float64, len(o.Normals)),
		TexCoords: make([][2]float64, len(o.TexCoords)),
		Groups:    make([]documentGroup, len(o.Groups)),
	}
	for i, p := range o.Positions {
		do.Positions[i] = p
	}
	for i, n := range o.Normals {
		do.Normals[i] = n
	}
	for i, t := range o.TexCoords {
		do.TexCoords[i] = t
	}
	for gi, g := range o.Groups {
		dg := documentGroup{Name: g.Name, Shapes: make([]documentShape, len(g.Shapes))}
		for si, s := range g.Shapes {
			ds := documentShape{Kind: s.Kind.String(), Corners: make([]documentCorner, len(s.Corners))}
			for ci, c := range s.Corners {
				dc := documentCorner{P: c.Position}
				if c.HasTexCoord() {
					t := c.TexCoord
					dc.T = &t
				}
				if c.HasNormal() {
					n := c.Normal
					dc.N = &n
				}
				ds.Corners[ci] = dc
			}
			dg.Shapes[si] = ds
		}
		do.Groups[gi] = dg
	}
	return do
}

func parseKind(s string) (PrimitiveKind, error) {
	switch s {
	case "", "triangle":
		return PrimitiveTriangle, nil
	case "point":
		return PrimitivePoint, nil
	case "line":
		return PrimitiveLine, nil
	default:
		return 0, fmt.Errorf("%w: unknown primitive kind %q", ErrInvalidModel, s)
	}
}
