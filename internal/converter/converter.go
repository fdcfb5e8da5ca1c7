// Package converter drives model files through mesh building and writes the
// results as packed buffers or GLB files.
package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshpack/internal/config"
	"github.com/Faultbox/meshpack/internal/engine/mesh"
	"github.com/Faultbox/meshpack/internal/logger"
	"github.com/Faultbox/meshpack/pkg/objmodel"
)

var (
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command selects what Run produces.
type Command string

const (
	CommandInfo Command = "info"
	CommandPack Command = "pack"
	CommandGLB  Command = "glb"
)

// ParseCommand validates a command name.
func ParseCommand(name string) (Command, error) {
	switch c := Command(name); c {
	case CommandInfo, CommandPack, CommandGLB:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Converter holds resolved settings for one run.
type Converter struct {
	opts   mesh.BuildOptions
	outDir string
}

// New resolves cfg into a converter.
func New(cfg *config.Config) (*Converter, error) {
	codec, ok := mesh.CodecByName(cfg.Mesh.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, cfg.Mesh.Codec)
	}
	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = "."
	}
	return &Converter{
		opts: mesh.BuildOptions{
			GenerateTangents: cfg.Mesh.GenerateTangents,
			Codec:            codec,
		},
		outDir: outDir,
	}, nil
}

// Result lists what a run produced.
type Result struct {
	Summaries []Summary
	Files     []string
}

// Run loads modelPath and executes cmd on it.
func (c *Converter) Run(cmd Command, modelPath string) (*Result, error) {
	if _, err := ParseCommand(string(cmd)); err != nil {
		return nil, err
	}
	meshes, err := c.Convert(modelPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Summaries: Summarize(meshes)}
	switch cmd {
	case CommandInfo:
	case CommandPack:
		res.Files, err = c.Pack(meshes)
	case CommandGLB:
		var path string
		path, err = c.WriteGLB(modelPath, meshes)
		res.Files = []string{path}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Convert parses a model document and builds one mesh per object.
func (c *Converter) Convert(modelPath string) ([]*mesh.Mesh, error) {
	logger.Info("loading model", zap.String("path", modelPath))

	set, err := objmodel.ParseFile(modelPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("model parsed", zap.Int("objects", len(set.Objects)))

	return c.Build(set)
}

// Build converts every object of set, logging each mesh.
func (c *Converter) Build(set *objmodel.ObjSet) ([]*mesh.Mesh, error) {
	meshes, err := mesh.BuildSet(set, c.opts)
	if err != nil {
		return nil, err
	}

	for _, m := range meshes {
		logger.Info("built mesh",
			zap.String("object", m.Name),
			zap.Int("triangles", m.TriangleCount()),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("index_size", m.IndexSize()),
			zap.Stringer("layout", m.Layout))
		if n := m.NonFiniteTangents(); n > 0 {
			logger.Warn("degenerate texture coordinates produced non-finite tangents",
				zap.String("object", m.Name),
				zap.Int("vertices", n))
		}
	}
	return meshes, nil
}

// ensureOutDir creates the output directory if needed.
func (c *Converter) ensureOutDir() error {
	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	return nil
}

// fileStems returns a unique, path-safe file stem per mesh. Names made only
// of dots would resolve to a directory and fall back to object<i>.
func fileStems(meshes []*mesh.Mesh) []string {
	used := make(map[string]bool)
	stems := make([]string, len(meshes))
	for i, m := range meshes {
		base := strings.Map(func(r rune) rune {
			switch r {
			case '/', '\\', ':', ' ':
				return '_'
			}
			return r
		}, m.Name)
		if strings.Trim(base, ".") == "" {
			base = fmt.Sprintf("object%d", i)
		}
		stem := base
		for n := 1; used[stem]; n++ {
			stem = fmt.Sprintf("%s_%d", base, n)
		}
		used[stem] = true
		stems[i] = stem
	}
	return stems
}

// modelStem is the model file name without directory or extension.
func modelStem(modelPath string) string {
	base := filepath.Base(modelPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
