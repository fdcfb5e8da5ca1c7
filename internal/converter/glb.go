package converter

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/meshpack/internal/engine/mesh"
	"github.com/Faultbox/meshpack/internal/export/glb"
	"github.com/Faultbox/meshpack/internal/logger"
)

// WriteGLB exports all meshes into <model>.glb in the output directory.
func (c *Converter) WriteGLB(modelPath string, meshes []*mesh.Mesh) (string, error) {
	if err := c.ensureOutDir(); err != nil {
		return "", err
	}

	path := filepath.Join(c.outDir, modelStem(modelPath)+".glb")
	if err := glb.Write(path, meshes); err != nil {
		return "", err
	}

	logger.Info("wrote glb", zap.String("path", path), zap.Int("meshes", len(meshes)))
	return path, nil
}
