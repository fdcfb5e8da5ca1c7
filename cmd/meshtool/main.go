// meshtool converts face-vertex models into indexed, packed GPU meshes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshpack/internal/config"
	"github.com/Faultbox/meshpack/internal/converter"
	"github.com/Faultbox/meshpack/internal/logger"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) > 0 && args[0] == "help" {
		printUsage()
		return
	}
	if len(args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, err := converter.ParseCommand(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Source != "" {
		logger.Debug("config loaded", zap.String("source", cfg.Source))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	conv, err := converter.New(cfg)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	res, err := conv.Run(cmd, args[1])
	if err != nil {
		logger.Error("conversion failed", zap.String("model", args[1]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	switch cmd {
	case converter.CommandInfo:
		converter.WriteSummaries(os.Stdout, res.Summaries)
	default:
		for _, f := range res.Files {
			fmt.Println(f)
		}
	}
}

func printUsage() {
	fmt.Println(`meshtool - face-vertex model to GPU mesh converter

Usage:
  meshtool [flags] <command> <model.yaml>

Commands:
  info <model.yaml>   Show per-object counts, layout and bounds
  pack <model.yaml>   Write <object>.vtx, <object>.idx and <object>.layout.yaml
  glb  <model.yaml>   Write <model>.glb

Flags:
  -config <path>      Config file (default: ./meshtool.yaml or user config dir)
  -debug              Enable debug logging
  -tangents           Generate tangents (every corner needs a normal and texcoord)
  -codec <name>       Attribute codec: packed (default) or float32
  -out <dir>          Output directory

Examples:
  meshtool info crate.yaml
  meshtool -tangents -out build pack crate.yaml
  meshtool -codec float32 glb crate.yaml`)
}
