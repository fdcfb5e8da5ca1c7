package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTangents = flag.Bool("tangents", false, "Generate tangents (requires normals and texcoords)")
	flagCodec    = flag.String("codec", "", "Attribute codec: packed or float32")
	flagOut      = flag.String("out", "", "Output directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTangents {
		cfg.Mesh.GenerateTangents = true
	}
	if *flagCodec != "" {
		cfg.Mesh.Codec = *flagCodec
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
}
