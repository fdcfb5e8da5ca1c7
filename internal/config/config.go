// Package config handles meshtool configuration loading and management.
package config

// Config holds all conversion settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file Load applied, empty when none was found.
	Source string `yaml:"-"`
}

// MeshConfig controls how objects are turned into meshes.
type MeshConfig struct {
	GenerateTangents bool   `yaml:"generate_tangents"`
	Codec            string `yaml:"codec"` // "packed" or "float32"
}

// OutputConfig controls where converted files go.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			GenerateTangents: false,
			Codec:            "packed",
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
