// Package config handles gltfinfo tool configuration loading.
package config

// Config holds all tool settings.
type Config struct {
	Dump    DumpConfig    `yaml:"dump"`
	Logging LoggingConfig `yaml:"logging"`
}

// DumpConfig controls element dump output.
type DumpConfig struct {
	// MaxElements caps how many elements a dump prints. 0 means all.
	MaxElements int `yaml:"max_elements"`
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Dump: DumpConfig{
			MaxElements: 0,
			Color:       true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
