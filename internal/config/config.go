// Package config handles quattool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	// Precision is the number of decimal places printed per component.
	Precision int `yaml:"precision"`
	// Unit selects "degrees" or "radians" for angle output.
	Unit string `yaml:"unit"`
	// Compact prints results as a single comma-separated line.
	Compact bool `yaml:"compact"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 6,
			Unit:      "degrees",
			Compact:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
