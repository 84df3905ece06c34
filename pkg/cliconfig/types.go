// Package cliconfig provides configuration types and loading for the dx CLI.
package cliconfig

// Config represents the complete configuration for the dx CLI.
// Configuration values can come from multiple sources with the following
// precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (DX_* prefix)
// 3. Local config file (.dxrc.yaml in current directory)
// 4. Global config file (~/.config/dx/config.yaml)
// 5. Default values (lowest priority)
type Config struct {
	// Generation settings
	Seed      string  `yaml:"seed,omitempty"`
	Count     int     `yaml:"count"`
	Retries   int     `yaml:"retries"`
	NullProb  float64 `yaml:"nullProb"`
	MaxRepeat int     `yaml:"maxRepeat"`

	// Dicts are glob patterns for custom word list files.
	Dicts []string `yaml:"dicts,omitempty"`

	// Logging settings
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty"`

	// Output settings
	JSON bool `yaml:"json"`

	// Sources tracks where each value came from (for `dx config`).
	Sources map[string]string `yaml:"-"`

	// SetFields records which keys were explicitly present in a loaded
	// file, so explicit zero values (count: 0, json: false) survive the
	// merge.
	SetFields map[string]bool `yaml:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)
