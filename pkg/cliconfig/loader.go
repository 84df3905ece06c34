package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is the name of the per-project config file.
	LocalConfigFileName = ".dxrc.yaml"
	// GlobalConfigDir is the directory under the user config dir.
	GlobalConfigDir = "dx"
	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.yaml"
)

// FindLocalConfig searches for .dxrc.yaml in the current directory.
// Returns empty string if not found.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// LoadConfigFile loads a Config from a YAML file and records which keys
// were present so explicit zero values survive merging.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// yaml errors already carry line information in their message.
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	var keys struct {
		Raw map[string]yaml.Node `yaml:",inline"`
	}
	if err := yaml.Unmarshal(data, &keys); err == nil {
		cfg.SetFields = make(map[string]bool, len(keys.Raw))
		for k := range keys.Raw {
			cfg.SetFields[k] = true
		}
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// LoadAll loads configuration from all file and environment sources and
// merges them. Flags are applied later by the command layer.
// Precedence: env > local config > global config > defaults.
func LoadAll() (*Config, error) {
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	ApplyEnv(cfg)

	return cfg, nil
}
