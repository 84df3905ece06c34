package cliconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvSeed      = "DX_SEED"
	EnvCount     = "DX_COUNT"
	EnvRetries   = "DX_RETRIES"
	EnvNullProb  = "DX_NULL_PROB"
	EnvMaxRepeat = "DX_MAX_REPEAT"
	EnvDicts     = "DX_DICTS"
	EnvLogLevel  = "DX_LOG_LEVEL"
	EnvLogFormat = "DX_LOG_FORMAT"
	EnvLogFile   = "DX_LOG_FILE"
	EnvJSON      = "DX_JSON"
)

// ApplyEnv overlays environment variables onto cfg. Only variables
// present in the environment are applied; unparseable values are
// ignored.
func ApplyEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		cfg.Seed = v
		cfg.Sources["seed"] = SourceEnv
	}
	if v := os.Getenv(EnvCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Count = n
			cfg.Sources["count"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Retries = n
			cfg.Sources["retries"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvNullProb); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.NullProb = p
			cfg.Sources["nullProb"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvMaxRepeat); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRepeat = n
			cfg.Sources["maxRepeat"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvDicts); v != "" {
		cfg.Dicts = strings.Split(v, string(os.PathListSeparator))
		cfg.Sources["dicts"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
		cfg.Sources["logFile"] = SourceEnv
	}
	if v := os.Getenv(EnvJSON); v != "" {
		cfg.JSON = v == "true" || v == "1" || v == "yes"
		cfg.Sources["json"] = SourceEnv
	}
}
