package cliconfig

// DefaultCount is the default number of values a batch emits.
const DefaultCount = 1

// DefaultRetries is the default per-slot retry cap for unique batches.
const DefaultRetries = 1000

// DefaultMaxRepeat is the default ceiling for unbounded regex
// quantifiers.
const DefaultMaxRepeat = 8

// DefaultLogLevel is the default minimum log level.
const DefaultLogLevel = "info"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Count:     DefaultCount,
		Retries:   DefaultRetries,
		MaxRepeat: DefaultMaxRepeat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	cfg.Sources["count"] = SourceDefault
	cfg.Sources["retries"] = SourceDefault
	cfg.Sources["maxRepeat"] = SourceDefault
	cfg.Sources["nullProb"] = SourceDefault
	cfg.Sources["logLevel"] = SourceDefault
	cfg.Sources["logFormat"] = SourceDefault

	return cfg
}
