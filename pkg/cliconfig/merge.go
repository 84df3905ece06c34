package cliconfig

// MergeConfig merges source config into target, updating sources
// tracking. Non-zero values always apply; zero values apply only when
// SetFields shows the key was explicitly present.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Seed != "" {
		target.Seed = source.Seed
		target.Sources["seed"] = sourceType
	}
	if source.Count != 0 || isSet(source, "count") {
		target.Count = source.Count
		target.Sources["count"] = sourceType
	}
	if source.Retries != 0 || isSet(source, "retries") {
		target.Retries = source.Retries
		target.Sources["retries"] = sourceType
	}
	if source.NullProb != 0 || isSet(source, "nullProb") {
		target.NullProb = source.NullProb
		target.Sources["nullProb"] = sourceType
	}
	if source.MaxRepeat != 0 || isSet(source, "maxRepeat") {
		target.MaxRepeat = source.MaxRepeat
		target.Sources["maxRepeat"] = sourceType
	}
	if len(source.Dicts) > 0 {
		target.Dicts = source.Dicts
		target.Sources["dicts"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.LogFile != "" {
		target.LogFile = source.LogFile
		target.Sources["logFile"] = sourceType
	}
	if source.JSON || isSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

// isSet reports whether a key was explicitly present in a file-loaded
// config. Programmatic configs have nil SetFields, so only non-zero
// values merge for them.
func isSet(cfg *Config, key string) bool {
	return cfg.SetFields != nil && cfg.SetFields[key]
}
