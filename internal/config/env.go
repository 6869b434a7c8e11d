package config

// Environment variables read by ApplyEnv.
const (
	EnvScriptsDir = "SELESCRIPT_SCRIPTS_DIR"
	EnvLogLevel   = "SELESCRIPT_LOG_LEVEL"
	EnvEditor     = "SELESCRIPT_EDITOR"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with environment variables.
// Empty values are treated as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvScriptsDir); ok {
		cfg.ScriptsDir = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvEditor); ok {
		cfg.Editor = v
	} else if v, ok := get("EDITOR"); ok {
		cfg.Editor = v
	}
}
