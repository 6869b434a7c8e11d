// Package config loads selescript settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default <UserConfigDir>/selescript/config.toml
//  3. Environment variables (SELESCRIPT_SCRIPTS_DIR, SELESCRIPT_LOG_LEVEL,
//     SELESCRIPT_EDITOR, then EDITOR)
//
// A missing config file is not an error.
//
// Example config.toml:
//
//	scripts_dir = "~/scripts/selescript"
//	extension   = ".lua"
//	log_level   = "warn"
//	editor      = "vim"
//	color       = true
package config
