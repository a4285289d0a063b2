// Package cmd implements the linguini subcommands: lookups of data items
// (get), reference variables (ref), and common variables (com), the resolved
// dump of all loaded files (dump), the loaded languages (langs), language
// negotiation (match), and configuration file generation (init).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// LevelsIdentifier is the kong variable identifier containing the default
	// number of variable resolution rounds.
	LevelsIdentifier = "levels"

	// LangIdentifier is the kong variable identifier containing the default
	// language code.
	LangIdentifier = "lang"
)
