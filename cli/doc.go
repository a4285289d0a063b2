// Package cli contains the command line interface for linguini.
//
// # Usage
//
//	linguini [flags] <command> [args]
//
//	linguini -d ./i18n get greetings.hello -l es -v name=Ana
//	linguini -d ./i18n dump -f json
//	linguini match "fr-CA,fr;q=0.9,en;q=0.8"
//
// # Source Options
//
//   - --dir, -d: directory containing the language files (default ".")
//   - --base, -b: base name of the language files (default "lang")
//   - --common: path of the common file, overriding {base}.common.* in dir
//   - --levels: rounds of variable resolution (default 10)
//
// # Configuration
//
// Flag defaults are read from config.yaml, then config.json, in the user
// configuration directory ($XDG_CONFIG_HOME/linguini on Linux). The init
// command writes config.yaml from the current flag values. Flags given on
// the command line take precedence.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorized text or indented JSON
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode, -p: enable profiling (see package profile)
//   - --pprof-dir: profile output directory
package cli
