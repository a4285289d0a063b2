// Package source loads language files from a file system into a
// [lang.Linguini].
//
// Files share a base name and differ by language code:
//
//	lang.common.json   // common variables (optional)
//	lang.en.json       // {"refs": {...}, "data": {...}}
//	lang.de.yaml
//
// JSON files are decoded with encoding/json, YAML files with
// github.com/goccy/go-yaml.
//
//	l, err := source.Open("locales", "lang",
//		source.WithReplacementLevels(5),
//		source.WithCommonFile("/etc/app/common.yaml"),
//	)
package source
