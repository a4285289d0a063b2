package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] that reads a YAML configuration
// file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys are flag names. Nested mappings are joined with "-", so both forms
// below set --log-level, and underscores may stand in for hyphens:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Command-line flags override config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var tree map[string]any

	err := yaml.NewDecoder(r).Decode(&tree)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	conf := make(config)
	conf.add("", tree)

	return conf, nil
}

// config implements [kong.Resolver] over flag names and their values.
type config map[string]any

func (c config) add(prefix string, tree map[string]any) {
	for key, val := range tree {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch val := val.(type) {
		case map[string]any:
			c.add(key, val)

		default:
			c[key] = flagValue(val)
		}
	}
}

// flagValue converts a decoded YAML value to a form kong's mappers accept.
// Numbers become strings; sequences become comma-separated strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		part := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := flagValue(elem).(string)
			if !ok {
				s = strings.TrimSpace(yamlString(elem))
			}

			part = append(part, s)
		}

		return strings.Join(part, ",")
	default:
		return v
	}
}

func yamlString(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}

	return string(out)
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}
