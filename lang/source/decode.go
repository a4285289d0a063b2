package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/linguini/lang"
)

// Decode parses the content of a JSON or YAML file, chosen by the extension
// of name, into a [lang.Value].
//
// JSON numbers keep their source text. Decoder errors are returned wrapped
// with the file name; use [errors.As] to inspect them.
func Decode(name string, data []byte) (lang.Value, error) {
	var (
		native any
		err    error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&native)

	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &native)

	default:
		return nil, lang.ErrInvalidValue.
			Wrap(fmt.Errorf("%s: unsupported file extension %q", name, ext)).
			With(slog.String("file", name))
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return lang.FromNative(native)
}

// decodeTree decodes a file whose top level must be an object. Empty files
// yield an empty tree.
func decodeTree(name string, data []byte) (lang.Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return lang.Object{}, nil
	}

	v, err := Decode(name, data)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case lang.Object:
		return v, nil
	case lang.Null:
		return lang.Object{}, nil
	default:
		return nil, lang.ErrInvalidValue.
			Wrap(fmt.Errorf("%s: top level is a %s, not an object", name, v.Kind())).
			With(slog.String("file", name))
	}
}
