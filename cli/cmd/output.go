package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/linguini/lang"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// formats lists the output formats accepted by write.
var formats = []string{formatText, formatJSON, formatYAML}

// write encodes v to w in format.
//
// The text format prints values that have a text form (see [lang.Text]) as is
// and falls back to YAML for objects.
func write(w io.Writer, format string, v any) error {
	var (
		out []byte
		err error
	)

	switch format {
	case formatText:
		if val, ok := v.(lang.Value); ok {
			if text, ok := lang.Text(val); ok {
				out = []byte(text)

				break
			}
		}

		return write(w, formatYAML, v)

	case formatJSON:
		out, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

	case formatYAML:
		if val, ok := v.(lang.Value); ok {
			v = lang.ToNative(val)
		}

		out, err = yaml.Marshal(v)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		return ErrInvalidFormat.With(
			slog.String("format", format),
			slog.String("valid", strings.Join(formats, ",")),
		)
	}

	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	if _, err := w.Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// writeLines prints each element of lines on its own line.
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
