// Package mapper provides [lang.Mapper] implementations converting resolved
// raw values to common Go types.
package mapper

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/ardnew/linguini/lang"
)

func invalidType(want string, v lang.Value) *lang.Error {
	got := "nil"
	if v != nil {
		got = v.Kind().String()
	}

	return lang.ErrInvalidType.
		Wrap(fmt.Errorf("want %s, got %s", want, got)).
		With(slog.String("want", want), slog.String("got", got))
}

// String maps a string, number, or boolean to its text.
func String(v lang.Value) (string, error) {
	switch v := v.(type) {
	case lang.String:
		return string(v), nil
	case lang.Number:
		return string(v), nil
	case lang.Bool:
		return strconv.FormatBool(bool(v)), nil
	default:
		return "", invalidType("string", v)
	}
}

// Text maps a string or an array of lines to a single newline-joined string.
func Text(v lang.Value) (string, error) {
	if _, ok := v.(lang.Object); ok {
		return "", invalidType("text", v)
	}

	s, ok := lang.Text(v)
	if !ok {
		return "", invalidType("text", v)
	}

	return s, nil
}

// Strings maps an array of strings, or a single string, to a slice.
func Strings(v lang.Value) ([]string, error) {
	switch v := v.(type) {
	case lang.String:
		return []string{string(v)}, nil

	case lang.Array:
		out := make([]string, len(v))

		for i, elem := range v {
			s, err := String(elem)
			if err != nil {
				return nil, err
			}

			out[i] = s
		}

		return out, nil

	default:
		return nil, invalidType("array", v)
	}
}

// Int maps a number, or a string holding one, to an int.
func Int(v lang.Value) (int, error) {
	s, err := String(v)
	if err != nil {
		return 0, invalidType("integer", v)
	}

	n, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		return 0, invalidType("integer", v).Wrap(err)
	}

	return int(n), nil
}

// Float maps a number, or a string holding one, to a float64.
func Float(v lang.Value) (float64, error) {
	s, err := String(v)
	if err != nil {
		return 0, invalidType("number", v)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidType("number", v).Wrap(err)
	}

	return f, nil
}

// Bool maps a boolean, or a string holding one, to a bool.
func Bool(v lang.Value) (bool, error) {
	switch v := v.(type) {
	case lang.Bool:
		return bool(v), nil

	case lang.String:
		b, err := strconv.ParseBool(string(v))
		if err != nil {
			return false, invalidType("boolean", v).Wrap(err)
		}

		return b, nil

	default:
		return false, invalidType("boolean", v)
	}
}

// Duration maps a string such as "1h30m" to a [time.Duration].
func Duration(v lang.Value) (time.Duration, error) {
	s, err := String(v)
	if err != nil {
		return 0, invalidType("duration", v)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, invalidType("duration", v).Wrap(err)
	}

	return d, nil
}

// Time returns a mapper parsing strings with the given [time.Parse] layout.
func Time(layout string) lang.Mapper[time.Time] {
	return func(v lang.Value) (time.Time, error) {
		s, err := String(v)
		if err != nil {
			return time.Time{}, invalidType("time", v)
		}

		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, invalidType("time", v).Wrap(err)
		}

		return t, nil
	}
}

// Regexp compiles a string to a regular expression.
func Regexp(v lang.Value) (*regexp.Regexp, error) {
	s, err := String(v)
	if err != nil {
		return nil, invalidType("regexp", v)
	}

	re, err := regexp.Compile(s)
	if err != nil {
		return nil, invalidType("regexp", v).Wrap(err)
	}

	return re, nil
}

// URL parses a string as a URL.
func URL(v lang.Value) (*url.URL, error) {
	s, err := String(v)
	if err != nil {
		return nil, invalidType("url", v)
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, invalidType("url", v).Wrap(err)
	}

	return u, nil
}

// Native maps any value to native Go values (see [lang.ToNative]).
func Native(v lang.Value) (any, error) { return lang.ToNative(v), nil }
