package lang

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/text/language"
)

// Linguini serves lookups over resolved language data.
//
// A Linguini is created by [New] and never modified afterwards, so it is safe
// for concurrent use without synchronization. Values returned by its methods
// are copies.
type Linguini struct {
	com     Flat
	langs   map[string]record
	codes   []string
	matcher language.Matcher
	levels  int
}

// Get returns the item at location in the data of langCode, converted with
// mapper after the variables in vars have been substituted.
func Get[T any](
	l *Linguini,
	location, langCode string,
	mapper Mapper[T],
	vars ...Scope,
) (T, error) {
	raw, err := l.GetRaw(location, langCode, vars...)
	if err != nil {
		var zero T

		return zero, err
	}

	out, err := mapper(raw)
	if err != nil {
		var zero T

		return zero, WrapError(err).With(
			slog.String("location", location),
			slog.String("lang", langCode),
		)
	}

	return out, nil
}

// GetRaw returns a copy of the item at location, a "category.item" dot-path
// into the data of langCode, with the variables of each scope in vars
// substituted in order.
func (l *Linguini) GetRaw(location, langCode string, vars ...Scope) (Value, error) {
	rec, err := l.record(langCode)
	if err != nil {
		return nil, err
	}

	val, ok := rec.data[location]
	if !ok {
		return nil, invalidLocation(location, slices.Collect(maps.Keys(rec.data))).
			With(slog.String("lang", langCode))
	}

	val = Clone(val)
	for _, s := range vars {
		val = Replace(val, AsFlat(s))
	}

	return val, nil
}

// GetRef returns the reference variable at location in langCode, with the
// variables of each scope in vars substituted in order.
func (l *Linguini) GetRef(location, langCode string, vars ...Scope) (string, error) {
	rec, err := l.record(langCode)
	if err != nil {
		return "", err
	}

	ref, ok := rec.refs[ReferencePrefix+location]
	if !ok {
		return "", invalidLocation(location, trimmed(rec.refs, ReferencePrefix)).
			With(slog.String("lang", langCode))
	}

	return substitute(ref, vars), nil
}

// GetCom returns the common variable at location, with the variables of each
// scope in vars substituted in order.
func (l *Linguini) GetCom(location string, vars ...Scope) (string, error) {
	com, ok := l.com[CommonPrefix+location]
	if !ok {
		return "", invalidLocation(location, trimmed(l.com, CommonPrefix))
	}

	return substitute(com, vars), nil
}

// Languages returns the sorted codes of all loaded languages.
func (l *Linguini) Languages() []string { return slices.Clone(l.codes) }

// HasLanguage reports whether langCode was loaded.
func (l *Linguini) HasLanguage(langCode string) bool {
	_, ok := l.langs[langCode]

	return ok
}

// Levels returns the number of replacement rounds used during resolution.
func (l *Linguini) Levels() int { return l.levels }

// Locations returns the sorted data locations of langCode.
func (l *Linguini) Locations(langCode string) ([]string, error) {
	rec, err := l.record(langCode)
	if err != nil {
		return nil, err
	}

	return slices.Sorted(maps.Keys(rec.data)), nil
}

// Data returns a copy of the resolved data of langCode keyed by location.
func (l *Linguini) Data(langCode string) (map[string]Value, error) {
	rec, err := l.record(langCode)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Value, len(rec.data))
	for location, val := range rec.data {
		out[location] = Clone(val)
	}

	return out, nil
}

// Refs returns a copy of the resolved reference variables of langCode keyed
// by location, without the reference prefix.
func (l *Linguini) Refs(langCode string) (Flat, error) {
	rec, err := l.record(langCode)
	if err != nil {
		return nil, err
	}

	return trimmedFlat(rec.refs, ReferencePrefix), nil
}

// Common returns a copy of the resolved common variables keyed by location,
// without the common prefix.
func (l *Linguini) Common() Flat { return trimmedFlat(l.com, CommonPrefix) }

func (l *Linguini) record(langCode string) (record, error) {
	rec, ok := l.langs[langCode]
	if !ok {
		return record{}, ErrInvalidLanguage.
			Wrap(errors.New(strconv.Quote(langCode))).
			With(
				slog.String("lang", langCode),
				slog.Any("languages", l.codes),
			)
	}

	return rec, nil
}

func substitute(text string, vars []Scope) string {
	for _, s := range vars {
		text = AsFlat(s).ReplaceString(text)
	}

	return text
}

// trimmed returns the names of vars with prefix removed.
func trimmed(vars Flat, prefix string) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name[len(prefix):])
	}

	return names
}

func trimmedFlat(vars Flat, prefix string) Flat {
	out := make(Flat, len(vars))
	for name, text := range vars {
		out[name[len(prefix):]] = text
	}

	return out
}
