package lang

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/linguini/log"
)

// File holds the parsed sections of one language file: the "data" category
// tree served by lookups and the "refs" category tree of reference
// variables, addressed as {{REF:category.item}}.
type File struct {
	Data Object
	Refs Object
}

// record is the resolved state of one language.
type record struct {
	data map[string]Value
	refs Flat
}

// New resolves the given language files, keyed by language code, into a
// read-only [Linguini].
//
// Common variables are resolved first and substituted into each language's
// reference variables, which are then resolved against themselves. Data
// trees are substituted last, so common values reach data either directly
// or through the references that embed them.
//
// The files are not modified.
func New(files map[string]File, opts ...Option) (*Linguini, error) {
	cfg := makeOptions(opts...)

	if cfg.levels < 0 {
		return nil, ErrInvalidOption.
			Wrap(fmt.Errorf("replacement levels must not be negative: %d", cfg.levels)).
			With(slog.Int("levels", cfg.levels))
	}

	l := &Linguini{
		com:    Flat{},
		langs:  make(map[string]record, len(files)),
		levels: cfg.levels,
	}

	if cfg.common != nil {
		l.com = FlattenVariables(cfg.common, CommonPrefix).Resolve(cfg.levels)
		logUnresolved("common", l.com)
	}

	l.codes = slices.Sorted(maps.Keys(files))

	for _, code := range l.codes {
		if code == "" {
			return nil, ErrInvalidLanguage.
				Wrap(fmt.Errorf("empty language code"))
		}

		l.langs[code] = l.build(code, files[code])
	}

	l.matcher = makeMatcher(l.codes)

	log.Debug("languages resolved",
		slog.Any("languages", l.codes),
		slog.Int("common", len(l.com)),
		slog.Int("levels", l.levels),
	)

	return l, nil
}

// build resolves the reference variables and data of a single language.
func (l *Linguini) build(code string, file File) record {
	refs := FlattenVariables(file.Refs, ReferencePrefix).
		Replace(l.com).
		Resolve(l.levels)

	logUnresolved(code, refs)

	// Common reaches data directly as well as through references.
	data, _ := Clone(file.Data).(Object)
	data, _ = Replace(data, l.com).(Object)
	data, _ = Replace(data, refs).(Object)

	rec := record{
		data: Flatten(data),
		refs: refs,
	}

	log.Trace("language resolved",
		slog.String("lang", code),
		slog.Int("items", len(rec.data)),
		slog.Int("refs", len(rec.refs)),
	)

	return rec
}

func logUnresolved(scope string, vars Flat) {
	if names := vars.Unresolved(); len(names) > 0 {
		log.Debug("unresolved variables",
			slog.String("scope", scope),
			slog.Any("names", names),
		)
	}
}
