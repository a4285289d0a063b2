package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/linguini/lang"
	"github.com/ardnew/linguini/log"
)

// Dump prints the resolved data and variables of the loaded languages.
type Dump struct {
	Lang   []string `help:"Language codes to dump (default: all)." short:"l"`
	Format string   `default:"yaml" help:"Output format (${enum})." short:"f" enum:"json,yaml"`
}

// dumpLanguage is the resolved content of one language.
type dumpLanguage struct {
	Data map[string]any    `json:"data" yaml:"data"`
	Refs map[string]string `json:"refs" yaml:"refs"`
}

// dump is the document printed by Dump.
type dump struct {
	Common    map[string]string       `json:"common"    yaml:"common"`
	Languages map[string]dumpLanguage `json:"languages" yaml:"languages"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	l, err := load(ctx)
	if err != nil {
		return err
	}

	codes := d.Lang
	if len(codes) == 0 {
		codes = l.Languages()
	}

	doc := dump{
		Common:    l.Common(),
		Languages: make(map[string]dumpLanguage, len(codes)),
	}

	for _, code := range codes {
		code = selectLanguage(ctx, l, code)

		entry, err := makeDumpLanguage(l, code)
		if err != nil {
			return err
		}

		doc.Languages[code] = entry
	}

	log.DebugContext(ctx, "dump",
		slog.Int("languages", len(doc.Languages)),
		slog.Int("common", len(doc.Common)),
	)

	return write(output(ctx), d.Format, doc)
}

func makeDumpLanguage(l *lang.Linguini, code string) (dumpLanguage, error) {
	data, err := l.Data(code)
	if err != nil {
		return dumpLanguage{}, err
	}

	refs, err := l.Refs(code)
	if err != nil {
		return dumpLanguage{}, err
	}

	out := dumpLanguage{
		Data: make(map[string]any, len(data)),
		Refs: refs,
	}

	for loc, val := range data {
		out.Data[loc] = lang.ToNative(val)
	}

	return out, nil
}

// Langs prints the loaded language codes, one per line.
type Langs struct{}

// Run executes the langs command.
func (Langs) Run(ctx context.Context) error {
	l, err := load(ctx)
	if err != nil {
		return err
	}

	return writeLines(output(ctx), l.Languages())
}

// Match prints the loaded language that best matches the given language
// preferences, each a BCP 47 tag or an Accept-Language header value.
type Match struct {
	Preferred []string `arg:"" help:"Preferred languages, most preferred first." name:"tag"`
}

// Run executes the match command.
func (m *Match) Run(ctx context.Context) error {
	l, err := load(ctx)
	if err != nil {
		return err
	}

	code, ok := l.Match(m.Preferred...)
	if !ok {
		return ErrNoMatch.With(
			slog.Any("preferred", m.Preferred),
			slog.Any("languages", l.Languages()),
		)
	}

	return writeLines(output(ctx), []string{code})
}
