package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/linguini/lang"
	"github.com/ardnew/linguini/log"
)

// Get prints a data item with variables substituted.
type Get struct {
	Lang   string            `default:"${lang}" help:"Language code, negotiated against the loaded languages." short:"l"`
	Var    map[string]string `help:"Variable to substitute, as NAME=VALUE."                  short:"v" placeholder:"NAME=VALUE" mapsep:"none"`
	Format string            `default:"text"    help:"Output format (${enum})."                                short:"f" enum:"text,json,yaml"`

	Location string `arg:"" help:"Item location, as category.item."`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	l, err := load(ctx)
	if err != nil {
		return err
	}

	code := selectLanguage(ctx, l, g.Lang)

	val, err := l.GetRaw(g.Location, code, lang.Flat(g.Var))
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "get",
		slog.String("location", g.Location),
		slog.String("lang", code),
		slog.String("kind", val.Kind().String()),
	)

	return write(output(ctx), g.Format, val)
}

// Ref prints a reference variable of a language with variables substituted.
type Ref struct {
	Lang string            `default:"${lang}" help:"Language code, negotiated against the loaded languages." short:"l"`
	Var  map[string]string `help:"Variable to substitute, as NAME=VALUE."                  short:"v" placeholder:"NAME=VALUE" mapsep:"none"`

	Location string `arg:"" help:"Reference location, as category.item."`
}

// Run executes the ref command.
func (r *Ref) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	l, err := load(ctx)
	if err != nil {
		return err
	}

	text, err := l.GetRef(r.Location, selectLanguage(ctx, l, r.Lang), lang.Flat(r.Var))
	if err != nil {
		return err
	}

	return write(output(ctx), formatText, lang.String(text))
}

// Com prints a common variable with variables substituted.
type Com struct {
	Var map[string]string `help:"Variable to substitute, as NAME=VALUE." short:"v" placeholder:"NAME=VALUE" mapsep:"none"`

	Location string `arg:"" help:"Common variable location, as category.item."`
}

// Run executes the com command.
func (c *Com) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	l, err := load(ctx)
	if err != nil {
		return err
	}

	text, err := l.GetCom(c.Location, lang.Flat(c.Var))
	if err != nil {
		return err
	}

	return write(output(ctx), formatText, lang.String(text))
}
