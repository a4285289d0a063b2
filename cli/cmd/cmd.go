package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/linguini/lang"
	"github.com/ardnew/linguini/lang/source"
	"github.com/ardnew/linguini/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// output returns the writer commands print results to.
func output(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Source holds the global flags locating the language files.
type Source struct {
	Dir    string `default:"."         help:"Directory containing the language files."                   short:"d"`
	Base   string `default:"lang"      help:"Base name of the language files, as in {base}.{code}.json." short:"b"`
	Common string `help:"Path of the common file (default: {base}.common.* in dir)." type:"path"`
	Levels int    `default:"${levels}" help:"Rounds of variable resolution."`
}

type sourceKey struct{}

// WithSource returns a new context.Context containing the given source flags.
func WithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceKey{}, src)
}

func sourceFrom(ctx context.Context) Source {
	src, ok := ctx.Value(sourceKey{}).(Source)
	if !ok {
		return Source{Dir: ".", Base: "lang", Levels: lang.DefaultReplacementLevels}
	}

	return src
}

// load reads and resolves the language files named by the source flags in
// ctx.
func load(ctx context.Context) (*lang.Linguini, error) {
	src := sourceFrom(ctx)

	info, err := os.Stat(src.Dir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s: not a directory", src.Dir)
	}

	if err != nil {
		return nil, ErrInvalidDir.With(slog.String("dir", src.Dir)).Wrap(err)
	}

	opts := []source.Option{source.WithReplacementLevels(src.Levels)}
	if src.Common != "" {
		opts = append(opts, source.WithCommonFile(src.Common))
	}

	l, err := source.Open(src.Dir, src.Base, opts...)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "loaded language files",
		slog.String("dir", src.Dir),
		slog.String("base", src.Base),
		slog.Any("languages", l.Languages()),
	)

	return l, nil
}

// selectLanguage returns code if it was loaded, or else the loaded language
// negotiated from it. Unknown codes are returned unchanged so that lookups
// report them.
func selectLanguage(ctx context.Context, l *lang.Linguini, code string) string {
	if l.HasLanguage(code) {
		return code
	}

	if match, ok := l.Match(code); ok {
		log.DebugContext(ctx, "negotiated language",
			slog.String("requested", code),
			slog.String("matched", match),
		)

		return match
	}

	return code
}

// Language returns the language tag of the user's locale environment, or ""
// if none is set. "en_US.UTF-8" yields "en-US".
func Language() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(key)
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}

		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}

		return strings.ReplaceAll(val, "_", "-")
	}

	return ""
}
