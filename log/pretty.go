package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI escape sequences used by the pretty text handler.
const (
	ansiReset   = "\033[0m"
	ansiGray    = "\033[90m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// prettyHandler writes colorized key=value lines without quoting.
type prettyHandler struct {
	opts   slog.HandlerOptions
	layout string
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	group  string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions, layout string) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		layout: layout,
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if h.layout != "" && !r.Time.IsZero() {
		buf.WriteString(ansiGray)
		buf.WriteString(r.Time.Format(h.layout))
		buf.WriteString(ansiReset)
		buf.WriteByte(' ')
	}

	buf.WriteString(levelColor(r.Level))
	fmt.Fprintf(&buf, "%-5s", strings.ToUpper(Level(r.Level).String()))
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteString(ansiGray)
			fmt.Fprintf(&buf, "%s:%d ", src.File, src.Line)
			buf.WriteString(ansiReset)
		}
	}

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&buf, h.group, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h

	for _, a := range attrs {
		clone.attrs = append(clone.attrs[:len(clone.attrs):len(clone.attrs)],
			slog.Attr{Key: qualify(h.group, a.Key), Value: a.Value})
	}

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = qualify(h.group, name)

	return &clone
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}

	return group + "." + key
}

func writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	key := qualify(group, a.Key)

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(buf, key, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(ansiGray)
	buf.WriteString(key)
	buf.WriteString(ansiReset)
	buf.WriteByte('=')

	color, text := ansiCyan, a.Value.String()

	switch a.Value.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		color = ansiYellow
	case slog.KindBool:
		color = ansiRed
		if a.Value.Bool() {
			color = ansiGreen
		}
	case slog.KindDuration:
		color = ansiMagenta
	case slog.KindTime:
		color = ansiBlue
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			color, text = ansiRed, strconv.Quote(err.Error())
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(ansiReset)
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiGreen
	case level >= slog.LevelDebug:
		return ansiBlue
	default:
		return ansiMagenta
	}
}

// indentWriter re-indents each JSON record written by a [slog.JSONHandler],
// which writes exactly one record per call.
type indentWriter struct {
	w io.Writer
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer

	if err := json.Indent(&buf, bytes.TrimSpace(p), "", "  "); err != nil {
		return iw.w.Write(p)
	}

	buf.WriteByte('\n')

	if _, err := iw.w.Write(buf.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
