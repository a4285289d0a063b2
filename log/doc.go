// Package log provides a simplified logging interface based on [log/slog].
//
// A [Logger] is configured once, at creation, with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
//	logger.Info("languages loaded", slog.Int("count", 3))
//
// Logging methods accept only [slog.Attr] values. Each level has a variant
// taking a [context.Context]; the others use [DefaultContextProvider].
//
// The package-level functions log through a default logger that writes to
// standard error and is reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.ParseLevel("debug")))
//	log.Debug("resolved", slog.String("lang", "en"))
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo] (default), [LevelWarn], and
// [LevelError]. Trace sits below slog's debug level.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, the
// default, text output is colorized and JSON output is indented.
package log
