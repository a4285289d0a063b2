// Package profile provides optional runtime profiling for linguini.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	linguini --pprof-mode cpu get greetings.hello
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// Profiles are written to the directory given by [Profiler.Path], by default
// the "pprof" directory under the user cache directory, and analyzed with:
//
//	go tool pprof -http=: $XDG_CACHE_HOME/linguini/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
