//go:build pprof

package profile

import (
	"slices"

	"github.com/pkg/profile"
)

// modes lists the profile kinds accepted by --pprof-mode, in sorted order.
var modes = []string{
	"allocs", "block", "clock", "cpu", "goroutine",
	"heap", "mem", "mutex", "thread", "trace",
}

// Modes returns the sorted profiling modes.
func Modes() []string { return slices.Clone(modes) }

// option returns the profile option selecting mode.
func option(mode string) (func(*profile.Profile), bool) {
	switch mode {
	case "allocs":
		return profile.MemProfileAllocs, true
	case "block":
		return profile.BlockProfile, true
	case "clock":
		return profile.ClockProfile, true
	case "cpu":
		return profile.CPUProfile, true
	case "goroutine":
		return profile.GoroutineProfile, true
	case "heap":
		return profile.MemProfileHeap, true
	case "mem":
		return profile.MemProfile, true
	case "mutex":
		return profile.MutexProfile, true
	case "thread":
		return profile.ThreadcreationProfile, true
	case "trace":
		return profile.TraceProfile, true
	default:
		return nil, false
	}
}

// start profiles until the returned Stopper is called. Profiles land in
// p.Path when set, or else in a temporary directory chosen by
// [profile.Start]. Signals are left to the caller so that a lookup
// interrupted with ^C still runs its deferred stop.
func start(p Profiler) Stopper {
	mode, ok := option(p.Mode)
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){mode, profile.NoShutdownHook}

	if p.Path != "" {
		opts = append(opts, profile.ProfilePath(p.Path))
	}

	if p.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
