// Package profile starts and stops runtime profiling with
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag. Without it,
// [Modes] is empty and [Profiler.Start] returns a no-op [Stopper].
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/jsonpp"}
//	defer p.Start().Stop()
//
// Profiles are written to Path with names matching the mode, for example
// cpu.pprof, and can be inspected with go tool pprof.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty selects a temporary directory
	Quiet bool   // suppress the profiler's own log output
}

// Start begins profiling. The returned Stopper is always non-nil, and
// stopping a disabled or unrecognized profile does nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return nop{}
	}

	return start(p)
}

type nop struct{}

func (nop) Stop() {}
