package semantics

import "github.com/pikelet-go/pikelet/internal/kernelerrors"

// activeSink receives kernel faults observed during evaluation/read-back
// when one has been installed via SetFaultSink. nil (the default)
// discards them silently, matching the kernel's "Error sentinel, not a Go
// error return" design (spec §7): nothing about the hot path changes
// shape just because a caller wants diagnostics.
var activeSink *kernelerrors.Sink

// SetFaultSink installs the sink that EvalTerm/ReadBackValue report faults
// to for the remainder of the process (or until the next call), returning
// the previously installed sink so callers can restore it afterwards.
// Pass nil to stop reporting. The kernel itself is single-threaded (spec
// §5); callers that evaluate concurrently must serialize their own use of
// this package-level sink.
func SetFaultSink(sink *kernelerrors.Sink) *kernelerrors.Sink {
	prev := activeSink
	activeSink = sink
	return prev
}

// reportFault records a fault on the active sink, a no-op if none is
// installed.
func reportFault(code, where, detail string) {
	activeSink.Report(&kernelerrors.KernelFault{Code: code, Where: where, Detail: detail})
}
