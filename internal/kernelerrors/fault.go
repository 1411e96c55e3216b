package kernelerrors

import "fmt"

// KernelFault is a structured detail record for the kernel faults above.
// It implements error so the one genuinely fatal condition (KRN005) can be
// raised as a Go panic carrying a typed value, recoverable by a client
// that wants to turn it into a diagnostic instead of crashing.
type KernelFault struct {
	Code   string
	Where  string // e.g. function/operation name
	Detail string
}

func (f *KernelFault) Error() string {
	info, ok := GetErrorInfo(f.Code)
	if !ok {
		return fmt.Sprintf("%s: %s", f.Code, f.Detail)
	}
	return fmt.Sprintf("%s (%s): %s — %s", f.Code, info.Description, f.Where, f.Detail)
}

// Sink receives kernel faults observed during evaluation/read-back/
// conversion for optional diagnostics. The zero value is an empty sink that
// records faults; a nil *Sink discards them.
type Sink struct {
	faults []*KernelFault
}

// Report records a fault. Safe to call on a nil *Sink (discards silently),
// matching the kernel's "Error sentinel, not a Go error return" design:
// callers that don't care about diagnostics never have to pass one.
func (s *Sink) Report(fault *KernelFault) {
	if s == nil {
		return
	}
	s.faults = append(s.faults, fault)
}

// Faults returns the faults recorded so far.
func (s *Sink) Faults() []*KernelFault {
	if s == nil {
		return nil
	}
	return s.faults
}
