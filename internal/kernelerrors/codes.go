// Package kernelerrors provides structured error codes for the handful of
// client-bug conditions the kernel can detect while staying total (see
// spec §7): it never returns these from eval/read-back/conversion, it only
// attaches them to optional diagnostics when a fault is observed.
package kernelerrors

const (
	// KRN001 indicates a local index escaped the environment it was
	// captured in during read-back (spec §4.5, §9 hazard 2).
	KRN001 = "KRN001"

	// KRN002 indicates a record label was not found during projection
	// (ApplyRecordElim) or record-type field-lookup (RecordElimType).
	KRN002 = "KRN002"

	// KRN003 indicates an elimination was applied to a head that is
	// neither function, record, stuck, nor glued.
	KRN003 = "KRN003"

	// KRN004 indicates universe level or offset arithmetic overflowed.
	KRN004 = "KRN004"

	// KRN005 indicates a lazy value was forced a second time after its
	// initializer was taken but panicked before producing a result.
	KRN005 = "KRN005"
)

// ErrorInfo describes one kernel fault code.
type ErrorInfo struct {
	Code        string
	Category    string
	Description string
}

// Registry maps codes to their information.
var Registry = map[string]ErrorInfo{
	KRN001: {KRN001, "read-back", "Escaped local index"},
	KRN002: {KRN002, "record", "Label not found"},
	KRN003: {KRN003, "elim", "Elimination on non-eliminable head"},
	KRN004: {KRN004, "arithmetic", "Universe overflow"},
	KRN005: {KRN005, "lazy", "Double-force of poisoned lazy value"},
}

// GetErrorInfo returns information about a kernel fault code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := Registry[code]
	return info, ok
}
