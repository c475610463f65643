// Package severity provides severity level constants and utilities
// for warnings reported by the merger.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
//
// The numeric values do not follow that order; use [Severity.Rank] to compare.
package severity

// Severity indicates the severity level of a merge warning.
type Severity int

const (
	// SeverityError indicates a document that could not be merged as given.
	SeverityError Severity = iota
	// SeverityWarning indicates input that was dropped or altered during the merge,
	// such as a document excluded because of a path clash.
	SeverityWarning
	// SeverityInfo indicates informational messages about processing choices,
	// such as a renamed component or a skipped context root.
	SeverityInfo
	// SeverityCritical indicates a failure that aborted the merge.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Rank returns the position of s in the order Info < Warning < Error < Critical.
// Unknown values rank below Info.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityError:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() >= threshold.Rank()
}
