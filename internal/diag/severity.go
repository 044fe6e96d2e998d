package diag

// Severity ranks how loudly a diagnostic should be surfaced. Layout
// violations are warnings; errors are reserved for failures that kept a
// file from being checked at all.
type Severity uint8

const (
	// SevInfo marks purely informational output.
	SevInfo Severity = iota
	// SevWarning marks a layout violation. Any warning makes check exit
	// nonzero.
	SevWarning
	// SevError marks an I/O or configuration failure.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
