package driver

import (
	"runtime"

	"doclint/internal/linemodel"
)

// Options controls a check run. The zero value is usable: default
// line limit, no cache, sequential-friendly job count.
type Options struct {
	// Limit is the maximum allowed line width. Zero means
	// linemodel.DefaultLineLimit.
	Limit int

	// MaxDiagnostics caps the number of diagnostics collected per
	// file. Zero means unlimited.
	MaxDiagnostics int

	// Jobs is the number of files checked concurrently by CheckDir.
	// Zero means GOMAXPROCS.
	Jobs int

	// Extensions lists the file extensions (with leading dot) that
	// CheckDir considers source files. Empty means DefaultExtensions.
	Extensions []string

	// Cache, when non-nil, is consulted before parsing a file and
	// updated after checking it.
	Cache *DiskCache

	// Progress, when non-nil, receives per-file events during
	// CheckDir. The channel is never closed by the driver.
	Progress chan<- Event
}

// DefaultExtensions are the file extensions checked when none are
// configured.
var DefaultExtensions = []string{".java", ".go", ".c", ".cc", ".cpp", ".h", ".hpp", ".cs", ".js", ".ts"}

func (o Options) limit() int {
	if o.Limit > 0 {
		return o.Limit
	}
	return linemodel.DefaultLineLimit
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return int(^uint16(0))
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) extensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	return DefaultExtensions
}
