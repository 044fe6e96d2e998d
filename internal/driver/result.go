package driver

import (
	"doclint/internal/diag"
	"doclint/internal/source"
)

// CheckResult holds the outcome of checking a single file.
type CheckResult struct {
	Path       string
	FileID     source.FileID
	FileSet    *source.FileSet
	Bag        *diag.Bag
	Comments   int
	Violations int
	CacheHit   bool
}

// DirResult holds the outcome of checking a directory tree. Results
// are ordered by file path.
type DirResult struct {
	FileSet *source.FileSet
	Results []*CheckResult
}

// Violations sums the violation counts of all files.
func (r *DirResult) Violations() int {
	total := 0
	for _, res := range r.Results {
		total += res.Violations
	}
	return total
}

// MergedBag collects every file's diagnostics into one sorted bag. The cap
// applies to the merged total, not per file; max <= 0 means no cap.
func (r *DirResult) MergedBag(max int) *diag.Bag {
	bag := diag.NewBag(max)
	for _, res := range r.Results {
		bag.Merge(res.Bag)
	}
	bag.Sort()
	if max > 0 {
		bag.Truncate(max)
	}
	return bag
}

// Status describes where a file is in the checking pipeline.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusChecking:
		return "checking"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Event reports per-file progress during CheckDir.
type Event struct {
	Path       string
	Status     Status
	Violations int
	Err        error
}
