package driver

import (
	"fmt"

	"doclint/internal/comments"
	"doclint/internal/diag"
	"doclint/internal/docparse"
	"doclint/internal/linemodel"
	"doclint/internal/source"
)

// CheckFile loads a single file and checks the line layout of every
// documentation comment in it. An error is returned only for I/O
// failures; layout findings land in the result's bag.
func CheckFile(path string, opts Options) (*CheckResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res := &CheckResult{
		Path:    path,
		FileID:  fileID,
		FileSet: fileSet,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	checkLoaded(fileSet.Get(fileID), opts, res)
	return res, nil
}

// CheckSource checks already-loaded content without touching the
// filesystem. Useful for tests and editor integrations.
func CheckSource(name, content string, opts Options) *CheckResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, []byte(content))
	res := &CheckResult{
		Path:    name,
		FileID:  fileID,
		FileSet: fileSet,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	checkLoaded(fileSet.Get(fileID), opts, res)
	return res
}

func checkLoaded(f *source.File, opts Options, res *CheckResult) {
	limit := opts.limit()
	rep := &diag.BagReporter{Bag: res.Bag}

	if opts.Cache != nil {
		if entry, ok := opts.Cache.Get(f.Hash, limit); ok {
			res.CacheHit = true
			res.Comments = entry.Comments
			// A stale or hand-edited entry may repeat violations; replay
			// through a deduplicating reporter.
			replay := diag.NewDedupReporter(rep)
			for _, v := range entry.Violations {
				reportViolation(replay, f, v.toViolation(limit))
				res.Violations++
			}
			return
		}
	}

	blocks := comments.Extract(f)
	res.Comments = len(blocks)

	builder := linemodel.NewBuilder()
	var found []linemodel.Violation
	for _, c := range blocks {
		tree := docparse.Parse(c)
		lines := builder.Build(tree)
		found = append(found, linemodel.Evaluate(lines, limit)...)
	}

	for _, v := range found {
		reportViolation(rep, f, v)
	}
	res.Violations = len(found)

	if opts.Cache != nil {
		opts.Cache.Put(f.Hash, limit, newCacheEntry(res.Comments, found))
	}
}

func reportViolation(rep diag.Reporter, f *source.File, v linemodel.Violation) {
	span := f.LineSpan(v.Line)
	switch v.Kind {
	case linemodel.TooLong:
		rep.Report(diag.LayLineTooLong, diag.SevWarning, span,
			fmt.Sprintf("comment line is %d characters, limit is %d", v.Length, v.Limit), nil)
	case linemodel.TooShort:
		rep.Report(diag.LayLineTooShort, diag.SevWarning, span,
			fmt.Sprintf("line wraps early, next word still fits within the %d character limit", v.Limit), nil)
	}
}
