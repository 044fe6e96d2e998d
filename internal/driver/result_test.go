package driver

import (
	"testing"

	"doclint/internal/diag"
	"doclint/internal/source"
)

func TestMergedBag_CapsAcrossFiles(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.AddVirtual("a.java", []byte("line one\nline two\n"))
	b := fs.AddVirtual("b.java", []byte("line one\nline two\n"))

	bagA := diag.NewBag(10)
	bagA.Add(diag.NewWarning(diag.LayLineTooShort, source.Span{File: a, Start: 0, End: 8}, "a1"))
	bagA.Add(diag.NewWarning(diag.LayLineTooShort, source.Span{File: a, Start: 9, End: 17}, "a2"))

	bagB := diag.NewBag(10)
	bagB.Add(diag.NewWarning(diag.LayLineTooShort, source.Span{File: b, Start: 0, End: 8}, "b1"))
	bagB.Add(diag.NewWarning(diag.LayLineTooShort, source.Span{File: b, Start: 9, End: 17}, "b2"))

	res := &DirResult{
		FileSet: fs,
		Results: []*CheckResult{
			{Path: "a.java", FileID: a, FileSet: fs, Bag: bagA, Violations: 2},
			{Path: "b.java", FileID: b, FileSet: fs, Bag: bagB, Violations: 2},
		},
	}

	merged := res.MergedBag(3)
	if merged.Len() != 3 {
		t.Fatalf("Expected merged bag capped at 3, got %d", merged.Len())
	}
	// Sorted before capping, so the survivors are the earliest spans.
	items := merged.Items()
	if items[0].Message != "a1" || items[1].Message != "a2" || items[2].Message != "b1" {
		t.Errorf("Unexpected survivors: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}

	if got := res.MergedBag(0).Len(); got != 4 {
		t.Errorf("Expected no cap for max 0, got %d items", got)
	}
	if got := res.Violations(); got != 4 {
		t.Errorf("Expected 4 total violations, got %d", got)
	}
}
