package diag

import (
	"testing"

	"doclint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddRespectsLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewWarning(LayLineTooLong, span(0, 0, 1), "a")) {
		t.Error("Expected first Add to succeed")
	}
	if !bag.Add(NewWarning(LayLineTooLong, span(0, 1, 2), "b")) {
		t.Error("Expected second Add to succeed")
	}
	if bag.Add(NewWarning(LayLineTooLong, span(0, 2, 3), "c")) {
		t.Error("Expected third Add to be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("Empty bag must report nothing")
	}

	bag.Add(NewWarning(LayLineTooShort, span(0, 0, 1), "w"))
	if bag.HasErrors() {
		t.Error("Warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Error("Expected warnings")
	}

	bag.Add(NewError(IOLoadFileError, span(0, 0, 1), "e"))
	if !bag.HasErrors() {
		t.Error("Expected errors")
	}
}

func TestBagSortOrdersBySpan(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(LayLineTooLong, span(1, 5, 9), "later file"))
	bag.Add(NewWarning(LayLineTooLong, span(0, 40, 45), "second"))
	bag.Add(NewWarning(LayLineTooShort, span(0, 10, 15), "first"))

	bag.Sort()

	items := bag.Items()
	if items[0].Message != "first" || items[1].Message != "second" || items[2].Message != "later file" {
		t.Errorf("Unexpected order: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(LayLineTooLong, span(0, 0, 5), "dup"))
	bag.Add(NewWarning(LayLineTooLong, span(0, 0, 5), "dup again"))
	bag.Add(NewWarning(LayLineTooShort, span(0, 0, 5), "other code"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Expected 2 items after dedup, got %d", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(LayLineTooLong, span(0, 0, 1), "a"))

	b := NewBag(1)
	b.Add(NewWarning(LayLineTooShort, span(0, 1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Expected merged bag with 2 items, got %d", a.Len())
	}
}

func TestBagTruncate(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(LayLineTooShort, span(0, 0, 1), "first"))
	bag.Add(NewWarning(LayLineTooLong, span(0, 2, 3), "second"))
	bag.Add(NewWarning(LayLineTooLong, span(0, 4, 5), "third"))

	bag.Truncate(2)
	if bag.Len() != 2 {
		t.Fatalf("Expected 2 items after truncate, got %d", bag.Len())
	}
	if bag.Items()[1].Message != "second" {
		t.Errorf("Expected truncate to keep leading items, got %q", bag.Items()[1].Message)
	}

	bag.Truncate(5)
	if bag.Len() != 2 {
		t.Errorf("Expected truncate above length to be a no-op, got %d", bag.Len())
	}
}

func TestCodeIDBands(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{IOLoadFileError, "IO1000"},
		{DocUnterminatedComment, "DOC2001"},
		{LayLineTooShort, "LAY3001"},
		{LayLineTooLong, "LAY3002"},
		{CfgInvalidLineLimit, "CFG4000"},
		{UnknownCode, "E0000"},
	}

	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code %d: expected ID %q, got %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.java", []byte("first line\nsecond line is longer\n"))

	diags := []*Diagnostic{
		NewWarning(LayLineTooLong, source.Span{File: id, Start: 11, End: 32}, "too wide"),
		NewWarning(LayLineTooShort, source.Span{File: id, Start: 0, End: 10}, "too narrow"),
	}

	got := FormatShortDiagnostics(diags, fs, false)
	want := "warning LAY3001 a.java:1:1 too narrow\n" +
		"warning LAY3002 a.java:2:1 too wide"
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), true); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}
