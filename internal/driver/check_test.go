package driver

import (
	"os"
	"path/filepath"
	"testing"

	"doclint/internal/diag"
)

const wrappedEarlySource = "/**\n" +
	" * alpha beta\n" +
	" * gamma\n" +
	" */\n" +
	"class A {}\n"

func TestCheckSource_WrappedEarly(t *testing.T) {
	res := CheckSource("a.java", wrappedEarlySource, Options{Limit: 40})

	if res.Comments != 1 {
		t.Errorf("Expected 1 comment, got %d", res.Comments)
	}
	if res.Violations != 1 {
		t.Fatalf("Expected 1 violation, got %d", res.Violations)
	}

	d := res.Bag.Items()[0]
	if d.Code != diag.LayLineTooShort {
		t.Errorf("Expected code %s, got %s", diag.LayLineTooShort, d.Code)
	}
	start, _ := res.FileSet.Resolve(d.Primary)
	if start.Line != 2 {
		t.Errorf("Expected violation on line 2, got %d", start.Line)
	}
}

func TestCheckSource_TooLong(t *testing.T) {
	res := CheckSource("a.java", wrappedEarlySource, Options{Limit: 10})

	if res.Violations != 1 {
		t.Fatalf("Expected 1 violation, got %d", res.Violations)
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.LayLineTooLong {
		t.Errorf("Expected code %s, got %s", diag.LayLineTooLong, d.Code)
	}
	if d.Message != "comment line is 13 characters, limit is 10" {
		t.Errorf("Unexpected message: %q", d.Message)
	}
}

func TestCheckSource_Clean(t *testing.T) {
	res := CheckSource("a.java", "/** Short summary. */\nclass A {}\n", Options{})

	if res.Comments != 1 {
		t.Errorf("Expected 1 comment, got %d", res.Comments)
	}
	if res.Violations != 0 {
		t.Errorf("Expected no violations, got %d", res.Violations)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("Expected empty bag, got %d diagnostics", res.Bag.Len())
	}
}

func TestCheckSource_NoComments(t *testing.T) {
	res := CheckSource("a.java", "class A {\n  int x;\n}\n", Options{})

	if res.Comments != 0 {
		t.Errorf("Expected 0 comments, got %d", res.Comments)
	}
	if res.Violations != 0 {
		t.Errorf("Expected 0 violations, got %d", res.Violations)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.java")
	if err := os.WriteFile(path, []byte(wrappedEarlySource), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	res, err := CheckFile(path, Options{Limit: 40})
	if err != nil {
		t.Fatalf("CheckFile returned error: %v", err)
	}
	if res.Path != path {
		t.Errorf("Expected path %q, got %q", path, res.Path)
	}
	if res.Violations != 1 {
		t.Errorf("Expected 1 violation, got %d", res.Violations)
	}
}

func TestCheckFile_Missing(t *testing.T) {
	_, err := CheckFile(filepath.Join(t.TempDir(), "missing.java"), Options{})
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestCheckSource_MaxDiagnosticsCap(t *testing.T) {
	src := "/**\n" +
		" * one two\n" +
		" * three four\n" +
		" * five six\n" +
		" * seven eight\n" +
		" */\n"
	res := CheckSource("a.java", src, Options{Limit: 40, MaxDiagnostics: 2})

	if res.Bag.Len() != 2 {
		t.Errorf("Expected bag capped at 2, got %d", res.Bag.Len())
	}
	// Violations counts what was found, not what fit in the bag.
	if res.Violations != 3 {
		t.Errorf("Expected 3 violations found, got %d", res.Violations)
	}
}
