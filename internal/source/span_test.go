package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Error("Expected span to be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Expected length 0, got %d", s.Len())
	}

	s.End = 8
	if s.Empty() {
		t.Error("Expected span to be non-empty")
	}
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v, want 2-8", got)
	}

	// Different files stay untouched.
	c := Span{File: 2, Start: 0, End: 100}
	got = a.Cover(c)
	if got != a {
		t.Errorf("Expected cross-file cover to be a no-op, got %v", got)
	}
}
