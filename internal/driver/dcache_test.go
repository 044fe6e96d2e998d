package driver

import (
	"testing"

	"doclint/internal/linemodel"
)

func testHash(b byte) [32]byte {
	var h [32]byte
	h[0] = b
	return h
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache returned error: %v", err)
	}

	hash := testHash(1)
	found := []linemodel.Violation{
		{Kind: linemodel.TooLong, Line: 2, Limit: 80, Length: 98},
		{Kind: linemodel.TooShort, Line: 5, Limit: 80, Length: 12},
	}
	cache.Put(hash, 80, newCacheEntry(3, found))

	entry, ok := cache.Get(hash, 80)
	if !ok {
		t.Fatal("Expected cache hit, got miss")
	}
	if entry.Comments != 3 {
		t.Errorf("Expected 3 comments, got %d", entry.Comments)
	}
	if len(entry.Violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(entry.Violations))
	}
	got := entry.Violations[0].toViolation(80)
	if got != found[0] {
		t.Errorf("Expected %+v, got %+v", found[0], got)
	}
}

func TestDiskCache_MissOnUnknownHash(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache returned error: %v", err)
	}
	if _, ok := cache.Get(testHash(7), 80); ok {
		t.Error("Expected miss for unknown hash, got hit")
	}
}

func TestDiskCache_MissOnLimitMismatch(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache returned error: %v", err)
	}

	hash := testHash(2)
	cache.Put(hash, 80, newCacheEntry(1, nil))

	if _, ok := cache.Get(hash, 100); ok {
		t.Error("Expected miss for different limit, got hit")
	}
	if _, ok := cache.Get(hash, 80); !ok {
		t.Error("Expected hit for matching limit, got miss")
	}
}

func TestCheckSource_UsesCache(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache returned error: %v", err)
	}
	opts := Options{Limit: 40, Cache: cache}

	first := CheckSource("a.java", wrappedEarlySource, opts)
	if first.CacheHit {
		t.Error("Expected first run to be a cache miss")
	}

	second := CheckSource("a.java", wrappedEarlySource, opts)
	if !second.CacheHit {
		t.Error("Expected second run to be a cache hit")
	}
	if second.Violations != first.Violations {
		t.Errorf("Expected %d violations from cache, got %d", first.Violations, second.Violations)
	}
	if second.Comments != first.Comments {
		t.Errorf("Expected %d comments from cache, got %d", first.Comments, second.Comments)
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Errorf("Expected %d diagnostics from cache, got %d", first.Bag.Len(), second.Bag.Len())
	}
}
