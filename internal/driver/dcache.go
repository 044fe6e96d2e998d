package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"doclint/internal/linemodel"
)

// cacheSchema is bumped whenever the entry layout or the checking
// semantics change, invalidating older entries.
const cacheSchema = 1

type cachedViolation struct {
	Kind   uint8  `msgpack:"k"`
	Line   uint32 `msgpack:"l"`
	Length int    `msgpack:"n"`
}

func (cv cachedViolation) toViolation(limit int) linemodel.Violation {
	return linemodel.Violation{
		Kind:   linemodel.ViolationKind(cv.Kind),
		Line:   cv.Line,
		Limit:  limit,
		Length: cv.Length,
	}
}

// CacheEntry is the persisted outcome of checking one file content at
// one line limit.
type CacheEntry struct {
	Schema     int               `msgpack:"s"`
	Limit      int               `msgpack:"m"`
	Comments   int               `msgpack:"c"`
	Violations []cachedViolation `msgpack:"v"`
}

func newCacheEntry(commentCount int, found []linemodel.Violation) CacheEntry {
	entry := CacheEntry{
		Schema:   cacheSchema,
		Comments: commentCount,
	}
	for _, v := range found {
		entry.Violations = append(entry.Violations, cachedViolation{
			Kind:   uint8(v.Kind),
			Line:   v.Line,
			Length: v.Length,
		})
	}
	return entry
}

// DiskCache stores check results keyed by content hash and line limit.
// Lookups and writes are best effort: any I/O or decode problem
// behaves like a miss.
type DiskCache struct {
	dir string
}

// OpenDiskCache opens (creating if needed) a cache rooted at dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDefaultDiskCache opens the cache under the user cache directory.
func OpenDefaultDiskCache() (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return OpenDiskCache(filepath.Join(base, "doclint", "results"))
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	return c.dir
}

func (c *DiskCache) entryPath(hash [32]byte, limit int) string {
	name := fmt.Sprintf("%s-%d.mp", hex.EncodeToString(hash[:]), limit)
	return filepath.Join(c.dir, name)
}

// Get looks up the entry for the given content hash and limit.
func (c *DiskCache) Get(hash [32]byte, limit int) (CacheEntry, bool) {
	var entry CacheEntry
	data, err := os.ReadFile(c.entryPath(hash, limit))
	if err != nil {
		return entry, false
	}
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return entry, false
	}
	if entry.Schema != cacheSchema || entry.Limit != limit {
		return entry, false
	}
	return entry, true
}

// Put persists the entry for the given content hash and limit. The
// write goes to a temp file first and is renamed into place so
// concurrent readers never see a torn entry.
func (c *DiskCache) Put(hash [32]byte, limit int, entry CacheEntry) {
	entry.Schema = cacheSchema
	entry.Limit = limit

	data, err := msgpack.Marshal(&entry)
	if err != nil {
		return
	}

	final := c.entryPath(hash, limit)
	tmp, err := os.CreateTemp(c.dir, "entry-*.tmp")
	if err != nil {
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
	}
}
