package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores entries as JSON files under a directory, fanned out by the
// first two hex characters of the hashed key.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get reads key. Corrupt or expired entries are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes key atomically via a temp file and rename.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// Stats summarizes the entries on disk.
type Stats struct {
	Entries int
	Expired int
	Bytes   int64
	Prefix  map[string]int
}

// Stats walks the cache directory. Keys are grouped by the text before their
// first colon ("scene", "artifact", "source").
func (c *FileCache) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Prefix: map[string]int{}}
	now := c.now()
	err := c.walk(ctx, func(path string, e fileEntry, size int64) error {
		st.Entries++
		st.Bytes += size
		if e.expired(now) {
			st.Expired++
		}
		prefix, _, _ := strings.Cut(e.Key, ":")
		st.Prefix[prefix]++
		return nil
	})
	return st, err
}

// Prune removes expired and unreadable entries and returns how many were removed.
func (c *FileCache) Prune(ctx context.Context) (int, error) {
	now := c.now()
	n := 0
	err := c.walk(ctx, func(path string, e fileEntry, _ int64) error {
		if e.Key == "" || e.expired(now) {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

// Clear removes every entry.
func (c *FileCache) Clear(ctx context.Context) (int, error) {
	n := 0
	err := c.walk(ctx, func(path string, _ fileEntry, _ int64) error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// walk visits every entry file. Unparseable files are passed with a zero entry.
func (c *FileCache) walk(ctx context.Context, fn func(path string, e fileEntry, size int64) error) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var e fileEntry
		_ = json.Unmarshal(raw, &e)
		return fn(path, e, info.Size())
	})
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
