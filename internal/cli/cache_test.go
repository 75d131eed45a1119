package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxorbit/pkg/cache"
	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/errors"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNewCacheSelection(t *testing.T) {
	ctx := context.Background()

	c, err := newCache(ctx, config.CacheSettings{Dir: t.TempDir()}, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("--no-cache gave %T, want NullCache", c)
	}

	dir := t.TempDir()
	c, err = newCache(ctx, config.CacheSettings{Dir: dir}, false)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok {
		t.Fatalf("got %T, want *FileCache", c)
	}
	if fc.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", fc.Dir(), dir)
	}

	_, err = newCache(ctx, config.CacheSettings{RedisURL: "not a url"}, false)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad redis url: err = %v, want INVALID_CONFIG", err)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "boxorbit.toml")
	if err := os.WriteFile(cfgPath, []byte("[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	_ = fc.Set(ctx, "source:a", []byte("a"), 0)
	_ = fc.Set(ctx, "source:b", []byte("b"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	c.ConfigPath = cfgPath

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		root := c.RootCommand()
		root.SetOut(&out)
		root.SetArgs(append(args, "--config", cfgPath))
		if err := root.ExecuteContext(ctx); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	run("cache", "prune")
	st, err := fc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 1 {
		t.Errorf("after prune: %d entries, want 1", st.Entries)
	}

	run("cache", "clear")
	st, _ = fc.Stats(ctx)
	if st.Entries != 0 {
		t.Errorf("after clear: %d entries, want 0", st.Entries)
	}
}
