package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	boerrors "github.com/matzehuels/boxorbit/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %v, %v, %v; want nil, false, nil", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash not deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs hashed equal")
	}
	if len(h1) != 64 {
		t.Errorf("len = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.SourceKey("https://example.com/films.csv"); got != "source:https://example.com/films.csv" {
		t.Errorf("SourceKey = %q", got)
	}

	s1 := k.SceneKey("abc", SceneKeyOpts{ConfigHash: "c1", Backdrop: true})
	s2 := k.SceneKey("abc", SceneKeyOpts{ConfigHash: "c1", Backdrop: false})
	s3 := k.SceneKey("abd", SceneKeyOpts{ConfigHash: "c1", Backdrop: true})
	if s1 == s2 || s1 == s3 {
		t.Error("scene keys should differ by options and dataset")
	}
	if !strings.HasPrefix(s1, "scene:") {
		t.Errorf("SceneKey = %q", s1)
	}

	tests := []struct {
		name string
		a, b ArtifactKeyOpts
	}{
		{"format", ArtifactKeyOpts{Format: "svg"}, ArtifactKeyOpts{Format: "png"}},
		{"size", ArtifactKeyOpts{Format: "png", Width: 800}, ArtifactKeyOpts{Format: "png", Width: 1200}},
		{"legend", ArtifactKeyOpts{Format: "svg"}, ArtifactKeyOpts{Format: "svg", Legend: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k.ArtifactKey("h", tt.a) == k.ArtifactKey("h", tt.b) {
				t.Error("keys should differ")
			}
		})
	}
	if k.ArtifactKey("h", tests[0].a) != k.ArtifactKey("h", tests[0].a) {
		t.Error("ArtifactKey not deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "demo:")
	if got := scoped.SourceKey("u"); got != "demo:source:u" {
		t.Errorf("SourceKey = %q", got)
	}
	if got := scoped.SceneKey("h", SceneKeyOpts{}); !strings.HasPrefix(got, "demo:scene:") {
		t.Errorf("SceneKey = %q", got)
	}
	if got := scoped.ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(got, "demo:artifact:") {
		t.Errorf("ArtifactKey = %q", got)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "scene:x"); hit {
		t.Fatal("empty cache should miss")
	}
	if err := c.Set(ctx, "scene:x", []byte("payload"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "scene:x")
	if err != nil || !hit || string(data) != "payload" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "scene:x"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "scene:x"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "scene:x"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "artifact:a", []byte("a"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "scene:b", []byte("b"), 0); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Minute)
	st, err := c.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 2 || st.Expired != 1 || st.Prefix["scene"] != 1 || st.Prefix["artifact"] != 1 {
		t.Errorf("Stats = %+v", st)
	}

	n, err := c.Prune(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Prune = %d, %v; want 1", n, err)
	}
	if _, hit, _ := c.Get(ctx, "scene:b"); !hit {
		t.Error("non-expiring entry was pruned")
	}

	n, err = c.Clear(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Clear = %d, %v; want 1", n, err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestGetOrCompute(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	fn := func() ([]byte, error) {
		calls++
		return []byte("built"), nil
	}
	for i, wantHit := range []bool{false, true} {
		data, hit, err := GetOrCompute(ctx, c, "k", 0, fn)
		if err != nil || string(data) != "built" || hit != wantHit {
			t.Errorf("call %d: %q, %v, %v", i, data, hit, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := GetOrCompute(ctx, c, "other", 0, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not-a-url")
	if !boerrors.Is(err, boerrors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

// TestRedisCache runs against a live server when BOXORBIT_TEST_REDIS is set.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("BOXORBIT_TEST_REDIS")
	if url == "" {
		t.Skip("BOXORBIT_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, WithRedisPrefix("boxorbit-test:"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted key should miss")
	}
}
