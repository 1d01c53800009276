package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/slidegraph/pkg/cache"
)

func TestCacheClearCommand(t *testing.T) {
	isolate(t)
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("missing dir is empty", func(t *testing.T) {
		if err := runCLI(t, "cache", "clear"); err != nil {
			t.Fatalf("cache clear: %v", err)
		}
	})

	t.Run("removes entries", func(t *testing.T) {
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			t.Fatal(err)
		}
		if err := fc.Set(context.Background(), "layout:abc", []byte("{}"), time.Hour); err != nil {
			t.Fatal(err)
		}

		if err := runCLI(t, "cache", "clear"); err != nil {
			t.Fatalf("cache clear: %v", err)
		}

		if _, ok, _ := fc.Get(context.Background(), "layout:abc"); ok {
			t.Error("entry survived cache clear")
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("cache dir removed: %v", err)
		}
	})
}

func TestNewCache(t *testing.T) {
	isolate(t)

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want cache.NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok {
		t.Fatalf("newCache(false) = %T, want *cache.FileCache", c)
	}
	if want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName); fc.Dir() != want {
		t.Errorf("Dir() = %q, want %q", fc.Dir(), want)
	}
}
