package janitor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cosq-in/memochan/internal/logger"
)

func tempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReleaseDeletesRegisteredPaths(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	j := New(logger.New("error"))

	a := tempFile(t, dir, "a.wav")
	b := tempFile(t, dir, "b.wav")
	j.Register(a)
	j.Register(b)

	j.Release(ctx)

	for _, path := range []string{a, b} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s still exists after Release", path)
		}
	}
}

func TestReleaseIgnoresMissingFiles(t *testing.T) {
	ctx := context.Background()
	j := New(logger.New("error"))

	j.Register(filepath.Join(t.TempDir(), "never-created.wav"))
	j.Release(ctx) // must not panic or error
}

func TestReleaseRunsOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	j := New(logger.New("error"))

	a := tempFile(t, dir, "a.wav")
	j.Register(a)
	j.Release(ctx)

	// Re-create the file: a second Release must not touch it.
	a = tempFile(t, dir, "a.wav")
	j.Release(ctx)

	if _, err := os.Stat(a); err != nil {
		t.Errorf("second Release deleted %s: %v", a, err)
	}
}

func TestRegisterEmptyPathIsNoop(t *testing.T) {
	j := New(logger.New("error"))
	j.Register("")
	j.Release(context.Background())
}
