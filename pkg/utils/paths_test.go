package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAndEnsureDBPathCreatesParent(t *testing.T) {
	base := t.TempDir()
	want := filepath.Join(base, "nested", "dir", "moodlog.db")

	got, err := ResolveAndEnsureDBPath(want)
	if err != nil {
		t.Fatalf("ResolveAndEnsureDBPath failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("Expected parent directory to exist, stat err: %v", err)
	}
}

func TestResolveAndEnsureDBPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveAndEnsureDBPath("~/data/moodlog.db")
	if err != nil {
		t.Fatalf("ResolveAndEnsureDBPath failed: %v", err)
	}
	if want := filepath.Join(home, "data", "moodlog.db"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestResolveAndEnsureDBPathMemory(t *testing.T) {
	got, err := ResolveAndEnsureDBPath(":memory:")
	if err != nil || got != ":memory:" {
		t.Errorf("Expected :memory: passthrough, got %q (err %v)", got, err)
	}
}
