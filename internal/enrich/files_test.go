package enrich

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Options{})
	ctx := context.Background()

	got := e.CheckFile(ctx, file)
	if !got.Exists || got.IsDir || got.Path != file {
		t.Fatalf("file status = %+v", got)
	}
	got = e.CheckFile(ctx, dir)
	if !got.Exists || !got.IsDir {
		t.Fatalf("dir status = %+v", got)
	}
	got = e.CheckFile(ctx, filepath.Join(dir, "missing"))
	if got.Exists {
		t.Fatalf("missing path status = %+v", got)
	}
}

// Results are memoized: deleting the file after the first check does not
// change the cached answer for the displayed item's lifetime.
func TestCheckFileMemoized(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Options{})
	ctx := context.Background()
	if got := e.CheckFile(ctx, file); !got.Exists {
		t.Fatalf("first check = %+v", got)
	}
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	if got := e.CheckFile(ctx, file); !got.Exists {
		t.Fatalf("memoized check changed: %+v", got)
	}
}

func TestCheckFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "z"), dir, filepath.Join(dir, "y")}
	e := New(Options{})
	got := e.CheckFiles(context.Background(), paths)
	if len(got) != 3 || got[0].Path != paths[0] || got[1].Path != paths[1] || got[2].Path != paths[2] {
		t.Fatalf("order not preserved: %+v", got)
	}
	if got[0].Exists || !got[1].Exists {
		t.Fatalf("statuses wrong: %+v", got)
	}
}
