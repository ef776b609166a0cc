package levels

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestDiscoverFS(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/1.csv":      {Data: []byte("0,0,1")},
		"levels/3.csv":      {Data: []byte("1,1,1")},
		"levels/.5.csv":     {Data: []byte("hidden")},
		"levels/notes.txt":  {Data: []byte("not a level")},
		"levels/12.csv":     {Data: []byte("")},
		"levels/7.csv/a.md": {Data: []byte("directory named like a level")},
	}

	ids, err := DiscoverFS(fsys, "levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ID{1, 3, 12}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
}

func TestDiscoverDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.csv", "3.csv", ".5.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := Discover(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids, []ID{1, 3}) {
		t.Fatalf("expected [1 3], got %v", ids)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	ids, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no levels, got %v", ids)
	}
}

func TestDiscoverErrors(t *testing.T) {
	t.Run("bad name", func(t *testing.T) {
		fsys := fstest.MapFS{"levels/intro.csv": {Data: []byte("x")}}
		_, err := DiscoverFS(fsys, "levels")
		if !errors.Is(err, ErrBadLevelName) {
			t.Fatalf("expected ErrBadLevelName, got %v", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
	})
}
