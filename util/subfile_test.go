package util

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestListSubdirs(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "id1"), 0755)
	os.Mkdir(filepath.Join(dir, "id2"), 0755)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)
	os.Symlink(filepath.Join(dir, "id1"), filepath.Join(dir, "link"))
	os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling"))

	dirs, err := ListSubdirs(dir)
	if err != nil {
		t.Fatalf("ListSubdirs() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "id1"),
		filepath.Join(dir, "id2"),
		filepath.Join(dir, "link"),
	}
	if len(dirs) != len(want) {
		t.Fatalf("ListSubdirs() = %v, want %v", dirs, want)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("ListSubdirs()[%d] = %s, want %s", i, dirs[i], want[i])
		}
	}
}

func TestListFiles(t *testing.T) {
	testCases := []struct {
		Name    string
		Files   int
		Subdirs int
	}{
		{Name: "empty", Files: 0, Subdirs: 0},
		{Name: "files only", Files: 3, Subdirs: 0},
		{Name: "subdirs only", Files: 0, Subdirs: 2},
		{Name: "files and subdirs", Files: 2, Subdirs: 1},
	}
	for _, c := range testCases {
		t.Run(c.Name, func(t *testing.T) {
			dir := t.TempDir()
			for i := 0; i < c.Files; i++ {
				os.WriteFile(filepath.Join(dir, fmt.Sprintf("%d.file", i)), nil, 0644)
			}
			for i := 0; i < c.Subdirs; i++ {
				sub := filepath.Join(dir, fmt.Sprintf("sub%d", i))
				os.Mkdir(sub, 0755)
				os.WriteFile(filepath.Join(sub, "nested.file"), nil, 0644)
			}
			files, err := ListFiles(dir)
			if err != nil {
				t.Fatalf("ListFiles() error = %v", err)
			}
			if len(files) != c.Files {
				t.Errorf("Expected %d files but got %d (%v)", c.Files, len(files), files)
			}
		})
	}
	t.Run("nonexistent path", func(t *testing.T) {
		_, err := ListFiles(filepath.Join(t.TempDir(), "nonexistent"))
		if !os.IsNotExist(err) {
			t.Errorf("Expected error of type IsNotExist but got %v", err)
		}
	})
	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		os.WriteFile(path, nil, 0644)
		_, err := ListFiles(path)
		if err != ErrExpectedDirectory {
			t.Errorf("Expected ErrExpectedDirectory but got %v", err)
		}
	})
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	path := dir
	for i := 0; i < 3; i++ {
		path = filepath.Join(path, fmt.Sprintf("%d", i))
		os.Mkdir(path, 0755)
		for w := 0; w < 4; w++ {
			os.WriteFile(filepath.Join(path, fmt.Sprintf("%d.file", w)), nil, 0644)
		}
	}
	var calls int
	count, err := CountFiles(dir, func(int) { calls++ })
	if err != nil {
		t.Fatalf("CountFiles() error = %v", err)
	}
	if count != 12 {
		t.Errorf("CountFiles() = %d, want 12", count)
	}
	if calls != 12 {
		t.Errorf("progress called %d times, want 12", calls)
	}
}
