package util

import (
	"os"
	"path/filepath"
)

// readDir lists path after checking that it is a directory.
func readDir(path string) ([]os.DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}
	return os.ReadDir(path)
}

// ListSubdirs returns the joined paths of the immediate subdirectories of path,
// in directory-listing order. Symlinks are resolved, so a link to a directory
// counts as a directory and a dangling link counts as nothing.
func ListSubdirs(path string) ([]string, error) {
	entries, err := readDir(path)
	if err != nil {
		return nil, err
	}
	dirs := []string{}
	for _, e := range entries {
		full := filepath.Join(path, e.Name())
		info, err := os.Stat(full)
		if err != nil {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, full)
		}
	}
	return dirs, nil
}

// ListFiles returns the joined paths of the regular files directly inside path.
// Subdirectories are not descended into.
func ListFiles(path string) ([]string, error) {
	entries, err := readDir(path)
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, e := range entries {
		full := filepath.Join(path, e.Name())
		info, err := os.Stat(full)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, full)
		}
	}
	return files, nil
}

// CountFiles recursively counts every non-directory entry below path.
func CountFiles(path string, progress func(count int)) (count int, err error) {
	err = filepath.WalkDir(path, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		count++
		if progress != nil {
			progress(count)
		}
		return nil
	})
	return count, err
}
