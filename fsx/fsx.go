// Package fsx covers everyday file chores with one import. Every helper
// takes the filesystem first, as an afero.Fs, so the same code runs against
// the OS in production and an afero.NewMemMapFs in tests.
package fsx

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// OsFs returns the real operating-system filesystem.
func OsFs() afero.Fs {
	return afero.NewOsFs()
}

// Exists reports whether path exists on fsys.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}

// ReadString reads the whole file at path as a string.
func ReadString(fsys afero.Fs, path string) (string, error) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLines reads the file at path and returns its lines, without
// terminators. A trailing newline does not produce an empty final line.
func ReadLines(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// WriteString writes s to path with perm, creating parent directories as
// needed.
func WriteString(fsys afero.Fs, path, s string, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator) {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fsys, path, []byte(s), perm)
}

// Walk walks the tree rooted at root on fsys, calling fn for every file
// and directory.
func Walk(fsys afero.Fs, root string, fn filepath.WalkFunc) error {
	return afero.Walk(fsys, root, fn)
}
