// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrPathIsDir     = errors.New("path is a directory")
	ErrParentMissing = errors.New("parent directory does not exist")
)

// tempPattern names the temporary file created next to the destination.
const tempPattern = ".longdoc-*.tmp"

// DirExists returns true if the path exists and is a directory.
func DirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ValidateOutputPath checks that path can receive a written file: it must be
// non-empty, must not name a directory, and its parent must exist.
func ValidateOutputPath(fsys afero.Fs, path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if DirExists(fsys, path) {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}
	dir := filepath.Dir(path)
	if !DirExists(fsys, dir) {
		return fmt.Errorf("%w: %s", ErrParentMissing, dir)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file in the destination
// directory, then renames it over path. Readers never observe a partial file.
// The temporary file is removed on any failure.
func WriteFileAtomic(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	if err := ValidateOutputPath(fsys, path); err != nil {
		return err
	}

	tmp, err := afero.TempFile(fsys, filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = fsys.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
