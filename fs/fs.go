// Package fs provides file system access for theme inputs, compiled
// artifacts and configuration.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default configuration directory for themec.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/themec,
// or an empty string if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themec")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "themec")
}

// defaultMode is used for files that do not exist yet.
const defaultMode os.FileMode = 0o644

// WriteFileAtomic calls write with a temporary file next to path and renames
// it over path only if write and the final sync and close succeed. On any
// failure path is left untouched and the temporary file is removed. A file
// that already exists at path keeps its permission bits.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	mode := defaultMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
