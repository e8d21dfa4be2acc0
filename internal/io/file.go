package ioutils

import (
	"os"
	"path/filepath"

	"github.com/handiism/shootdir/internal/failure"
)

// DirPerm is the permission used for every created directory (rwxr-xr-x).
const DirPerm = 0755

// Dir performs directory operations relative to a base directory.
//
// Errors returned by Mkdir, Rename and EnsureDir are *failure.Error values
// of kind KindFilesystem carrying the relative path that failed.
type Dir struct {
	base string
}

// NewDir creates a Dir rooted at base. An empty base means the current directory.
func NewDir(base string) *Dir {
	if base == "" {
		base = "."
	}
	return &Dir{base: base}
}

// Base returns the base directory.
func (d *Dir) Base() string {
	return d.base
}

// Path joins a relative path onto the base directory.
func (d *Dir) Path(rel string) string {
	return filepath.Join(d.base, rel)
}

// Exists returns true if anything exists at rel.
func (d *Dir) Exists(rel string) bool {
	_, err := os.Stat(d.Path(rel))
	return err == nil
}

// IsDir returns true if rel exists and is a directory.
func (d *Dir) IsDir(rel string) bool {
	info, err := os.Stat(d.Path(rel))
	return err == nil && info.IsDir()
}

// Mkdir creates a single directory. The parent must exist.
func (d *Dir) Mkdir(rel string) error {
	return failure.Wrap(failure.KindFilesystem, "create", rel, os.Mkdir(d.Path(rel), DirPerm))
}

// Rename renames from to to.
//
// Example:
//
//	err := dir.Rename("Shoot01", "Shoot02")
func (d *Dir) Rename(from, to string) error {
	return failure.Wrap(failure.KindFilesystem, "rename", from+" -> "+to, os.Rename(d.Path(from), d.Path(to)))
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := dir.EnsureDir("Shoot01/01_DAY01/01_A_CAM")
//	// Creates Shoot01, Shoot01/01_DAY01 and Shoot01/01_DAY01/01_A_CAM if needed
func (d *Dir) EnsureDir(rel string) error {
	return failure.Wrap(failure.KindFilesystem, "create", rel, os.MkdirAll(d.Path(rel), DirPerm))
}
