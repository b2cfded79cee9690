// Package bullcowdir encapsulates all path knowledge for the .bullcow/ game
// directory. It provides a Dir value object with accessors for the config
// file, an optional custom word list and local runtime state such as logs.
package bullcowdir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a .bullcow/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .bullcow/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// WordListPath returns the path to the project word list.
func (d Dir) WordListPath() string { return filepath.Join(d.root, "words.txt") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// LogPath returns the path to the log file inside local/.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "bullcow.log") }

// GitignorePath returns the path to the .gitignore file inside .bullcow/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// WordList returns WordListPath if that file exists, or "" so callers fall
// back to the built-in list.
func (d Dir) WordList() string {
	info, err := os.Stat(d.WordListPath())
	if err != nil || info.IsDir() {
		return ""
	}

	return d.WordListPath()
}

// Exists reports whether the .bullcow/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
