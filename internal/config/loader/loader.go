// Package loader feeds option values into the engine from sources
// other than the classic configuration file format: TOML files and
// environment variables.
//
// Loaders produce name/value assignments and hand them to a Setter,
// so every value still runs through the option's own parser.
package loader

import (
	"io/fs"
	"os"
)

// Setter receives option assignments by canonical name. It is
// implemented by config.Config.
type Setter interface {
	ParseOption(name, value string) error
}

// FileSystem abstracts file access for testing.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the os package.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the operating system file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
