package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/config/scanner"
	"github.com/webgroom/webgroom/internal/htmlenc"
)

// Option names are plain ASCII and short.
const maxNameLen = 64

// ParseFile reads a configuration file assumed to be ASCII. It
// returns the number of per-option problems found; err is non-nil
// only when the file itself cannot be read.
func (c *Config) ParseFile(path string) (int, error) {
	return c.ParseFileEnc(path, "ascii")
}

// ParseFileEnc reads a configuration file in the named encoding.
// Problems with individual options are counted and reported to the
// error handler, and parsing continues on the next property.
func (c *Config) ParseFileEnc(path, encName string) (int, error) {
	enc, ok := htmlenc.FromName(encName)
	if !ok {
		return 0, &FileError{Path: path, Err: &BadArgumentError{
			Option:  registry.ByID(registry.CharEncoding),
			Value:   encName,
			Message: "unknown encoding",
		}}
	}

	fname := expandTilde(path)
	f, err := os.Open(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrFileNotFound
		}
		return 0, &FileError{Path: fname, Err: err}
	}
	defer f.Close()

	return c.parseConfig(htmlenc.NewReader(f, enc), fname)
}

// ParseReader reads configuration text from r, already decoded.
// The source label appears in change notifications and errors.
func (c *Config) ParseReader(r io.Reader, source string) (int, error) {
	return c.parseConfig(r, source)
}

func (c *Config) parseConfig(r io.Reader, source string) (int, error) {
	before := c.errCount
	c.parseStream(scanner.New(r), source)
	c.Adjust()
	return c.errCount - before, nil
}

// parseStream walks "name: value" properties. Lines starting with '/'
// or '#' are comments, and a line starting with whitespace continues
// the property above it.
func (c *Config) parseStream(sc *scanner.Scanner, source string) {
	for ch := sc.SkipWhite(); ch != scanner.EndOfStream; ch = sc.NextProperty() {
		if ch == '/' || ch == '#' {
			continue
		}

		var name strings.Builder
		for name.Len() < maxNameLen && ch != '\n' && ch != scanner.EndOfStream && ch != ':' {
			name.WriteRune(ch)
			ch = sc.Advance()
		}
		if ch != ':' {
			continue
		}
		sc.Advance()

		if opt := registry.LookupByName(name.String()); opt != nil {
			if err := c.applyParser(sc, opt, source); err != nil {
				c.reportError(err)
			}
			continue
		}

		raw, err := scanRawValue(sc)
		if err != nil {
			c.reportError(&UnknownOptionError{Name: name.String()})
			continue
		}
		if c.fallback != nil && c.fallback(name.String(), raw) {
			continue
		}
		c.reportError(&UnknownOptionError{Name: name.String()})
	}
}

// scanRawValue reads an unknown option's value the way the string
// parser would, so a fallback handler sees the same text a real
// option's parser sees.
func scanRawValue(sc *scanner.Scanner) (string, error) {
	var sb strings.Builder
	waswhite := true

	ch := sc.SkipWhite()
	var delim rune
	if ch == '"' || ch == '\'' {
		delim = ch
		ch = sc.Advance()
	}

	for ch != scanner.EndOfStream && ch != '\r' && ch != '\n' {
		if delim != 0 && ch == delim {
			break
		}
		if scanner.IsWhite(ch) {
			if waswhite {
				ch = sc.Advance()
				continue
			}
			ch = ' '
		} else {
			waswhite = false
		}
		if sb.Len() >= maxStringLen {
			return sb.String(), ErrValueTooLong
		}
		sb.WriteRune(ch)
		ch = sc.Advance()
	}
	return sb.String(), nil
}

// ParseOption assigns one option by name. Unknown names go to the
// fallback handler before being reported as errors.
func (c *Config) ParseOption(name, value string) error {
	opt := registry.LookupByName(name)
	if opt == nil {
		if c.fallback != nil && c.fallback(name, value) {
			return nil
		}
		err := &UnknownOptionError{Name: name}
		c.reportError(err)
		return err
	}
	return c.ParseValue(opt.ID, value)
}

// ParseValue assigns one option by ID, running the value through the
// option's own parser.
func (c *Config) ParseValue(id registry.OptionID, value string) error {
	opt := registry.ByID(id)
	if opt == nil {
		err := &UnknownOptionError{Name: "#" + itoa(uint64(id))}
		c.reportError(err)
		return err
	}
	if err := c.parseValue(opt, value, "api"); err != nil {
		c.reportError(err)
		return err
	}
	return nil
}

// FileExists reports whether a configuration file can be opened,
// after tilde expansion.
func FileExists(path string) bool {
	_, err := os.Stat(expandTilde(path))
	return err == nil
}

// expandTilde resolves a leading ~/ against the home directory.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
