package config

import (
	"io"
	"os"

	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/htmlenc"
)

// renderValue returns the form a value takes in a saved configuration
// file: the pick label when the option has one, yes/no for plain
// booleans, decimal for integers and the raw text for strings.
func renderValue(opt *registry.Option, v value) string {
	if opt.Type == registry.TypeString {
		return v.str()
	}
	if opt.Picks != nil {
		if label, ok := opt.Picks.Label(v.n); ok {
			return label
		}
	}
	if opt.Type == registry.TypeBoolean {
		if v.n != 0 {
			return "yes"
		}
		return "no"
	}
	return itoa(v.n)
}

func newlineString(nl uint64) string {
	switch nl {
	case registry.NewlineCRLF:
		return "\r\n"
	case registry.NewlineCR:
		return "\r"
	default:
		return "\n"
	}
}

// Save writes every non-default option to w as "name: value" lines,
// one per option in table order, encoded with the configured output
// encoding and newline style. Options that cannot be set
// independently are skipped, so the output reads back cleanly.
func (c *Config) Save(w io.Writer) error {
	nl := newlineString(c.Int(registry.Newline))
	enc := htmlenc.NewWriter(w, htmlenc.ID(c.Int(registry.OutCharEncoding)))

	for _, opt := range registry.All() {
		if opt.ID == registry.UnknownOption || !opt.HasParser() {
			continue
		}
		v := c.values[opt.ID]
		if v.isDefaultFor(opt) && opt.ID != registry.Doctype {
			continue
		}

		var sval string
		if opt.ID == registry.Doctype {
			// the doctype keyword lives in the mode option; the
			// string slot holds a user FPI only
			mode := c.Int(registry.DoctypeMode)
			switch {
			case mode == registry.DoctypeUser:
				sval = `"` + v.str() + `"`
			case mode == registry.ByID(registry.DoctypeMode).Default:
				continue
			default:
				label, ok := opt.Picks.Label(mode)
				if !ok {
					continue
				}
				sval = label
			}
		} else {
			sval = renderValue(opt, v)
		}

		if _, err := io.WriteString(enc, opt.Name+": "+sval+nl); err != nil {
			return err
		}
	}
	return enc.Close()
}

// SaveFile writes the non-default options to path.
func (c *Config) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err := c.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
