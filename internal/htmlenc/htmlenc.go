// Package htmlenc maps character-encoding names used in configuration to
// encoding identifiers and to the codecs that read and write them.
//
// The identifier values are stored directly in integer configuration
// options, so their numeric order is part of the configuration contract.
package htmlenc

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ID identifies a supported character encoding.
type ID int

// Supported encodings.
const (
	Raw ID = iota
	ASCII
	Latin0
	Latin1
	UTF8
	ISO2022
	Mac
	Win1252
	IBM858
	UTF16LE
	UTF16BE
	UTF16
	Big5
	ShiftJIS
)

// entry describes one supported encoding: the name used in configuration
// values, the MIME charset name, and the codec (nil for byte-transparent
// encodings).
type entry struct {
	optName  string
	mimeName string
	enc      encoding.Encoding
}

var table = [...]entry{
	Raw:      {"raw", "raw", nil},
	ASCII:    {"ascii", "us-ascii", nil},
	Latin0:   {"latin0", "iso-8859-15", charmap.ISO8859_15},
	Latin1:   {"latin1", "iso-8859-1", charmap.ISO8859_1},
	UTF8:     {"utf8", "utf-8", nil},
	ISO2022:  {"iso2022", "iso-2022-jp", japanese.ISO2022JP},
	Mac:      {"mac", "macintosh", charmap.Macintosh},
	Win1252:  {"win1252", "windows-1252", charmap.Windows1252},
	IBM858:   {"ibm858", "ibm858", charmap.CodePage858},
	UTF16LE:  {"utf16le", "utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	UTF16BE:  {"utf16be", "utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	UTF16:    {"utf16", "utf-16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
	Big5:     {"big5", "big5", traditionalchinese.Big5},
	ShiftJIS: {"shiftjis", "shift_jis", japanese.ShiftJIS},
}

// aliases accepted in addition to the canonical option names.
var aliases = map[string]ID{
	"us-ascii":     ASCII,
	"utf-8":        UTF8,
	"iso-8859-1":   Latin1,
	"iso-8859-15":  Latin0,
	"iso-2022-jp":  ISO2022,
	"macintosh":    Mac,
	"macroman":     Mac,
	"windows-1252": Win1252,
	"utf-16":       UTF16,
	"utf-16le":     UTF16LE,
	"utf-16be":     UTF16BE,
	"shift_jis":    ShiftJIS,
	"shift-jis":    ShiftJIS,
}

// FromName resolves an encoding name, case-insensitively, to its ID.
func FromName(name string) (ID, bool) {
	name = strings.ToLower(name)
	for id := range table {
		if table[id].optName == name {
			return ID(id), true
		}
	}
	if id, ok := aliases[name]; ok {
		return id, true
	}
	return 0, false
}

// Valid reports whether id identifies a supported encoding.
func Valid(id ID) bool {
	return id >= 0 && int(id) < len(table)
}

// OptName returns the name used for id in configuration values, or
// "unknown" for an out-of-range id.
func (id ID) OptName() string {
	if !Valid(id) {
		return "unknown"
	}
	return table[id].optName
}

// MimeName returns the MIME charset name for id, or "unknown" for an
// out-of-range id.
func (id ID) MimeName() string {
	if !Valid(id) {
		return "unknown"
	}
	return table[id].mimeName
}

func (id ID) String() string { return id.OptName() }

// IsUTF16 reports whether id is one of the UTF-16 variants.
func (id ID) IsUTF16() bool {
	return id == UTF16 || id == UTF16LE || id == UTF16BE
}

// NewReader wraps r so that bytes in the given encoding are decoded to
// UTF-8. Byte-transparent encodings return r unchanged.
func NewReader(r io.Reader, id ID) io.Reader {
	if !Valid(id) || table[id].enc == nil {
		return r
	}
	return transform.NewReader(r, table[id].enc.NewDecoder())
}

// NewWriter wraps w so that UTF-8 written to it is encoded in the given
// encoding. Byte-transparent encodings return w unchanged. The returned
// writer must be closed to flush any partial state when it is a
// transformer.
func NewWriter(w io.Writer, id ID) io.WriteCloser {
	if !Valid(id) || table[id].enc == nil {
		return nopWriteCloser{w}
	}
	return transform.NewWriter(w, table[id].enc.NewEncoder())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
