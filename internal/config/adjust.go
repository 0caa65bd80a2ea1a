package config

import (
	"math"

	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/htmlenc"
	"github.com/webgroom/webgroom/internal/tags"
)

// maxWrapLen replaces a wrap margin of zero, far past any real line.
const maxWrapLen = math.MaxInt32

// Adjust makes the configuration self consistent. It runs after every
// file parse and snapshot operation, and may be called directly after
// a batch of API assignments.
func (c *Config) Adjust() {
	const source = "adjust"

	if c.Bool(registry.EncloseBlockText) {
		c.store(registry.ByID(registry.EncloseBodyText), integerValue(1), source)
	}

	if c.AutoBool(registry.IndentContent) == registry.NoState {
		c.store(registry.ByID(registry.IndentSpaces), integerValue(0), source)
	}

	// wrap: 0 means no wrapping at all
	if c.Int(registry.WrapLen) == 0 {
		c.store(registry.ByID(registry.WrapLen), integerValue(maxWrapLen), source)
	}

	// Word output uses o:p as an inline element
	if c.Bool(registry.Word2000) {
		c.tags.Define(tags.Inline, "o:p")
	}

	// XML input with XHTML output is contradictory; input wins
	if c.Bool(registry.XMLTags) {
		c.store(registry.ByID(registry.XhtmlOut), integerValue(0), source)
	}

	// XHTML is written in lower case
	if c.Bool(registry.XhtmlOut) {
		c.store(registry.ByID(registry.XMLOut), integerValue(1), source)
		c.store(registry.ByID(registry.UpperCaseTags), integerValue(0), source)
		c.store(registry.ByID(registry.UpperCaseAttrs), integerValue(registry.UppercaseNo), source)
	}

	// if XML in, then XML out
	if c.Bool(registry.XMLTags) {
		c.store(registry.ByID(registry.XMLOut), integerValue(1), source)
		c.store(registry.ByID(registry.XMLPIs), integerValue(1), source)
	}

	// emit an XML declaration when the output encoding has to be named
	outenc := htmlenc.ID(c.Int(registry.OutCharEncoding))
	if outenc != htmlenc.ASCII && outenc != htmlenc.UTF8 &&
		outenc != htmlenc.UTF16 && outenc != htmlenc.UTF16BE && outenc != htmlenc.UTF16LE &&
		outenc != htmlenc.Raw && c.Bool(registry.XMLOut) {
		c.store(registry.ByID(registry.XMLDecl), integerValue(1), source)
	}

	if c.Bool(registry.XMLOut) {
		// XML output in UTF-16 requires a BOM
		if outenc.IsUTF16() {
			c.store(registry.ByID(registry.OutputBOM), integerValue(uint64(registry.YesState)), source)
		}
		c.store(registry.ByID(registry.QuoteAmpersand), integerValue(1), source)
		c.store(registry.ByID(registry.OmitOptionalTags), integerValue(0), source)
	}
}

// SetCharEncoding sets char-encoding by name and realigns the input
// and output encodings to match.
func (c *Config) SetCharEncoding(name string) error {
	enc, ok := htmlenc.FromName(name)
	if !ok {
		return &BadArgumentError{Option: registry.ByID(registry.CharEncoding), Value: name, Message: "unknown encoding"}
	}
	c.adjustCharEncoding(enc, "api")
	return nil
}

// adjustCharEncoding keeps the three encoding options consistent when
// char-encoding changes. Legacy single-byte encodings read as
// themselves but write ASCII; everything else reads and writes itself.
func (c *Config) adjustCharEncoding(enc htmlenc.ID, source string) {
	var inenc, outenc htmlenc.ID
	switch enc {
	case htmlenc.Mac, htmlenc.Win1252, htmlenc.IBM858:
		inenc, outenc = enc, htmlenc.ASCII
	case htmlenc.ASCII:
		inenc, outenc = htmlenc.Latin1, htmlenc.ASCII
	case htmlenc.Latin0:
		inenc, outenc = htmlenc.Latin0, htmlenc.ASCII
	case htmlenc.Raw, htmlenc.Latin1, htmlenc.UTF8, htmlenc.ISO2022,
		htmlenc.UTF16LE, htmlenc.UTF16BE, htmlenc.UTF16,
		htmlenc.ShiftJIS, htmlenc.Big5:
		inenc, outenc = enc, enc
	default:
		return
	}
	c.store(registry.ByID(registry.CharEncoding), integerValue(uint64(enc)), source)
	c.store(registry.ByID(registry.InCharEncoding), integerValue(uint64(inenc)), source)
	c.store(registry.ByID(registry.OutCharEncoding), integerValue(uint64(outenc)), source)
}
