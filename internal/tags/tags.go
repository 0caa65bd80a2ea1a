// Package tags maintains the dictionary of user-declared custom tag names.
//
// Tag declarations are derived state: they are populated while parsing the
// new-*-tags configuration options and must be cleared and rebuilt whenever
// those option values change (for example after a snapshot restore).
package tags

import "sort"

// TagType classifies a declared tag. Types are bit flags so a single name
// may be declared under more than one category.
type TagType uint8

const (
	// Inline tags flow within text content.
	Inline TagType = 1 << iota
	// Block tags start a new structural block.
	Block
	// Empty tags have no content and no end tag.
	Empty
	// Pre tags preserve whitespace in their content.
	Pre
)

// None matches no tag category.
const None TagType = 0

// All matches every tag category.
const All = Inline | Block | Empty | Pre

// String returns the category name used in configuration values.
func (t TagType) String() string {
	switch t {
	case Inline:
		return "inline"
	case Block:
		return "blocklevel"
	case Empty:
		return "empty"
	case Pre:
		return "pre"
	case None:
		return "none"
	default:
		return "mixed"
	}
}

// Dictionary stores declared tag names keyed by name, each carrying the
// set of categories it was declared under.
type Dictionary struct {
	names map[string]TagType
}

// NewDictionary creates an empty tag dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{names: make(map[string]TagType)}
}

// Define declares name under the given category, merging with any
// categories the name already carries.
func (d *Dictionary) Define(t TagType, name string) {
	if name == "" || t == None {
		return
	}
	d.names[name] |= t
}

// Clear removes the given categories from every declared name. Names left
// with no category are dropped entirely.
func (d *Dictionary) Clear(t TagType) {
	for name, have := range d.names {
		have &^= t
		if have == None {
			delete(d.names, name)
		} else {
			d.names[name] = have
		}
	}
}

// Type returns the categories name is declared under.
func (d *Dictionary) Type(name string) (TagType, bool) {
	t, ok := d.names[name]
	return t, ok
}

// IsDeclared reports whether name is declared under any of the given
// categories.
func (d *Dictionary) IsDeclared(t TagType, name string) bool {
	return d.names[name]&t != None
}

// Declared returns the sorted names declared under any of the given
// categories.
func (d *Dictionary) Declared(t TagType) []string {
	var out []string
	for name, have := range d.names {
		if have&t != None {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of declared names.
func (d *Dictionary) Len() int {
	return len(d.names)
}
