package config

import "github.com/webgroom/webgroom/internal/config/registry"

// valueKind discriminates the variants of a stored option value.
type valueKind uint8

const (
	// kindInteger holds integers, booleans and pick-list ordinals.
	kindInteger valueKind = iota
	// kindDefaultString is the shared empty-string default. It compares
	// equal to every other default string regardless of owning option.
	kindDefaultString
	// kindString holds a string assigned by the user.
	kindString
)

// value is the tagged union stored per option slot. Exactly one of n
// and s is meaningful, selected by kind.
type value struct {
	kind valueKind
	n    uint64
	s    string
}

func integerValue(n uint64) value {
	return value{kind: kindInteger, n: n}
}

// stringValue normalizes the empty string to the shared default
// variant, so clearing a string option is the same as resetting it.
func stringValue(s string) value {
	if s == "" {
		return value{kind: kindDefaultString}
	}
	return value{kind: kindString, s: s}
}

// defaultValue builds the default slot contents for a descriptor.
func defaultValue(opt *registry.Option) value {
	if opt.Type == registry.TypeString {
		return value{kind: kindDefaultString}
	}
	return integerValue(opt.Default)
}

// str returns the string contents, empty for the default variant.
func (v value) str() string {
	if v.kind == kindString {
		return v.s
	}
	return ""
}

// isDefaultFor reports whether v equals the default of opt.
func (v value) isDefaultFor(opt *registry.Option) bool {
	return v.equal(defaultValue(opt))
}

func (v value) equal(w value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case kindInteger:
		return v.n == w.n
	case kindString:
		return v.s == w.s
	default:
		return true
	}
}
