package config

import (
	"math"
	"strings"

	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/config/scanner"
	"github.com/webgroom/webgroom/internal/htmlenc"
	"github.com/webgroom/webgroom/internal/tags"
)

// Growth limits for parsed values. Exceeding one is a hard error, not
// a silent truncation.
const (
	maxStringLen   = 8192
	maxTagNameLen  = 1024
	maxSelectorLen = 256
	maxEncNameLen  = 64
	maxPickWordLen = 16
)

// applyParser dispatches to the value parser selected by the option
// descriptor. Parsers read from sc starting at its current rune and
// store the result themselves, since some of them touch more than one
// option slot.
func (c *Config) applyParser(sc *scanner.Scanner, opt *registry.Option, source string) error {
	switch opt.Parser {
	case registry.ParserInt:
		return c.parseInt(sc, opt, source)
	case registry.ParserString:
		return c.parseString(sc, opt, source)
	case registry.ParserCSS1Selector:
		return c.parseCSS1Selector(sc, opt, source)
	case registry.ParserTagNames:
		return c.parseTagNames(sc, opt, source)
	case registry.ParserCharEnc:
		return c.parseCharEnc(sc, opt, source)
	case registry.ParserDocType:
		return c.parseDocType(sc, opt, source)
	case registry.ParserTabs:
		return c.parseTabs(sc, opt, source)
	case registry.ParserPickList:
		return c.parsePickList(sc, opt, source)
	default:
		return &BadArgumentError{Option: opt, Message: "option cannot be set independently", Err: ErrReadOnlyOption}
	}
}

// parseValue runs an option's parser over an in-memory value, the way
// API assignments reuse the file parsers.
func (c *Config) parseValue(opt *registry.Option, raw, source string) error {
	if !opt.HasParser() {
		return &BadArgumentError{Option: opt, Value: raw, Message: "option cannot be set independently", Err: ErrReadOnlyOption}
	}
	return c.applyParser(scanner.FromString(raw), opt, source)
}

func tooLong(opt *registry.Option, got string, limit int) error {
	return &BadArgumentError{Option: opt, Value: got, Message: "value too long", Err: ErrValueTooLong}
}

func (c *Config) parseInt(sc *scanner.Scanner, opt *registry.Option, source string) error {
	ch := sc.SkipWhite()
	var n uint64
	digits := false
	for ch >= '0' && ch <= '9' {
		d := uint64(ch - '0')
		if n > (math.MaxUint64-d)/10 {
			return &BadArgumentError{Option: opt, Message: "number out of range"}
		}
		n = n*10 + d
		digits = true
		ch = sc.Advance()
	}
	if !digits {
		return &BadArgumentError{Option: opt, Message: "expected a number"}
	}
	c.store(opt, integerValue(n), source)
	return nil
}

// parseString reads to the end of the physical line, or to the closing
// delimiter when the value opens with a quote. Leading whitespace is
// skipped and embedded whitespace runes become plain spaces.
func (c *Config) parseString(sc *scanner.Scanner, opt *registry.Option, source string) error {
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
			return tooLong(opt, sb.String(), maxStringLen)
		}
		sb.WriteRune(ch)
		ch = sc.Advance()
	}

	c.store(opt, stringValue(sb.String()), source)
	return nil
}

// parseCSS1Selector reads one word and validates it as a CSS level 1
// class selector. A trailing dash is appended to the stored prefix so
// generated class names stay valid even after an escape sequence.
func (c *Config) parseCSS1Selector(sc *scanner.Scanner, opt *registry.Option, source string) error {
	var sb strings.Builder
	ch := sc.SkipWhite()
	for ch != scanner.EndOfStream && !scanner.IsWhite(ch) {
		if sb.Len() >= maxSelectorLen {
			return tooLong(opt, sb.String(), maxSelectorLen)
		}
		sb.WriteRune(ch)
		ch = sc.Advance()
	}
	sel := sb.String()
	if sel == "" {
		return &BadArgumentError{Option: opt, Message: "expected a selector"}
	}
	if !isCSS1Selector(sel) {
		return &BadArgumentError{Option: opt, Value: sel, Message: "not a CSS1 selector"}
	}
	c.store(opt, stringValue(sel+"-"), source)
	return nil
}

// isCSS1Selector checks a class name against CSS level 1 rules: ASCII
// letters anywhere, digits and dashes only after the first position,
// anything at all behind a backslash escape of at most four digits, and
// any rune past U+00A0.
func isCSS1Selector(sel string) bool {
	esclen := 0
	for pos, ch := range sel {
		switch {
		case ch == '\\':
			esclen = 1
		case ch >= '0' && ch <= '9':
			if esclen > 0 {
				esclen++
				if esclen >= 6 {
					return false
				}
			} else if pos == 0 {
				return false
			}
		default:
			ok := esclen > 0 ||
				(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
				(pos > 0 && ch == '-') ||
				ch >= 161
			if !ok {
				return false
			}
			esclen = 0
		}
	}
	return true
}

// pickListValue reads one word and resolves it against the option's
// pick list, returning the matched ordinal.
func pickListValue(sc *scanner.Scanner, opt *registry.Option) (uint64, error) {
	var sb strings.Builder
	ch := sc.SkipWhite()
	for ch != scanner.EndOfStream && !scanner.IsWhite(ch) {
		if sb.Len() >= maxPickWordLen {
			return 0, tooLong(opt, sb.String(), maxPickWordLen)
		}
		sb.WriteRune(ch)
		ch = sc.Advance()
	}
	n, ok := opt.Picks.Match(sb.String())
	if !ok {
		return 0, &BadArgumentError{Option: opt, Value: sb.String(), Message: "not a recognized value"}
	}
	return n, nil
}

func (c *Config) parsePickList(sc *scanner.Scanner, opt *registry.Option, source string) error {
	n, err := pickListValue(sc, opt)
	if err != nil {
		return err
	}
	c.store(opt, integerValue(n), source)
	return nil
}

// parseTabs switches indenting between tabs and spaces. Turning tabs
// on forces indent-spaces to one so each level is a single tab.
func (c *Config) parseTabs(sc *scanner.Scanner, opt *registry.Option, source string) error {
	n, err := pickListValue(sc, opt)
	if err != nil {
		return err
	}
	c.store(opt, integerValue(n), source)
	if n != 0 {
		c.store(registry.ByID(registry.IndentSpaces), integerValue(1), source)
	}
	return nil
}

// parseDocType accepts a doctype keyword or a quoted formal public
// identifier. A keyword only moves the internal doctype mode; the
// string slot is used for user FPIs alone.
func (c *Config) parseDocType(sc *scanner.Scanner, opt *registry.Option, source string) error {
	ch := sc.SkipWhite()
	if ch == '"' || ch == '\'' {
		if err := c.parseString(sc, opt, source); err != nil {
			return err
		}
		c.store(registry.ByID(registry.DoctypeMode), integerValue(registry.DoctypeUser), source)
		return nil
	}
	n, err := pickListValue(sc, opt)
	if err != nil {
		return err
	}
	c.store(registry.ByID(registry.DoctypeMode), integerValue(n), source)
	return nil
}

// parseCharEnc resolves an encoding name, including MIME aliases, to
// its encoding ID. Setting char-encoding also realigns the input and
// output encodings.
func (c *Config) parseCharEnc(sc *scanner.Scanner, opt *registry.Option, source string) error {
	var sb strings.Builder
	ch := sc.SkipWhite()
	for ch != scanner.EndOfStream && !scanner.IsWhite(ch) {
		if sb.Len() >= maxEncNameLen {
			return tooLong(opt, sb.String(), maxEncNameLen)
		}
		sb.WriteRune(ch)
		ch = sc.Advance()
	}
	enc, ok := htmlenc.FromName(sb.String())
	if !ok {
		return &BadArgumentError{Option: opt, Value: sb.String(), Message: "unknown encoding"}
	}
	c.store(opt, integerValue(uint64(enc)), source)
	if opt.ID == registry.CharEncoding {
		c.adjustCharEncoding(enc, source)
	}
	return nil
}

// userTagTypes maps each tag-list option to the category it declares.
var userTagTypes = map[registry.OptionID]tags.TagType{
	registry.InlineTags: tags.Inline,
	registry.BlockTags:  tags.Block,
	registry.EmptyTags:  tags.Empty,
	registry.PreTags:    tags.Pre,
}

func isTagOption(id registry.OptionID) bool {
	_, ok := userTagTypes[id]
	return ok || id == registry.CustomTags
}

// customTagType converts the custom-tags mode ordinal to the category
// autodiscovered tags are declared under.
func customTagType(n uint64) tags.TagType {
	switch n {
	case registry.CustomBlocklevel:
		return tags.Block
	case registry.CustomEmpty:
		return tags.Empty
	case registry.CustomInline:
		return tags.Inline
	case registry.CustomPre:
		return tags.Pre
	default:
		return tags.None
	}
}

// parseTagNames reads a comma or space separated tag-name list. The
// list may continue across lines when the next line starts with
// whitespace. Parsing replaces both the stored option string and the
// dictionary entries of the option's category.
func (c *Config) parseTagNames(sc *scanner.Scanner, opt *registry.Option, source string) error {
	var ttyp tags.TagType
	switch opt.ID {
	case registry.InlineTags, registry.BlockTags, registry.EmptyTags, registry.PreTags:
		ttyp = userTagTypes[opt.ID]
	case registry.CustomTags:
		ttyp = customTagType(c.Int(registry.UseCustomTags))
	default:
		return &BadArgumentError{Option: opt, Message: "not a tag list option"}
	}

	c.store(opt, stringValue(""), source)
	c.tags.Clear(ttyp)

	var word strings.Builder
	ch := sc.SkipWhite()
	for ch != scanner.EndOfStream {
		if ch == ',' || (scanner.IsWhite(ch) && !scanner.IsNewline(ch)) {
			ch = sc.Advance()
			continue
		}

		if scanner.IsNewline(ch) {
			first := ch
			ch = sc.Advance()
			if first == '\r' && ch == '\n' {
				ch = sc.Advance()
			}
			if ch == scanner.EndOfStream {
				break
			}
			if !scanner.IsWhite(ch) {
				// The probed rune starts the next property. Hand it
				// back with a line break so the outer loop sees an
				// ordinary line boundary.
				sc.Unread(ch)
				sc.Unread('\n')
				break
			}
			continue
		}

		for ch != scanner.EndOfStream && !scanner.IsWhite(ch) && ch != ',' {
			if word.Len() >= maxTagNameLen {
				return tooLong(opt, word.String(), maxTagNameLen)
			}
			word.WriteRune(ch)
			ch = sc.Advance()
		}
		if word.Len() > 0 {
			c.declareUserTag(opt, ttyp, word.String(), source)
			word.Reset()
		}
	}
	return nil
}

// declareUserTag appends name to the option's stored list and defines
// it in the tag dictionary.
func (c *Config) declareUserTag(opt *registry.Option, ttyp tags.TagType, name, source string) {
	val := name
	if prev := c.Str(opt.ID); prev != "" {
		val = prev + ", " + name
	}
	c.tags.Define(ttyp, name)
	c.store(opt, stringValue(val), source)
}
