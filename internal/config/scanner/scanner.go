// Package scanner provides the character-stream tokenizer used when
// reading line-oriented configuration input.
//
// The scanner maintains a single current rune pulled from the underlying
// source and a small explicit lookahead buffer, so parsers that peek past
// a line break can hand runes back instead of manipulating the stream.
package scanner

import (
	"bufio"
	"io"
	"strings"
)

// EndOfStream is the current-rune value once the source is exhausted.
// It is a sentinel, not an error.
const EndOfStream rune = -1

// maxUnread is the depth of the lookahead buffer. Two runes cover the
// worst case: a continuation probe hands back the probed rune plus a
// synthetic line break.
const maxUnread = 2

// Scanner reads runes from a source one at a time.
type Scanner struct {
	r      *bufio.Reader
	cur    rune
	unread []rune
}

// New creates a scanner over r and primes the current rune.
func New(r io.Reader) *Scanner {
	s := &Scanner{r: bufio.NewReader(r), unread: make([]rune, 0, maxUnread)}
	s.cur = s.read()
	return s
}

// FromString creates a scanner over an in-memory value.
func FromString(v string) *Scanner {
	return New(strings.NewReader(v))
}

func (s *Scanner) read() rune {
	if n := len(s.unread); n > 0 {
		r := s.unread[n-1]
		s.unread = s.unread[:n-1]
		return r
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		return EndOfStream
	}
	return r
}

// Current returns the current rune without consuming it.
func (s *Scanner) Current() rune {
	return s.cur
}

// Advance consumes the current rune and returns the next one. Once the
// stream is exhausted it keeps returning EndOfStream.
func (s *Scanner) Advance() rune {
	if s.cur != EndOfStream {
		s.cur = s.read()
	}
	return s.cur
}

// Unread pushes r into the lookahead buffer; subsequent reads return
// pushed runes in reverse order before touching the source. The current
// rune is unaffected. Pushing beyond the buffer depth panics: it would
// mean a parser is rewinding further than the format ever requires.
func (s *Scanner) Unread(r rune) {
	if len(s.unread) == maxUnread {
		panic("scanner: unread buffer overflow")
	}
	s.unread = append(s.unread, r)
}

// SkipWhite consumes whitespace up to but not including a line break and
// returns the first rune that remains.
func (s *Scanner) SkipWhite() rune {
	for IsWhite(s.cur) && !IsNewline(s.cur) {
		s.cur = s.read()
	}
	return s.cur
}

// NextProperty skips to the start of the next logical property: it
// consumes the remainder of the current physical line, normalizes
// \r\n, \r and \n line ends, and keeps consuming while the following
// line begins with whitespace, since an indented line continues the
// previous property. Blank lines are skipped the same way.
func (s *Scanner) NextProperty() rune {
	for {
		for s.cur != '\n' && s.cur != '\r' && s.cur != EndOfStream {
			s.cur = s.read()
		}
		if s.cur == '\r' {
			s.cur = s.read()
		}
		if s.cur == '\n' {
			s.cur = s.read()
		}
		if !IsWhite(s.cur) {
			return s.cur
		}
	}
}

// IsWhite reports whether r is whitespace, including line breaks.
func IsWhite(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// IsNewline reports whether r ends a physical line.
func IsNewline(r rune) bool {
	return r == '\r' || r == '\n'
}
