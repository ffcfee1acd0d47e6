// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"slices"
	"strconv"
	"strings"
)

const (
	whitespace   = "\f\v\r\t\n "
	identStart   = "A-Za-z"
	identPattern = "A-Za-z0-9_"
)

// charClass is a set of 8-bit characters.
type charClass [4]uint64

func (cc *charClass) add(ch byte) {
	cc[ch>>6] |= 1 << (ch & 63)
}

func (cc *charClass) has(ch byte) bool {
	return cc[ch>>6]&(1<<(ch&63)) != 0
}

// compileClass compiles a compact character pattern. A pattern is a run of
// single characters and ranges ("a-z"); "//" makes the character after it
// a literal, so "+//-" is the set of '+' and '-'.
func compileClass(pattern string) (cc charClass, err error) {
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "//"):
			if i+2 >= len(pattern) {
				err = ErrPattern
				return
			}
			cc.add(pattern[i+2])
			i += 3
		case i+2 < len(pattern) && pattern[i+1] == '-':
			lo, hi := pattern[i], pattern[i+2]
			if lo > hi {
				err = ErrPattern
				return
			}
			for ch := int(lo); ch <= int(hi); ch++ {
				cc.add(byte(ch))
			}
			i += 3
		default:
			cc.add(pattern[i])
			i++
		}
	}

	return
}

// radix describes a prefixed numeric literal.
type radix struct {
	prefix string
	base   int
	digits string
	name   string
}

var radixes = []radix{
	{"0b", 2, "0-1", "binary digit"},
	{"0x", 16, "0-9a-fA-F", "hex digit"},
	{"0X", 16, "0-9a-fA-F", "hex digit"},
	{"0o", 8, "0-7", "octal digit"},
}

// scanner holds the scan position over one line of source.
//
// Every match either advances the position, or leaves it unchanged and
// reports no match. Failed matches record what was expected at the
// farthest position reached, for diagnostics.
type scanner struct {
	text       string
	pos        int
	ignoreCase bool

	classes map[string]*charClass

	farthest int
	expected []string
}

func (s *scanner) reset(text string) {
	s.text = text
	s.pos = 0
	s.farthest = 0
	s.expected = s.expected[:0]
}

// class returns the compiled pattern, memoized for the scanner's lifetime.
func (s *scanner) class(pattern string) *charClass {
	cc, ok := s.classes[pattern]
	if ok {
		return cc
	}

	compiled, err := compileClass(pattern)
	if err != nil {
		panic("asm: " + err.Error() + ": " + strconv.Quote(pattern))
	}

	if s.classes == nil {
		s.classes = make(map[string]*charClass, 16)
	}
	cc = &compiled
	s.classes[pattern] = cc

	return cc
}

func (s *scanner) eol() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) skipSpace() {
	for !s.eol() && strings.IndexByte(whitespace, s.text[s.pos]) >= 0 {
		s.pos++
	}
}

// fail notes that what was expected at the current position.
func (s *scanner) fail(what string) {
	switch {
	case s.pos > s.farthest:
		s.farthest = s.pos
		s.expected = append(s.expected[:0], what)
	case s.pos == s.farthest && !slices.Contains(s.expected, what):
		s.expected = append(s.expected, what)
	}
}

// error returns the parse error at the farthest failure.
func (s *scanner) error() error {
	return &ErrParse{Column: s.farthest + 1, Expected: slices.Clone(s.expected)}
}

// chars consumes one character of the pattern, without skipping whitespace.
func (s *scanner) chars(pattern string) (ch byte, ok bool) {
	if s.eol() {
		return
	}

	ch = s.text[s.pos]
	if !s.class(pattern).has(ch) {
		ch = 0
		return
	}

	s.pos++
	ok = true
	return
}

// run consumes zero or more characters of the pattern.
func (s *scanner) run(pattern string) string {
	start := s.pos
	for {
		_, ok := s.chars(pattern)
		if !ok {
			break
		}
	}

	return s.text[start:s.pos]
}

// token skips whitespace, then matches tok exactly.
func (s *scanner) token(tok string) bool {
	start := s.pos
	s.skipSpace()

	if !strings.HasPrefix(s.text[s.pos:], tok) {
		s.fail("'" + tok + "'")
		s.pos = start
		return false
	}

	s.pos += len(tok)
	return true
}

// prefixed reports if word is at the current position.
func (s *scanner) prefixed(word string) bool {
	end := s.pos + len(word)
	if end > len(s.text) {
		return false
	}

	text := s.text[s.pos:end]
	if s.ignoreCase {
		return strings.EqualFold(text, word)
	}

	return text == word
}

// keyword skips whitespace, then matches the longest of words that is not
// immediately followed by an identifier character.
func (s *scanner) keyword(words ...string) (word string, ok bool) {
	word, ok = s.word(words...)
	if !ok {
		start := s.pos
		s.skipSpace()
		s.fail(strings.Join(words, "|"))
		s.pos = start
	}
	return
}

// word is keyword without recording a failure.
func (s *scanner) word(words ...string) (word string, ok bool) {
	start := s.pos
	s.skipSpace()

	words = slices.Clone(words)
	slices.SortStableFunc(words, func(a, b string) int {
		return len(b) - len(a)
	})

	ident := s.class(identPattern)
	for _, candidate := range words {
		if !s.prefixed(candidate) {
			continue
		}
		end := s.pos + len(candidate)
		if end < len(s.text) && ident.has(s.text[end]) {
			continue
		}
		s.pos = end
		word = candidate
		ok = true
		return
	}

	s.pos = start
	return
}

// identifier skips whitespace, then matches a letter followed by letters,
// digits, and underscores.
func (s *scanner) identifier() (name string, ok bool) {
	start := s.pos
	s.skipSpace()

	begin := s.pos
	if _, ok = s.chars(identStart); !ok {
		s.fail("identifier")
		s.pos = start
		return
	}
	s.run(identPattern)

	name = s.text[begin:s.pos]
	return
}

// number skips whitespace, then matches a binary, hexadecimal, octal, or
// signed decimal literal.
func (s *scanner) number() (value int64, ok bool) {
	start := s.pos
	s.skipSpace()

	begin := s.pos
	for _, rdx := range radixes {
		if !strings.HasPrefix(s.text[s.pos:], rdx.prefix) {
			continue
		}

		s.pos += len(rdx.prefix)
		digits := s.run(rdx.digits)
		if len(digits) == 0 {
			s.fail(rdx.name)
			s.pos = start
			return
		}

		var err error
		value, err = strconv.ParseInt(digits, rdx.base, 64)
		if err != nil {
			s.pos = begin
			s.fail(ErrParseNumber(s.text[begin : begin+len(rdx.prefix)+len(digits)]).Error())
			s.pos = start
			return
		}
		ok = true
		return
	}

	sign, _ := s.chars("+//-")
	digits := s.run("0-9")
	if len(digits) == 0 {
		s.pos = begin
		s.fail("number")
		s.pos = start
		return
	}

	literal := s.text[begin:s.pos]
	if sign == '+' {
		digits = literal[1:]
	} else {
		digits = literal
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		s.pos = begin
		s.fail(ErrParseNumber(literal).Error())
		s.pos = start
		return
	}

	ok = true
	return
}
