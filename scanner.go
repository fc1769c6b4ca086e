// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package vjson

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vjson/vjson/internal/escape"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input stream. Each call to
// Next advances the scanner to the next token, or reports an error.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // current token
	tok Token
	num float64 // value of the current Number token
	err error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	pline, pcol int // position of the current token's first character
	cline, ccol int // position of the last character read
	eline, ecol int // position of the next character to read
	uline, ucol int // saved next-char position for unrune
	vline, vcol int // saved last-char position for unrune
}

// NewScanner constructs a new lexical scanner that consumes input
// from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br, pline: 1, pcol: 1, cline: 1, ccol: 1, eline: 1, ecol: 1}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid

	for {
		ch, err := s.rune()
		if err == io.EOF {
			s.pos = s.end
			s.pline, s.pcol = s.eline, s.ecol
			return s.setErr(io.EOF)
		} else if err != nil {
			return s.setErr(err)
		}

		// Discard whitespace between tokens.
		if isSpace(ch) {
			continue
		}

		s.pos = s.end - s.last
		s.pline, s.pcol = s.cline, s.ccol

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
			return nil
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// A backslash is only meaningful inside a string.
		if ch == '\\' {
			return s.failf(nil, "unexpected character %q", ch)
		}

		// Anything else is an unquoted run, classified at emission.
		return s.scanDatum(ch)
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. String tokens
// retain their surrounding quotation marks. The return value is only
// valid until the next call of Next.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.buf.Bytes()...) }

// Float64 returns the numeric value of the current token.
// It panics if the current token is not a Number.
func (s *Scanner) Float64() float64 {
	if s.tok != Number {
		panic("current token is not a number")
	}
	return s.num
}

// Unescape returns the decoded content of the current String token,
// with quotation marks removed and escape sequences replaced.
// It reports an error if the current token is not a String.
func (s *Scanner) Unescape() ([]byte, error) {
	if s.tok != String {
		return nil, s.failf(nil, "token %v is not a string", s.tok)
	}
	text := s.buf.Bytes()
	return escape.Unquote(mem.B(text[1 : len(text)-1]))
}

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline, Column: s.pcol},
		Last:  LineCol{Line: s.cline, Column: s.ccol},
	}
}

// scanString consumes the remainder of a string whose opening quote
// has already been read. Escaped characters are consumed without
// interpretation; only an unescaped quote ends the string.
func (s *Scanner) scanString() error {
	s.buf.WriteByte('"')
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf(ErrUnexpectedEOF, "unterminated string")
		} else if err != nil {
			return s.setErr(err)
		}
		s.buf.WriteRune(ch)
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.tok = String
			return nil
		}
	}
}

// scanDatum consumes an unquoted run beginning with first, up to the
// next separator, and classifies it.
func (s *Scanner) scanDatum(first rune) error {
	s.buf.WriteRune(first)
	for {
		ch, err := s.rune()
		if err == io.EOF {
			break
		} else if err != nil {
			return s.setErr(err)
		}
		if isSpace(ch) || ch == '"' || ch == '\\' || isStructural(ch) {
			s.unrune()
			break
		}
		s.buf.WriteRune(ch)
	}
	return s.classify()
}

// classify assigns a token type to the unquoted run in the buffer.
// Keywords are matched exactly; any other run must be a number
// according to the host float conversion.
func (s *Scanner) classify() error {
	text := s.buf.String()
	switch text {
	case "true":
		s.tok = True
	case "false":
		s.tok = False
	case "null":
		s.tok = Null
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			ch, _ := utf8.DecodeRuneInString(text)
			return s.setErr(SyntaxErrorf(LineCol{Line: s.pline, Column: s.pcol}, nil,
				"unexpected character %q", ch))
		}
		s.num = v
		s.tok = Number
	}
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.last = nb
	s.end += nb
	s.uline, s.ucol = s.eline, s.ecol
	s.vline, s.vcol = s.cline, s.ccol
	s.cline, s.ccol = s.eline, s.ecol
	if ch == '\n' {
		s.eline++
		s.ecol = 1
	} else {
		s.ecol++
	}
	return ch, nil
}

func (s *Scanner) unrune() {
	s.r.UnreadRune()
	s.end -= s.last
	s.eline, s.ecol = s.uline, s.ucol
	s.cline, s.ccol = s.vline, s.vcol
	s.last = 0
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(cause error, msg string, args ...any) error {
	return s.setErr(SyntaxErrorf(LineCol{Line: s.cline, Column: s.ccol}, cause, msg, args...))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isStructural(ch rune) bool { return strings.ContainsRune("{}[],:", ch) }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
