// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// ctlName maps control characters to their short escape letters.
// A zero entry means the character needs a \u00xx escape.
var ctlName = [32]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigit = "0123456789abcdef"

// Quote encodes the characters of src for inclusion in a JSON string.
// The result does not include surrounding quotation marks.
func Quote(src mem.RO) []byte {
	out := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch {
		case r == '"' || r == '\\':
			out = append(out, '\\', byte(r))
		case r < ' ':
			if c := ctlName[r]; c != 0 {
				out = append(out, '\\', c)
			} else {
				out = append(out, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		default:
			out = utf8.AppendRune(out, r)
		}
	}
	return out
}

// Unquote decodes the JSON encoding of a string, with the enclosing
// quotation marks already removed, replacing escape sequences by their
// unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune.
// Unquote reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	out := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(out, src), nil
		}
		out = mem.Append(out, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		src = src.SliceFrom(n)

		switch r {
		case '"', '\\', '/':
			out = append(out, byte(r))
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			if v, ok := hex4(src.SliceTo(4)); ok {
				out = utf8.AppendRune(out, v)
			} else {
				out = utf8.AppendRune(out, utf8.RuneError)
			}
			src = src.SliceFrom(4)
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
		}
	}
}

// hex4 decodes exactly four hexadecimal digits.
func hex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b-'a') + 10
		case 'A' <= b && b <= 'F':
			v += rune(b-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
