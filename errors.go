// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package vjson

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is reported when the input ends inside a string or
// with unbalanced containers. Errors returned by the scanner and parser
// wrap it; test with errors.Is.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrExtraInput is reported when a second top-level value follows a
// complete value. Errors returned by the parser wrap it; test with
// errors.Is.
var ErrExtraInput = errors.New("extra input after value")

// SyntaxError is the concrete type of errors reported by the scanner
// and parser.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// SyntaxErrorf constructs a *SyntaxError at loc wrapping cause, which
// may be nil.
func SyntaxErrorf(loc LineCol, cause error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Location: loc, Message: fmt.Sprintf(msg, args...), err: cause}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
