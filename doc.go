// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

// Package vjson implements a lexical scanner for JSON-shaped text.
//
// # Scanning
//
// The Scanner type reads tokens from an io.Reader. Each call to Next
// advances the scanner to the next token and returns nil, or reports an
// error:
//
//	s := vjson.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error indicates an I/O or lexical error in the input, with the
// location of the offending character recorded in the error (see
// SyntaxError).
//
// The scanner is single pass and not restartable. It classifies
// unquoted runs at emission: the keywords true, false, and null become
// constant tokens, and anything strconv.ParseFloat accepts becomes a
// Number. This is deliberately looser than the JSON number grammar.
//
// Inside a string a backslash consumes the following character without
// interpretation, so escaped quotation marks do not terminate the
// string early. Decoding of escape sequences is a separate step; see
// Unquote and the Scanner.Unescape method.
//
// # Parsing
//
// The ast subpackage consumes the token stream and assembles value
// trees; see ast.Parse.
package vjson
