// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package ast

import (
	"io"

	"github.com/vjson/vjson"
)

// Parse parses a single JSON value from r. The whole input must
// comprise exactly one value; trailing input after the value is
// reported as an error wrapping vjson.ErrExtraInput, and an empty
// input or one with unbalanced containers as an error wrapping
// vjson.ErrUnexpectedEOF. No partial tree is returned on error.
func Parse(r io.Reader) (Value, error) {
	b := newBuilder(vjson.NewScanner(r))
	if err := b.run(); err != nil {
		return nil, err
	}
	return b.resolve()
}

// nodeKind discriminates the variants of a parse node.
type nodeKind byte

const (
	nodeRoot    nodeKind = iota // the synthetic root; owns the single top-level value
	nodeObject                  // an object under construction
	nodeArray                   // an array under construction
	nodeLiteral                 // a resolved literal leaf
)

// parseState tracks what a container expects next while it is open on
// the scope stack.
type parseState byte

const (
	stateValue        parseState = iota // a value is required here
	stateValueOrClose                   // array just opened: value or "]"
	stateKeyOrClose                     // object just opened: key or "}"
	stateKey                            // a member key is required
	stateColon                          // a key was read; ":" required
	stateNext                           // "," continues, matching close ends
	stateDone                           // root only: the value is complete
)

// A parseNode is a transient node in the parse arena. Nodes address
// one another by index; there are no owning links, so a node can sit
// on the scope stack and under its parent at the same time without
// shared mutable ownership.
type parseNode struct {
	kind  nodeKind
	state parseState
	keys  []string // object only: member keys in collection order
	kids  []int    // child indices in parse order
	lit   Value    // literal only: the resolved value
}

// A builder consumes tokens and assembles the parse arena. The scope
// stack holds the indices of the currently open containers, innermost
// last; it replaces host-stack recursion, so nesting depth is bounded
// only by memory.
type builder struct {
	sc    *vjson.Scanner
	nodes []parseNode // arena; nodes[0] is the root
	scope []int
}

func newBuilder(sc *vjson.Scanner) *builder {
	return &builder{
		sc:    sc,
		nodes: []parseNode{{kind: nodeRoot, state: stateValue}},
		scope: []int{0},
	}
}

// run consumes the whole token stream, or fails on the first
// structural violation.
func (b *builder) run() error {
	for {
		err := b.sc.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if err := b.shift(); err != nil {
			return err
		}
	}
	if len(b.scope) > 1 || b.nodes[0].state != stateDone {
		return b.failf(vjson.ErrUnexpectedEOF, "unexpected end of input")
	}
	return nil
}

// top returns the innermost open container. The root never pops, so
// the scope stack is never empty.
func (b *builder) top() *parseNode { return &b.nodes[b.scope[len(b.scope)-1]] }

func (b *builder) shift() error {
	switch tok := b.sc.Token(); tok {
	case vjson.LBrace:
		return b.open(nodeObject, stateKeyOrClose)

	case vjson.LSquare:
		return b.open(nodeArray, stateValueOrClose)

	case vjson.RBrace:
		top := b.top()
		if top.kind != nodeObject || (top.state != stateKeyOrClose && top.state != stateNext) {
			return b.failf(nil, "unexpected %v", tok)
		}
		b.scope = b.scope[:len(b.scope)-1]

	case vjson.RSquare:
		top := b.top()
		if top.kind != nodeArray || (top.state != stateValueOrClose && top.state != stateNext) {
			return b.failf(nil, "unexpected %v", tok)
		}
		b.scope = b.scope[:len(b.scope)-1]

	case vjson.Colon:
		top := b.top()
		if top.kind != nodeObject || top.state != stateColon {
			return b.failf(nil, "unexpected %v", tok)
		}
		top.state = stateValue

	case vjson.Comma:
		top := b.top()
		if top.state == stateNext && top.kind == nodeObject {
			top.state = stateKey
		} else if top.state == stateNext && top.kind == nodeArray {
			top.state = stateValue
		} else {
			return b.failf(nil, "unexpected %v", tok)
		}

	case vjson.String, vjson.Number, vjson.True, vjson.False, vjson.Null:
		return b.literal(tok)

	default:
		return b.failf(nil, "unknown token %v", tok)
	}
	return nil
}

// open links a new container under the current top and pushes it onto
// the scope stack.
func (b *builder) open(kind nodeKind, state parseState) error {
	if err := b.checkValuePos(); err != nil {
		return err
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, parseNode{kind: kind, state: state})

	// Fetch the parent only after appending; the arena may have moved.
	top := b.top()
	top.kids = append(top.kids, idx)
	advance(top)
	b.scope = append(b.scope, idx)
	return nil
}

// literal handles a non-structural token: either an object key, which
// lands in the enclosing object's key list, or a value, which becomes
// a literal leaf linked under the current container in parse order.
func (b *builder) literal(tok vjson.Token) error {
	top := b.top()
	if top.kind == nodeObject && (top.state == stateKey || top.state == stateKeyOrClose) {
		if tok != vjson.String {
			return b.failf(nil, "object key must be a string, not %v", tok)
		}
		key, err := b.sc.Unescape()
		if err != nil {
			return b.failf(err, "invalid object key: %v", err)
		}
		top.keys = append(top.keys, string(key))
		top.state = stateColon
		return nil
	}

	if err := b.checkValuePos(); err != nil {
		return err
	}
	v, err := b.tokenValue(tok)
	if err != nil {
		return err
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, parseNode{kind: nodeLiteral, lit: v})

	top = b.top()
	top.kids = append(top.kids, idx)
	advance(top)
	return nil
}

// checkValuePos reports an error unless the current top expects a
// value at this point.
func (b *builder) checkValuePos() error {
	switch b.top().state {
	case stateValue, stateValueOrClose:
		return nil
	case stateDone:
		return b.failf(vjson.ErrExtraInput, "unexpected %v after value", b.sc.Token())
	}
	return b.failf(nil, "unexpected %v", b.sc.Token())
}

// advance moves a container past a just-linked child value.
func advance(n *parseNode) {
	if n.kind == nodeRoot {
		n.state = stateDone
	} else {
		n.state = stateNext
	}
}

// tokenValue materializes the current literal token as a Value.
func (b *builder) tokenValue(tok vjson.Token) (Value, error) {
	switch tok {
	case vjson.Null:
		return Null{}, nil
	case vjson.True:
		return Bool(true), nil
	case vjson.False:
		return Bool(false), nil
	case vjson.Number:
		return Number(b.sc.Float64()), nil
	case vjson.String:
		text, err := b.sc.Unescape()
		if err != nil {
			return nil, b.failf(err, "invalid string: %v", err)
		}
		return String(text), nil
	}
	return nil, b.failf(nil, "unknown token %v", tok)
}

func (b *builder) failf(cause error, msg string, args ...any) error {
	return vjson.SyntaxErrorf(b.sc.Location().First, cause, msg, args...)
}
