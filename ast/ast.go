// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

// Package ast defines a tree representation for JSON values, and a
// parser that constructs value trees from JSON source.
package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vjson/vjson"
)

// A Value is a parsed JSON value. The concrete type of a Value is one
// of Null, Bool, Number, String, Array, or Object, or *Member for a
// value reached through its enclosing object.
type Value interface {
	// JSON renders the value as JSON text.
	JSON() string

	// String returns a human-readable summary of the value for
	// debugging. It is not JSON; use the JSON method for output.
	String() string
}

// Null represents the JSON null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

// A Number is a JSON number. All numbers are 64-bit floating point.
type Number float64

func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

func (n Number) String() string { return n.JSON() }

// A String is a JSON string value. The content is the decoded text of
// the string, without quotation marks; JSON re-escapes it on output.
type String string

func (s String) JSON() string { return vjson.Quote(string(s)) }

func (s String) String() string { return strconv.Quote(string(s)) }

// An Array is an ordered sequence of values.
type Array []Value

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

func (a Array) Len() int { return len(a) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m *Member) JSON() string { return vjson.Quote(m.Key) + ": " + m.Value.JSON() }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Object is a collection of key-value members. Members are kept in
// insertion order, and rendering preserves that order.
type Object []*Member

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(func(k string) bool { return k == key }); i >= 0 {
		return o[i]
	}
	return nil
}

// IndexKey returns the index of the first member of o for whose key f
// reports true, or -1.
func (o Object) IndexKey(f func(key string) bool) int {
	for i, m := range o {
		if f(m.Key) {
			return i
		}
	}
	return -1
}

// Set updates the value of the member of o with the given key, adding
// a new member if the key is not present, and returns the member.
func (o *Object) Set(key string, v Value) *Member {
	if m := o.Find(key); m != nil {
		m.Value = v
		return m
	}
	m := &Member{Key: key, Value: v}
	*o = append(*o, m)
	return m
}

// Sort sorts the members of o in ascending order by key.
func (o Object) Sort() {
	sort.Slice(o, func(i, j int) bool { return o[i].Key < o[j].Key })
}

// AsBool reports the truth value of v, if v is a Bool.
func AsBool(v Value) (bool, bool) { b, ok := v.(Bool); return bool(b), ok }

// AsNumber reports the numeric value of v, if v is a Number.
func AsNumber(v Value) (float64, bool) { n, ok := v.(Number); return float64(n), ok }

// AsString reports the decoded text of v, if v is a String.
func AsString(v Value) (string, bool) { s, ok := v.(String); return string(s), ok }

// AsArray reports the element sequence of v, if v is an Array.
func AsArray(v Value) (Array, bool) { a, ok := v.(Array); return a, ok }

// AsObject reports the member collection of v, if v is an Object.
func AsObject(v Value) (Object, bool) { o, ok := v.(Object); return o, ok }

// Get returns the value of the member of v with the given key.
// It reports false if v is not an Object, or has no such member.
func Get(v Value, key string) (Value, bool) {
	o, ok := v.(Object)
	if !ok {
		return nil, false
	}
	if m := o.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// At returns the element of v at offset i. It reports false if v is
// not an Array, or i is out of range.
func At(v Value, i int) (Value, bool) {
	a, ok := v.(Array)
	if !ok || i < 0 || i >= len(a) {
		return nil, false
	}
	return a[i], true
}
