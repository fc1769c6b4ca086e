// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
)

// A Record is an ordered collection of named fields, a convenience
// wrapper for documents whose root is an object.
type Record struct {
	fields Object
}

// NewRecord constructs a new empty record.
func NewRecord() *Record { return new(Record) }

// ParseRecord parses a single value from r and reports an error if the
// parse fails or the root value is not an object.
func ParseRecord(r io.Reader) (*Record, error) {
	v, err := Parse(r)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("root value is %v, not an object", v)
	}
	return &Record{fields: obj}, nil
}

// SetField updates the field with the given key, adding it if absent.
func (r *Record) SetField(key string, v Value) { r.fields.Set(key, v) }

// Field returns the value of the named field. It reports false if the
// field is not present.
func (r *Record) Field(key string) (Value, bool) {
	if m := r.fields.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Fields returns the fields of r as an Object, in insertion order.
// Mutating the members of the result mutates r.
func (r *Record) Fields() Object { return r.fields }

// Len reports the number of fields in r.
func (r *Record) Len() int { return len(r.fields) }

// JSON renders r as a JSON object.
func (r *Record) JSON() string { return r.fields.JSON() }

func (r *Record) String() string { return fmt.Sprintf("Record(len=%d)", len(r.fields)) }
