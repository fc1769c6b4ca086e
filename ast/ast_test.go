// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/vjson/vjson/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, `null`},
		{ast.Bool(true), `true`},
		{ast.Bool(false), `false`},
		{ast.Number(42), `42`},
		{ast.Number(-0.25), `-0.25`},
		{ast.String(""), `""`},
		{ast.String("a\tb"), `"a\tb"`},
		{ast.String(`say "cheese"`), `"say \"cheese\""`},
		{ast.Array{}, `[]`},
		{ast.Array{ast.String("hello"), ast.Number(42), ast.Bool(true)},
			`["hello", 42, true]`},
		{ast.Object{}, `{}`},
		{ast.Object{ast.Field("name", "John"), ast.Field("age", 42)},
			`{"name": "John", "age": 42}`},
		{ast.Object{ast.Field("list", ast.Array{ast.Null{}})},
			`{"list": [null]}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("JSON %v: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestProjections(t *testing.T) {
	values := []ast.Value{
		ast.Null{},
		ast.Bool(true),
		ast.Number(3),
		ast.String("x"),
		ast.Array{ast.Number(1)},
		ast.Object{ast.Field("a", 1)},
	}

	// Each projection succeeds on exactly one of the variants above.
	for i, v := range values {
		if _, ok := ast.AsBool(v); ok != (i == 1) {
			t.Errorf("AsBool(%v): ok=%v", v, ok)
		}
		if _, ok := ast.AsNumber(v); ok != (i == 2) {
			t.Errorf("AsNumber(%v): ok=%v", v, ok)
		}
		if _, ok := ast.AsString(v); ok != (i == 3) {
			t.Errorf("AsString(%v): ok=%v", v, ok)
		}
		if _, ok := ast.AsArray(v); ok != (i == 4) {
			t.Errorf("AsArray(%v): ok=%v", v, ok)
		}
		if _, ok := ast.AsObject(v); ok != (i == 5) {
			t.Errorf("AsObject(%v): ok=%v", v, ok)
		}
	}

	if b, ok := ast.AsBool(ast.Bool(true)); !ok || !b {
		t.Errorf("AsBool(true): got %v, %v", b, ok)
	}
	if n, ok := ast.AsNumber(ast.Number(3)); !ok || n != 3 {
		t.Errorf("AsNumber(3): got %v, %v", n, ok)
	}
	if s, ok := ast.AsString(ast.String("x")); !ok || s != "x" {
		t.Errorf("AsString(x): got %q, %v", s, ok)
	}
}

func TestGetAt(t *testing.T) {
	obj := ast.Object{ast.Field("a", 1), ast.Field("b", "two")}
	arr := ast.Array{ast.Number(1), ast.String("two")}

	if v, ok := ast.Get(obj, "b"); !ok {
		t.Error(`Get "b": not found`)
	} else if s, _ := ast.AsString(v); s != "two" {
		t.Errorf(`Get "b": got %v, want "two"`, v)
	}
	if v, ok := ast.Get(obj, "nonesuch"); ok {
		t.Errorf(`Get "nonesuch": unexpectedly found %v`, v)
	}
	if v, ok := ast.Get(arr, "a"); ok {
		t.Errorf("Get on array: unexpectedly found %v", v)
	}

	if v, ok := ast.At(arr, 1); !ok {
		t.Error("At 1: not found")
	} else if s, _ := ast.AsString(v); s != "two" {
		t.Errorf("At 1: got %v, want \"two\"", v)
	}
	if v, ok := ast.At(arr, 2); ok {
		t.Errorf("At 2: unexpectedly found %v", v)
	}
	if v, ok := ast.At(arr, -1); ok {
		t.Errorf("At -1: unexpectedly found %v", v)
	}
	if v, ok := ast.At(obj, 0); ok {
		t.Errorf("At on object: unexpectedly found %v", v)
	}
}

func TestObjectMutation(t *testing.T) {
	var obj ast.Object

	obj.Set("b", ast.Number(2))
	obj.Set("a", ast.Number(1))
	obj.Set("b", ast.Number(3)) // update in place
	if got, want := obj.JSON(), `{"b": 3, "a": 1}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	if m := obj.Find("a"); m == nil {
		t.Error(`Find "a": not found`)
	} else if m.Key != "a" {
		t.Errorf(`Find "a": got key %q`, m.Key)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find "nonesuch": unexpectedly found %v`, m)
	}
	if i := obj.IndexKey(func(k string) bool { return k > "a" }); i != 0 {
		t.Errorf("IndexKey: got %d, want 0", i)
	}

	obj.Sort()
	if got, want := obj.JSON(), `{"a": 1, "b": 3}`; got != want {
		t.Errorf("JSON after Sort: got %#q, want %#q", got, want)
	}

	// Positional mutation through the slice.
	arr := ast.Array{ast.Number(1), ast.Number(2)}
	arr[1] = ast.String("two")
	if got, want := arr.JSON(), `[1, "two"]`; got != want {
		t.Errorf("JSON after mutation: got %#q, want %#q", got, want)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{"hi", ast.String("hi")},
		{17, ast.Number(17)},
		{int32(-5), ast.Number(-5)},
		{int64(1 << 40), ast.Number(1 << 40)},
		{float32(0.5), ast.Number(0.5)},
		{2.25, ast.Number(2.25)},
		{ast.Bool(false), ast.Bool(false)},
		{[]any{1, "two", nil}, ast.Array{ast.Number(1), ast.String("two"), ast.Null{}}},
		{map[string]any{"b": 2, "a": 1},
			ast.Object{ast.Field("a", 1), ast.Field("b", 2)}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue %v: (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("InvalidInput", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}
