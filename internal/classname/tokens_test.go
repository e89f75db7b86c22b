package classname_test

import (
	"errors"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/Hashversion/koes/internal/classname"
)

type label string

type stringer struct{ s string }

func (s *stringer) String() string { return s.s }

func TestJoin(t *testing.T) {
	var nilStringer *stringer
	var nilSlice []string

	tests := []struct {
		name     string
		tokens   []any
		expected string
	}{
		{"empty", nil, ""},
		{"single", []any{"a"}, "a"},
		{"falsy dropped", []any{"a", nil, false, "", 0, "b"}, "a b"},
		{"true dropped", []any{true, "a"}, "a"},
		{"whitespace normalized", []any{"  a\t b\n", " c "}, "a b c"},
		{"nested any", []any{"a", []any{"b", []any{"c", nil}}}, "a b c"},
		{"nested strings", []any{[]string{"a", "b c"}, "d"}, "a b c d"},
		{"map sorted", []any{map[string]bool{"z": true, "a": true, "m": false}}, "a z"},
		{"conditional", []any{classname.If(true, "on"), classname.If(false, "off")}, "on"},
		{"typed string", []any{label("x y")}, "x y"},
		{"numbers", []any{1, 0, int64(2), 0.0, uint8(3)}, "1 2 3"},
		{"stringer", []any{&stringer{"s1"}}, "s1"},
		{"nil stringer", []any{nilStringer, "a"}, "a"},
		{"nil slice", []any{nilSlice, "a"}, "a"},
		{"typed slice", []any{[]label{"a", "b"}}, "a b"},
		{"array", []any{[2]string{"a", "b"}}, "a b"},
		{"map of any by truthiness", []any{map[string]any{"px-4": true, "hidden": false, "e": "", "n": nil, "one": 1, "s": "yes"}}, "one px-4 s"},
		{"map of ints by truthiness", []any{map[string]int{"a": 1, "z": 0}, "b"}, "a b"},
		{"typed key map", []any{map[label]bool{"x": true, "y": false}}, "x"},
		{"non-string key map ignored", []any{map[int]bool{1: true}, "b"}, "b"},
		{"templ kv", []any{"p-2", templ.KV("hidden", false), templ.KV("px-4", true)}, "p-2 px-4"},
		{"templ kv slice", []any{[]templ.KeyValue[string, bool]{templ.KV("a", true), templ.KV("b", false)}}, "a"},
		{"templ css class kv", []any{
			templ.KV[templ.CSSClass, bool](templ.ConstantCSSClass("on"), true),
			templ.KV[templ.CSSClass, bool](templ.ConstantCSSClass("off"), false),
		}, "on"},
		{"templ css class", []any{templ.ConstantCSSClass("c1"), templ.ComponentCSSClass{ID: "c2"}}, "c1 c2"},
		{"templ css classes", []any{templ.CSSClasses{"a", templ.KV("b", true), templ.KV("c", false)}}, "a b"},
		{"error message", []any{errors.New("x y")}, "x y"},
		{"nil error", []any{error(nil), "a"}, "a"},
		{"bytes", []any{[]byte("ab"), "c"}, "ab c"},
		{"func ignored", []any{func() {}, "a"}, "a"},
		{"duplicates kept", []any{"a", "a"}, "a a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classname.Join(tt.tokens...))
		})
	}
}

func TestJoinCyclic(t *testing.T) {
	self := []any{"a", nil}
	self[1] = self

	var loop any
	loop = &loop

	assert.NotPanics(t, func() {
		got := classname.Join(self, loop, "b")
		assert.Equal(t, "b", got[len(got)-1:])
		assert.Contains(t, got, "a a")
	})
}
