package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type label string

func TestNumber(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		expect float64
		ok     bool
	}{
		{name: "int", value: 300, expect: 300, ok: true},
		{name: "uint8", value: uint8(7), expect: 7, ok: true},
		{name: "float64", value: 2.5, expect: 2.5, ok: true},
		{name: "float32", value: float32(1.5), expect: 1.5, ok: true},
		{name: "bool", value: true},
		{name: "numeric string", value: "300"},
		{name: "nil", value: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Number(tc.value)
			if ok != tc.ok || got != tc.expect {
				t.Fatalf("Number(%#v) = %v, %v; want %v, %v", tc.value, got, ok, tc.expect, tc.ok)
			}
		})
	}
}

func TestSequence(t *testing.T) {
	if _, ok := Sequence([]string(nil)); ok {
		t.Fatalf("nil slice must not be a sequence")
	}
	if _, ok := Sequence("abc"); ok {
		t.Fatalf("string must not be a sequence")
	}

	items, ok := Sequence([2]int{1, 2})
	if !ok {
		t.Fatalf("array should be a sequence")
	}
	if diff := cmp.Diff([]any{1, 2}, items); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	empty, ok := Sequence([]any{})
	if !ok || len(empty) != 0 {
		t.Fatalf("empty slice should be an empty sequence, got %#v (ok=%v)", empty, ok)
	}
}

func TestStrings(t *testing.T) {
	got, ok := Strings([]any{"a", label("b")})
	if !ok {
		t.Fatalf("expected string sequence")
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("strings mismatch (-want +got):\n%s", diff)
	}

	if _, ok := Strings([]any{"a", 1}); ok {
		t.Fatalf("mixed sequence must not be a string sequence")
	}

	src := []string{"x"}
	copied, _ := Strings(src)
	copied[0] = "y"
	if src[0] != "x" {
		t.Fatalf("Strings must not alias its input")
	}
}

func TestCallable(t *testing.T) {
	var nilFn func()
	if Callable(nilFn) {
		t.Fatalf("nil func must not be callable")
	}
	if !Callable(func() {}) {
		t.Fatalf("func literal should be callable")
	}
	if Callable("fn") {
		t.Fatalf("string must not be callable")
	}
}

func TestMapping(t *testing.T) {
	got, ok := Mapping(map[string]string{"rules": "x"})
	if !ok || got["rules"] != "x" {
		t.Fatalf("expected string keyed map to convert, got %#v (ok=%v)", got, ok)
	}
	if _, ok := Mapping(map[int]string{1: "x"}); ok {
		t.Fatalf("int keyed map must not be a mapping")
	}
	if _, ok := Mapping([]any{}); ok {
		t.Fatalf("slice must not be a mapping")
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(nil); got != "nil" {
		t.Fatalf("Describe(nil) = %q", got)
	}
	if got := Describe([]any{}); got != "[]interface {}" {
		t.Fatalf("Describe([]any{}) = %q", got)
	}
}
