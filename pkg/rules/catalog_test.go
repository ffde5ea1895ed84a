package rules

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func required(value any) error { return nil }

func TestCatalog_RegisterAndLookup(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Register(" required ", required); err != nil {
		t.Fatalf("register: %v", err)
	}

	named, ok := catalog.Lookup("required")
	if !ok {
		t.Fatalf("expected required to resolve")
	}
	if named.RuleName() != "required" {
		t.Fatalf("name mismatch: %q", named.RuleName())
	}
	if _, ok := Callable(named); !ok {
		t.Fatalf("looked up rule should unwrap to a callable")
	}
}

func TestCatalog_RegisterRejectsInvalid(t *testing.T) {
	catalog := NewCatalog()

	if err := catalog.Register("", required); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := catalog.Register("notAFunc", "nope"); err == nil {
		t.Fatalf("expected error for non-callable value")
	}

	var nilCatalog *Catalog
	if err := nilCatalog.Register("required", required); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}

func TestCatalog_ResolveUnknown(t *testing.T) {
	_, err := NewCatalog().Resolve("missing")
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestCatalog_NamesSorted(t *testing.T) {
	catalog := NewCatalog()
	catalog.MustRegister("pattern", required)
	catalog.MustRegister("email", required)
	catalog.MustRegister("minLength", required)

	if diff := cmp.Diff([]string{"email", "minLength", "pattern"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewCatalog().MustRegister("bad", 42)
}

func TestPlaceholderResolver(t *testing.T) {
	named, err := PlaceholderResolver.Resolve("anything")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if named.RuleName() != "anything" {
		t.Fatalf("name mismatch: %q", named.RuleName())
	}
	if _, ok := Callable(named); !ok {
		t.Fatalf("placeholder should be callable")
	}

	var resolver Resolver = NewCatalog()
	if _, err := resolver.Resolve("anything"); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("empty catalog should not resolve, got %v", err)
	}
}
