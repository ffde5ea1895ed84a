package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/document"
	"github.com/goliatone/go-formrules/pkg/rules"
)

// DefaultRuleNames are the rule names registered by Catalog when none are
// supplied. They cover the fixtures under testdata/.
var DefaultRuleNames = []string{"required", "pattern", "minLength", "equalFields"}

// Catalog returns a catalog binding each name to a placeholder callable.
func Catalog(names ...string) *rules.Catalog {
	if len(names) == 0 {
		names = DefaultRuleNames
	}
	catalog := rules.NewCatalog()
	for _, name := range names {
		placeholder := rules.Placeholder(name)
		catalog.MustRegister(placeholder.Name, placeholder.Func)
	}
	return catalog
}

// CompareOptions makes cmp treat rule invocations as name + args and ignore the
// onValidation callback, since functions are not comparable.
func CompareOptions() cmp.Options {
	return cmp.Options{
		cmp.Transformer("invocation", func(inv rules.Invocation) rules.Summary { return inv.Summary() }),
		cmpopts.IgnoreFields(config.Config{}, "OnValidation"),
	}
}

// MustLoadRaw loads a fixture document, failing the test on error.
func MustLoadRaw(t *testing.T, path string, resolver rules.Resolver) config.Raw {
	t.Helper()

	raw, err := document.LoadFile(path, resolver)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return raw
}

// MustNormalize normalises raw, failing the test on error.
func MustNormalize(t *testing.T, raw config.Raw) config.Config {
	t.Helper()

	cfg, err := config.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return cfg
}

// CanonicalSummary round-trips the summary of cfg through JSON so numbers and
// argument types match what a golden file decodes to.
func CanonicalSummary(cfg config.Config) (config.Summary, error) {
	payload, err := json.Marshal(cfg.Summary())
	if err != nil {
		return config.Summary{}, fmt.Errorf("testsupport: marshal summary: %w", err)
	}
	var out config.Summary
	if err := json.Unmarshal(payload, &out); err != nil {
		return config.Summary{}, fmt.Errorf("testsupport: unmarshal summary: %w", err)
	}
	return out, nil
}

// LoadSummary reads a JSON summary golden.
func LoadSummary(path string) (config.Summary, error) {
	if path == "" {
		return config.Summary{}, errors.New("testsupport: summary path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Summary{}, fmt.Errorf("testsupport: read summary: %w", err)
	}
	var out config.Summary
	if err := json.Unmarshal(data, &out); err != nil {
		return config.Summary{}, fmt.Errorf("testsupport: unmarshal summary: %w", err)
	}
	return out, nil
}

// AssertSummaryGolden compares the summary of cfg with the golden at path.
// When UPDATE_GOLDENS is set the golden is rewritten instead.
func AssertSummaryGolden(t *testing.T, path string, cfg config.Config) {
	t.Helper()

	got, err := CanonicalSummary(cfg)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if WriteGolden(t, path, got) {
		return
	}

	want, err := LoadSummary(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set and
// reports whether it did.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
