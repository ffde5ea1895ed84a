package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/rules"
)

func TestCheckDocument_IssuePaths(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		expect Issue
	}{
		{
			name:   "async throttle",
			doc:    `{"fields": [], "options": {"asyncThrottle": "fast"}}`,
			expect: Issue{Path: "#/options/asyncThrottle"},
		},
		{
			name:   "typing debounce",
			doc:    `{"fields": [], "options": {"typingDebounce": [1]}}`,
			expect: Issue{Path: "#/options/typingDebounce"},
		},
		{
			name:   "top-level fields",
			doc:    `{"fields": "email"}`,
			expect: Issue{Path: "#/fields"},
		},
		{
			name:   "rules list",
			doc:    `{"fields": ["email"], "validations": {"email": {"rules": "required"}}}`,
			expect: Issue{Path: "#/validations/email/rules", Field: "email"},
		},
		{
			name:   "single rule",
			doc:    `{"fields": ["email"], "validations": {"email": [["required"], []]}}`,
			expect: Issue{Path: "#/validations/email/rules/1", Field: "email"},
		},
		{
			name:   "validation fields",
			doc:    `{"fields": ["a/b"], "validations": {"a/b": {"rules": [], "fields": ["x", 1]}}}`,
			expect: Issue{Path: "#/validations/a~1b/fields", Field: "a/b"},
		},
		{
			name:   "validations not a map",
			doc:    `{"fields": [], "validations": ["email"]}`,
			expect: Issue{Path: "#/validations"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckDocument([]byte(tc.doc), "inline.json", rules.PlaceholderResolver)
			if result.Valid {
				t.Fatalf("expected invalid result")
			}
			if len(result.Issues) != 1 {
				t.Fatalf("expected a single issue, got %#v", result.Issues)
			}
			issue := result.Issues[0]
			if diff := cmp.Diff(tc.expect, issue, cmpopts.IgnoreFields(Issue{}, "Message")); diff != "" {
				t.Fatalf("issue mismatch (-want +got):\n%s", diff)
			}
			if issue.Message == "" || strings.HasPrefix(issue.Message, "formrules config:") {
				t.Fatalf("message should be set without package prefix: %q", issue.Message)
			}
		})
	}
}

func TestCheckDocument_Valid(t *testing.T) {
	result := CheckDocument([]byte("fields: [email]\nvalidations:\n  email: [[required]]\n"), "inline.yaml", rules.PlaceholderResolver)
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid result, got %#v", result.Issues)
	}
	if _, ok := result.Config.Validation("email"); !ok {
		t.Fatalf("valid result should carry the normalised config")
	}
}

func TestCheckDocument_ParseAndBindingErrors(t *testing.T) {
	result := CheckDocument([]byte("fields: [email\n"), "broken.yaml", nil)
	if result.Valid || len(result.Issues) != 1 || result.Issues[0].Path != "" {
		t.Fatalf("expected a location-less parse issue, got %#v", result)
	}

	result = CheckDocument([]byte("fields: [email]\nvalidations:\n  email: [[required]]\n"), "inline.yaml", rules.NewCatalog())
	if result.Valid || len(result.Issues) != 1 {
		t.Fatalf("expected unknown rule issue, got %#v", result)
	}
	if result.Issues[0].Path != "#/validations" || !strings.Contains(result.Issues[0].Message, "unknown rule") {
		t.Fatalf("unexpected unknown rule issue: %#v", result.Issues[0])
	}
}

func TestCheck_Raw(t *testing.T) {
	result := Check(config.Raw{Fields: []string{"email"}})
	if !result.Valid {
		t.Fatalf("expected valid result, got %#v", result.Issues)
	}
}

func TestCheckFile_Missing(t *testing.T) {
	if _, err := CheckFile("testdata/does-not-exist.yaml", nil); err == nil {
		t.Fatalf("expected read error")
	}
}
