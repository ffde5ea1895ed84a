package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formrules/internal/shape"
)

// ErrStructural matches every *ConfigError through errors.Is.
var ErrStructural = errors.New("formrules config: structural error")

// Facet identifiers reported in ConfigError.Facet.
const (
	FacetAsyncThrottle    = "options.asyncThrottle"
	FacetTypingDebounce   = "options.typingDebounce"
	FacetValidations      = "validations"
	FacetValidationRules  = "validations.rules"
	FacetValidationRule   = "validations.rule"
	FacetValidationFields = "validations.fields"
	FacetFields           = "fields"
)

// Accepted shape descriptions reported in ConfigError.Expected.
const (
	expectedAsyncThrottle  = "number"
	expectedTypingDebounce = "[2]number, number or nil"
	expectedValidations    = "map[string]any of rule lists or {rules, fields} objects"
	expectedRules          = "list of lists"
	expectedRule           = "[string, func, ...args] or [rules.NamedRule, ...args]"
	expectedFields         = "[]string"
)

// ConfigError reports a malformed configuration facet. Value holds the
// offending raw value as supplied by the caller. Rule is the zero-based rule
// position and is only meaningful for FacetValidationRule.
type ConfigError struct {
	Facet      string
	Validation string
	Rule       int
	Message    string
	Value      any
	Expected   string
}

func (e *ConfigError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "malformed " + e.Facet
	}
	var b strings.Builder
	b.WriteString("formrules config: ")
	b.WriteString(msg)
	fmt.Fprintf(&b, ": got %#v (%s)", e.Value, shape.Describe(e.Value))
	if e.Expected != "" {
		b.WriteString(", expected ")
		b.WriteString(e.Expected)
	}
	return b.String()
}

// Unwrap lets errors.Is(err, ErrStructural) match.
func (e *ConfigError) Unwrap() error {
	return ErrStructural
}

func structuralError(facet, validation, message string, value any, expected string) *ConfigError {
	return &ConfigError{
		Facet:      facet,
		Validation: validation,
		Message:    message,
		Value:      value,
		Expected:   expected,
	}
}
