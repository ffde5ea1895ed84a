package config

import (
	"github.com/goliatone/go-formrules/pkg/rules"
	"github.com/goliatone/go-formrules/pkg/visibility"
)

// Summary is a callable-free snapshot of a Config. It marshals identically
// across runs for the same input, which makes it suitable for golden files
// and CLI output.
type Summary struct {
	Validations    map[string]ValidationSummary `json:"validations" yaml:"validations"`
	Fields         []string                     `json:"fields" yaml:"fields"`
	TypingDebounce TypingDebounce               `json:"typingDebounce" yaml:"typingDebounce"`
}

// ValidationSummary mirrors ValidationSpec without callables.
type ValidationSummary struct {
	Rules    []rules.Summary            `json:"rules" yaml:"rules"`
	Fields   visibility.FieldVisibility `json:"fields" yaml:"fields"`
	Debounce float64                    `json:"debounce" yaml:"debounce"`
}

// Summary builds the snapshot view of c.
func (c Config) Summary() Summary {
	out := Summary{
		Validations:    make(map[string]ValidationSummary, len(c.Validations)),
		Fields:         append([]string{}, c.Fields...),
		TypingDebounce: c.TypingDebounce,
	}
	for name, spec := range c.Validations {
		out.Validations[name] = spec.Summary()
	}
	return out
}

// Summary builds the snapshot view of s.
func (s ValidationSpec) Summary() ValidationSummary {
	ruleSummaries := make([]rules.Summary, len(s.Rules))
	for idx, inv := range s.Rules {
		ruleSummaries[idx] = inv.Summary()
	}
	return ValidationSummary{
		Rules:    ruleSummaries,
		Fields:   s.Fields.Clone(),
		Debounce: s.Debounce,
	}
}
