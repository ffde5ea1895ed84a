package config

import (
	"sort"

	"github.com/goliatone/go-formrules/pkg/rules"
	"github.com/goliatone/go-formrules/pkg/visibility"
)

// Raw is the untrusted input. Validations is expected to map validation
// names to either a rule list or a Facets value (or a map with "rules" and
// "fields" keys); Fields is expected to be a list of field names.
type Raw struct {
	Validations  any      `json:"validations" yaml:"validations"`
	Fields       any      `json:"fields" yaml:"fields"`
	OnValidation any      `json:"-" yaml:"-"`
	Options      *Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// Options carries the optional timing parameters.
type Options struct {
	// AsyncThrottle is the shared minimum interval between async rule runs.
	// nil, including a typed nil or an explicit null in a document, selects
	// DefaultAsyncThrottle; it is not reported as malformed.
	AsyncThrottle any `json:"asyncThrottle,omitempty" yaml:"asyncThrottle,omitempty"`
	// TypingDebounce is nil, a number, or a [before, after] pair of numbers.
	TypingDebounce any `json:"typingDebounce,omitempty" yaml:"typingDebounce,omitempty"`
}

// Facets is the long form of a validation entry.
type Facets struct {
	Rules  any `mapstructure:"rules"`
	Fields any `mapstructure:"fields"`
}

// Config is the canonical configuration handed to the validation engine.
type Config struct {
	Validations    map[string]ValidationSpec
	Fields         []string
	TypingDebounce TypingDebounce
	OnValidation   any
}

// ValidationSpec is the canonical form of one named validation.
type ValidationSpec struct {
	Rules    []rules.Invocation
	Fields   visibility.FieldVisibility
	Debounce float64
}

// TypingDebounce holds the delays applied while a field is the active typing
// target (Before) and once it no longer is (After). Units are left to the
// engine.
type TypingDebounce struct {
	Before float64 `json:"before" yaml:"before"`
	After  float64 `json:"after" yaml:"after"`
}

// Names returns the validation names in ascending order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Validations))
	for name := range c.Validations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validation returns the spec registered under name.
func (c Config) Validation(name string) (ValidationSpec, bool) {
	spec, ok := c.Validations[name]
	return spec, ok
}
