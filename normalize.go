package formrules

import (
	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/rules"
	"github.com/goliatone/go-formrules/pkg/visibility"
)

// Raw is the untrusted configuration input.
type Raw = config.Raw

// Options carries asyncThrottle and typingDebounce.
type Options = config.Options

// Facets is the long form of a validation entry.
type Facets = config.Facets

// Config is the canonical configuration.
type Config = config.Config

// ValidationSpec is the canonical form of a single validation.
type ValidationSpec = config.ValidationSpec

// TypingDebounce holds the before/after typing delays.
type TypingDebounce = config.TypingDebounce

// FieldVisibility is the canonical [dependsOn, needTouch] pair.
type FieldVisibility = visibility.FieldVisibility

// Invocation is a canonical [name, func, args...] rule entry.
type Invocation = rules.Invocation

// ConfigError reports a malformed configuration facet.
type ConfigError = config.ConfigError

// ErrStructural matches every ConfigError through errors.Is.
var ErrStructural = config.ErrStructural

// Normalize expands raw into its canonical form.
func Normalize(raw Raw) (Config, error) {
	return config.Normalize(raw)
}

// Named pairs a rule callable with its name so it can lead a rule tuple.
func Named(name string, fn any) rules.NamedFunc {
	return rules.Named(name, fn)
}
