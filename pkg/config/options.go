package config

import "github.com/goliatone/go-formrules/internal/shape"

// Defaults applied to absent options.
const (
	DefaultAsyncThrottle        = 500
	DefaultTypingDebounceBefore = 2500
	DefaultTypingDebounceAfter  = 1000
)

// Settings is Raw with every optional top-level value populated. Values are
// still unvalidated; Normalize checks them after resolution.
type Settings struct {
	AsyncThrottle  any
	TypingDebounce any
	OnValidation   any
}

// Noop is the onValidation callback used when none is supplied.
func Noop(...any) {}

// ResolveDefaults fills absent options. It never inspects present values, so a
// malformed value survives resolution and is rejected later.
func ResolveDefaults(raw Raw) Settings {
	settings := Settings{
		AsyncThrottle: DefaultAsyncThrottle,
		OnValidation:  raw.OnValidation,
	}
	if raw.Options != nil {
		if !shape.IsNil(raw.Options.AsyncThrottle) {
			settings.AsyncThrottle = raw.Options.AsyncThrottle
		}
		settings.TypingDebounce = raw.Options.TypingDebounce
	}
	if settings.OnValidation == nil {
		settings.OnValidation = Noop
	}
	return settings
}
