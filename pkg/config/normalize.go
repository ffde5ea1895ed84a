package config

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/goliatone/go-formrules/internal/shape"
)

// Normalize expands raw into a Config. Facets are checked in a fixed order
// (asyncThrottle, typingDebounce, validations by ascending name, fields) and
// the first malformed one aborts with a *ConfigError. No partial Config is
// ever returned.
func Normalize(raw Raw) (Config, error) {
	settings := ResolveDefaults(raw)

	throttle, ok := shape.Number(settings.AsyncThrottle)
	if !ok {
		return Config{}, structuralError(
			FacetAsyncThrottle,
			"",
			"malformed option asyncThrottle",
			settings.AsyncThrottle,
			expectedAsyncThrottle,
		)
	}

	typing, err := normalizeTypingDebounce(settings.TypingDebounce)
	if err != nil {
		return Config{}, err
	}

	validations, err := normalizeValidations(raw.Validations, throttle)
	if err != nil {
		return Config{}, err
	}

	fields, err := normalizeAllFields(raw.Fields)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Validations:    validations,
		Fields:         fields,
		TypingDebounce: typing,
		OnValidation:   settings.OnValidation,
	}, nil
}

func normalizeValidations(raw any, throttle float64) (map[string]ValidationSpec, error) {
	if shape.IsNil(raw) {
		return map[string]ValidationSpec{}, nil
	}
	entries, ok := shape.Mapping(raw)
	if !ok {
		return nil, structuralError(FacetValidations, "", "malformed validations", raw, expectedValidations)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]ValidationSpec, len(entries))
	for _, name := range names {
		facets, err := facetsOf(name, entries[name])
		if err != nil {
			return nil, err
		}

		ruleList, err := normalizeRules(name, facets.Rules)
		if err != nil {
			return nil, err
		}
		fields, err := normalizeFields(name, facets.Fields)
		if err != nil {
			return nil, err
		}

		out[name] = ValidationSpec{
			Rules:    ruleList,
			Fields:   fields,
			Debounce: throttle,
		}
	}
	return out, nil
}

// facetsOf expands a validation entry into its long form. A bare list is a
// rule list with no explicit fields. Object keys must be exactly "rules" and
// "fields". Entries that are neither a list nor an object yield empty facets
// so the rule check reports them.
func facetsOf(name string, entry any) (Facets, error) {
	if _, ok := shape.Sequence(entry); ok {
		return Facets{Rules: entry}, nil
	}

	switch v := entry.(type) {
	case Facets:
		return v, nil
	case *Facets:
		if v != nil {
			return *v, nil
		}
		return Facets{}, nil
	}

	fields, ok := shape.Mapping(entry)
	if !ok {
		return Facets{}, nil
	}
	var facets Facets
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    &facets,
		MatchName: func(key, field string) bool { return key == field },
	})
	if err == nil {
		err = decoder.Decode(fields)
	}
	if err != nil {
		return Facets{}, structuralError(
			FacetValidations,
			name,
			fmt.Sprintf("malformed validation %q: %v", name, err),
			entry,
			expectedValidations,
		)
	}
	return facets, nil
}
