// Package formrules turns terse form-validation configuration into the
// canonical form consumed by a validation engine.
//
// Callers describe which fields exist, which named validations apply, which
// rules make up each validation and how long to debounce typing. Several
// shorthand shapes are accepted per facet and expanded deterministically:
//
//	cfg, err := formrules.Normalize(formrules.Raw{
//		Validations: map[string]any{
//			"email": []any{[]any{rules.Named("checkFormat", checkFormat)}},
//		},
//		Fields: []string{"email"},
//	})
//
// Malformed input fails with a *ConfigError that names the facet, the
// validation, the offending value and the accepted shapes.
package formrules
