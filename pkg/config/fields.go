package config

import (
	"fmt"

	"github.com/goliatone/go-formrules/internal/shape"
	"github.com/goliatone/go-formrules/pkg/visibility"
)

func normalizeFields(validation string, raw any) (visibility.FieldVisibility, error) {
	resolved, ok := visibility.Resolve(validation, raw)
	if !ok {
		return visibility.FieldVisibility{}, structuralError(
			FacetValidationFields,
			validation,
			fmt.Sprintf("malformed fields for validation %q", validation),
			raw,
			visibility.ExpectedShape,
		)
	}
	return resolved, nil
}

// The form field list has a single legal shape; it is checked, not expanded.
func normalizeAllFields(raw any) ([]string, error) {
	fields, ok := shape.Strings(raw)
	if !ok {
		return nil, structuralError(FacetFields, "", "malformed fields", raw, expectedFields)
	}
	return fields, nil
}
