package config

import (
	"fmt"

	"github.com/goliatone/go-formrules/internal/shape"
	"github.com/goliatone/go-formrules/pkg/rules"
)

func normalizeRules(validation string, raw any) ([]rules.Invocation, error) {
	items, ok := shape.Sequence(raw)
	tuples := make([][]any, 0, len(items))
	if ok {
		for _, item := range items {
			tuple, isTuple := shape.Sequence(item)
			if !isTuple {
				ok = false
				break
			}
			tuples = append(tuples, tuple)
		}
	}
	if !ok {
		return nil, structuralError(
			FacetValidationRules,
			validation,
			fmt.Sprintf("malformed rules for validation %q", validation),
			raw,
			expectedRules,
		)
	}

	out := make([]rules.Invocation, 0, len(tuples))
	for idx, tuple := range tuples {
		inv, ok := normalizeRule(tuple)
		if !ok {
			err := structuralError(
				FacetValidationRule,
				validation,
				fmt.Sprintf("malformed rule %d for validation %q", idx, validation),
				items[idx],
				expectedRule,
			)
			err.Rule = idx
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

// normalizeRule expands [named, args...] into [name, func, args...] and then
// requires a string name followed by a callable.
func normalizeRule(tuple []any) (rules.Invocation, bool) {
	if len(tuple) > 0 {
		if named, ok := tuple[0].(rules.NamedRule); ok {
			expanded := make([]any, 0, len(tuple)+1)
			expanded = append(expanded, named.RuleName(), named)
			tuple = append(expanded, tuple[1:]...)
		}
	}
	if len(tuple) < 2 {
		return rules.Invocation{}, false
	}

	name, ok := shape.String(tuple[0])
	if !ok {
		return rules.Invocation{}, false
	}
	fn, ok := rules.Callable(tuple[1])
	if !ok {
		return rules.Invocation{}, false
	}

	var args []any
	if len(tuple) > 2 {
		args = append(args, tuple[2:]...)
	}
	return rules.Invocation{Name: name, Func: fn, Args: args}, true
}
