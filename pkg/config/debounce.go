package config

import "github.com/goliatone/go-formrules/internal/shape"

func normalizeTypingDebounce(raw any) (TypingDebounce, error) {
	if shape.IsNil(raw) {
		return TypingDebounce{Before: DefaultTypingDebounceBefore, After: DefaultTypingDebounceAfter}, nil
	}
	if n, ok := shape.Number(raw); ok {
		return TypingDebounce{Before: n, After: n}, nil
	}

	if items, ok := shape.Sequence(raw); ok && len(items) == 2 {
		before, okBefore := shape.Number(items[0])
		after, okAfter := shape.Number(items[1])
		if okBefore && okAfter {
			return TypingDebounce{Before: before, After: after}, nil
		}
	}

	return TypingDebounce{}, structuralError(
		FacetTypingDebounce,
		"",
		"malformed option typingDebounce",
		raw,
		expectedTypingDebounce,
	)
}
