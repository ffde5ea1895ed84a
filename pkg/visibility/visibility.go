// Package visibility resolves when a validation result may be shown. A result
// is hidden while any DependsOn field is being edited and stays hidden until
// every NeedTouch field has been interacted with.
package visibility

import "github.com/goliatone/go-formrules/internal/shape"

// ExpectedShape describes the accepted raw forms for error messages.
const ExpectedShape = "[2][]string ([dependsOn, needTouch]), []string, string or nil"

// FieldVisibility is the canonical [dependsOn, needTouch] pair. Both slices are
// always non-nil.
type FieldVisibility struct {
	DependsOn []string `json:"dependsOn" yaml:"dependsOn"`
	NeedTouch []string `json:"needTouch" yaml:"needTouch"`
}

// Pair returns the visibility as its tuple form.
func (v FieldVisibility) Pair() [2][]string {
	return [2][]string{v.DependsOn, v.NeedTouch}
}

// Clone returns a deep copy.
func (v FieldVisibility) Clone() FieldVisibility {
	return FieldVisibility{
		DependsOn: append([]string{}, v.DependsOn...),
		NeedTouch: append([]string{}, v.NeedTouch...),
	}
}

// classifier maps one accepted raw shape onto the canonical pair. matched is
// false when raw is not the shape the classifier handles.
type classifier func(validation string, raw any) (FieldVisibility, bool)

// classifiers run in precedence order; the first match wins.
var classifiers = []classifier{
	fromNil,
	fromString,
	fromList,
	fromPair,
}

// Resolve classifies raw for the named validation. ok is false when raw
// matches none of the accepted shapes.
func Resolve(validation string, raw any) (FieldVisibility, bool) {
	for _, classify := range classifiers {
		if resolved, matched := classify(validation, raw); matched {
			return resolved, true
		}
	}
	return FieldVisibility{}, false
}

// A validation without explicit fields depends on the field of the same name.
func fromNil(validation string, raw any) (FieldVisibility, bool) {
	if !shape.IsNil(raw) {
		return FieldVisibility{}, false
	}
	return duplicate([]string{validation}), true
}

func fromString(_ string, raw any) (FieldVisibility, bool) {
	s, ok := shape.String(raw)
	if !ok {
		return FieldVisibility{}, false
	}
	return duplicate([]string{s}), true
}

// The same fields both hide and gate the result. An empty list is accepted
// and yields a validation that is always visible.
func fromList(_ string, raw any) (FieldVisibility, bool) {
	fields, ok := shape.Strings(raw)
	if !ok {
		return FieldVisibility{}, false
	}
	return duplicate(fields), true
}

func fromPair(_ string, raw any) (FieldVisibility, bool) {
	items, ok := shape.Sequence(raw)
	if !ok || len(items) != 2 {
		return FieldVisibility{}, false
	}
	dependsOn, ok := shape.Strings(items[0])
	if !ok {
		return FieldVisibility{}, false
	}
	needTouch, ok := shape.Strings(items[1])
	if !ok {
		return FieldVisibility{}, false
	}
	return FieldVisibility{DependsOn: dependsOn, NeedTouch: needTouch}, true
}

func duplicate(fields []string) FieldVisibility {
	return FieldVisibility{
		DependsOn: append([]string{}, fields...),
		NeedTouch: append([]string{}, fields...),
	}
}
