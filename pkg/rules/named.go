package rules

import "github.com/goliatone/go-formrules/internal/shape"

// NamedRule is implemented by callables that know their own rule name. A
// NamedRule in the first position of a rule tuple expands to
// [RuleName(), RuleFunc(), args...].
type NamedRule interface {
	RuleName() string
	RuleFunc() any
}

// NamedFunc pairs a callable with the identifier it is registered under.
type NamedFunc struct {
	Name string
	Func any
}

// Named pairs fn with name.
func Named(name string, fn any) NamedFunc {
	return NamedFunc{Name: name, Func: fn}
}

// RuleName implements NamedRule.
func (n NamedFunc) RuleName() string { return n.Name }

// RuleFunc implements NamedRule.
func (n NamedFunc) RuleFunc() any { return n.Func }

// Callable unwraps v into the function it carries. Plain functions are
// returned as is; NamedRule values yield their inner function. The boolean is
// false when no callable is present.
func Callable(v any) (any, bool) {
	if named, ok := v.(NamedRule); ok {
		fn := named.RuleFunc()
		return fn, shape.Callable(fn)
	}
	if shape.Callable(v) {
		return v, true
	}
	return nil, false
}

// Placeholder returns a NamedFunc whose callable accepts any arguments and
// does nothing. Lint tooling binds unknown implementations to placeholders so
// document structure can be checked without the real rule code.
func Placeholder(name string) NamedFunc {
	return Named(name, func(...any) error { return nil })
}
