package rules

// Resolver binds a rule name to its callable.
type Resolver interface {
	Resolve(name string) (NamedFunc, error)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(name string) (NamedFunc, error)

// Resolve delegates to the underlying function.
func (fn ResolverFunc) Resolve(name string) (NamedFunc, error) {
	return fn(name)
}

// PlaceholderResolver binds every name to a Placeholder.
var PlaceholderResolver = ResolverFunc(func(name string) (NamedFunc, error) {
	return Placeholder(name), nil
})
