// Package rules describes canonical rule invocations: a rule name, the
// callable that implements it and any trailing arguments. Callables are opaque
// to this package. Go functions carry no reliable declared identifier, so a
// callable used without an explicit name must be paired with one through
// Named or registered in a Catalog.
package rules
