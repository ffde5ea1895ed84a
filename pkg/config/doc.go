// Package config normalises terse validation configuration into the canonical
// form consumed by the validation engine. Each facet (rule lists, per
// validation field visibility, the form field list, typing debounce) accepts a
// handful of shorthand shapes which are expanded deterministically. Anything
// else fails with a *ConfigError; defaults apply to absent values only, never
// to malformed ones.
//
// Normalisation is pure: it never calls rule functions or the onValidation
// callback and holds no state between calls.
package config
