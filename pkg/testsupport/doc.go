// Package testsupport holds fixture and golden helpers shared by package
// tests: placeholder rule catalogs, go-cmp options for canonical configs, and
// JSON summary goldens refreshed with UPDATE_GOLDENS=1.
package testsupport
