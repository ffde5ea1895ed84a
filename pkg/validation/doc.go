// Package validation checks configuration documents for builder previews and
// lint tooling. Structural errors are reported as issues carrying a JSON
// pointer into the document instead of being returned as Go errors.
package validation
