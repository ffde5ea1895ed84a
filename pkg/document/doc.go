// Package document loads validation configuration from JSON or YAML files.
// Documents refer to rules by name; a rules.Resolver (usually a rules.Catalog)
// binds each name to its callable before the result is handed to
// config.Normalize.
//
//	fields: [email, password, confirm]
//	options:
//	  asyncThrottle: 300
//	  typingDebounce: [2000, 800]
//	validations:
//	  email:
//	    - [required]
//	    - [pattern, "^.+@.+$"]
//	  passwordsMatch:
//	    rules: [[equalFields, password, confirm]]
//	    fields: [[password, confirm], [confirm]]
package document
