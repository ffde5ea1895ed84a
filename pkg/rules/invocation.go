package rules

// Invocation is a normalised rule entry. It is the struct form of the tuple
// [name, func, args...].
type Invocation struct {
	Name string
	Func any
	Args []any
}

// Tuple returns the invocation as [name, func, args...].
func (i Invocation) Tuple() []any {
	out := make([]any, 0, len(i.Args)+2)
	out = append(out, i.Name, i.Func)
	return append(out, i.Args...)
}

// Summary is the callable-free view of an invocation used for snapshots and
// CLI output.
type Summary struct {
	Name string `json:"name" yaml:"name"`
	Args []any  `json:"args,omitempty" yaml:"args,omitempty"`
}

// Summary drops the callable and copies the arguments.
func (i Invocation) Summary() Summary {
	return Summary{
		Name: i.Name,
		Args: append([]any(nil), i.Args...),
	}
}
