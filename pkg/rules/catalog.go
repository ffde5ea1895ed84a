package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formrules/internal/shape"
)

// ErrUnknownRule is returned when a rule name has no registered callable.
var ErrUnknownRule = errors.New("rules: unknown rule")

// Catalog maps rule names to callables so configuration documents can refer
// to rules by name. The zero value is not usable; call NewCatalog.
type Catalog struct {
	mu    sync.RWMutex
	funcs map[string]any
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{funcs: make(map[string]any)}
}

// Register binds fn to name. Names are trimmed; empty names and non-callable
// values are rejected. Registering an existing name replaces it.
func (c *Catalog) Register(name string, fn any) error {
	if c == nil {
		return errors.New("rules: catalog is nil")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("rules: rule name is required")
	}
	if !shape.Callable(fn) {
		return fmt.Errorf("rules: rule %q must be a function, got %s", trimmed, shape.Describe(fn))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs[trimmed] = fn
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (c *Catalog) MustRegister(name string, fn any) {
	if err := c.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the callable registered under name paired with that name.
func (c *Catalog) Lookup(name string) (NamedFunc, bool) {
	if c == nil {
		return NamedFunc{}, false
	}
	trimmed := strings.TrimSpace(name)
	c.mu.RLock()
	fn, ok := c.funcs[trimmed]
	c.mu.RUnlock()
	if !ok {
		return NamedFunc{}, false
	}
	return Named(trimmed, fn), true
}

// Resolve is Lookup returning ErrUnknownRule for missing names.
func (c *Catalog) Resolve(name string) (NamedFunc, error) {
	named, ok := c.Lookup(name)
	if !ok {
		return NamedFunc{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return named, nil
}

// Names lists the registered rule names in ascending order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.funcs))
	for name := range c.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
