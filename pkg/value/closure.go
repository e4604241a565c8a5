package value

// Closure is the flat variable scope shared by a whole activation: the
// module's top level, or a single method call. Unlike the teacher's
// Environment, Closure has no parent chain — the source language has no
// nested block scoping, so `if`/compound statements run in the very same
// Closure as their enclosing method body, and an assignment inside an
// `if` is visible after it, the way a Python assignment escapes its `if`.
type Closure struct {
	vars map[string]Holder
}

// NewClosure returns an empty scope.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Holder)}
}

// Get looks up a name in this scope only.
func (c *Closure) Get(name string) (Holder, bool) {
	h, ok := c.vars[name]
	return h, ok
}

// Set binds (or rebinds) a name in this scope.
func (c *Closure) Set(name string, h Holder) {
	c.vars[name] = h
}

// Keys returns the bound names, for diagnostics and tests.
func (c *Closure) Keys() []string {
	keys := make([]string, 0, len(c.vars))
	for k := range c.vars {
		keys = append(keys, k)
	}
	return keys
}
