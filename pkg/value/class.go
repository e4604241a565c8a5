package value

import "github.com/oolang/interpreter/pkg/ast"

// Method is a single method definition bound into a Class: its formal
// parameter names and the body to run when it is invoked. Body is
// typically an *ast.MethodBody node; it is kept as the ast.Node interface
// so this package does not need to know the concrete node types, the way
// the teacher's FunctionValue keeps its Declaration as a bare ast.Node.
type Method struct {
	Name   string
	Params []string
	Body   ast.Node
}

// Class is a single-inheritance class: its own methods plus an optional
// parent to fall back to.
type Class struct {
	name    string
	methods map[string]*Method
	parent  *Class
}

// NewClass builds a class from its own methods and optional parent.
// Later methods with a duplicate name win, matching plain map-literal
// overwrite semantics.
func NewClass(name string, methods []*Method, parent *Class) *Class {
	m := make(map[string]*Method, len(methods))
	for _, meth := range methods {
		m[meth.Name] = meth
	}
	return &Class{name: name, methods: m, parent: parent}
}

func (*Class) Kind() Kind { return KindClass }

func (c *Class) Name() string { return c.name }

func (c *Class) Parent() *Class { return c.parent }

// Method walks the inheritance chain, own methods first, looking for a
// method by name. It does not check arity — callers combine this with a
// parameter-count check (see ClassInstance.HasMethod) before invoking.
func (c *Class) Method(name string) (*Method, bool) {
	if c == nil {
		return nil, false
	}
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	return c.parent.Method(name)
}

// ClassInstance is an object: a class pointer plus its own field storage.
// Fields hold a binding named "self" pointing back at the instance itself,
// an intentional cycle Go's garbage collector handles without the
// non-owning back-reference trick a manually reference-counted language
// needs.
type ClassInstance struct {
	class  *Class
	fields *Closure
}

// NewClassInstance allocates a fresh instance and binds "self" before any
// constructor runs, so a method invoked during construction can already
// see itself.
func NewClassInstance(class *Class) *ClassInstance {
	inst := &ClassInstance{class: class, fields: NewClosure()}
	inst.fields.Set("self", Share(inst))
	return inst
}

func (*ClassInstance) Kind() Kind { return KindClassInstance }

func (ci *ClassInstance) Class() *Class { return ci.class }

func (ci *ClassInstance) Fields() *Closure { return ci.fields }

// HasMethod is the only sanctioned way to probe whether a call would
// succeed: it checks both the name and the exact parameter count.
func (ci *ClassInstance) HasMethod(name string, arity int) bool {
	m, ok := ci.class.Method(name)
	return ok && len(m.Params) == arity
}
