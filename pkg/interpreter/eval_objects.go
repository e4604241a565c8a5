package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

// evalClassDef resolves the optional parent by name, builds the
// value.Class from the declaration, binds it in scope under its own
// name, and returns the same holder — matching the source's
// ClassDefinition, which re-shares an already-built class into the
// closure under its name.
func (i *Interpreter) evalClassDef(n *ast.ClassDef, scope *value.Closure) (value.Holder, error) {
	var parent *value.Class
	if n.Parent != "" {
		h, ok := scope.Get(n.Parent)
		if !ok {
			return value.Holder{}, fmt.Errorf("Name '%s' is not defined", n.Parent)
		}
		p, ok := value.TryAs[*value.Class](h)
		if !ok {
			return value.Holder{}, fmt.Errorf("'%s' is not a class", n.Parent)
		}
		parent = p
	}
	methods := make([]*value.Method, 0, len(n.Methods))
	for _, m := range n.Methods {
		methods = append(methods, &value.Method{Name: m.Name, Params: m.Params, Body: m.Body})
	}
	cls := value.NewClass(n.Name, methods, parent)
	h := value.Share(cls)
	scope.Set(n.Name, h)
	return h, nil
}

// evalNewInstance builds a fresh ClassInstance and, if the class defines
// a matching-arity __init__, invokes it. A class with no matching
// __init__ leaves every field but "self" unbound — not an error.
func (i *Interpreter) evalNewInstance(n *ast.NewInstance, scope *value.Closure, ctx *Context) (value.Holder, error) {
	classHolder, err := i.Execute(n.ClassExpr, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	cls, ok := value.TryAs[*value.Class](classHolder)
	if !ok {
		return value.Holder{}, fmt.Errorf("'new' target is not a class")
	}
	args, err := i.evalArgs(n.Args, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	inst := value.NewClassInstance(cls)
	if inst.HasMethod("__init__", len(args)) {
		if _, err := i.CallMethod(inst, "__init__", args, ctx); err != nil {
			return value.Holder{}, err
		}
	}
	return value.Share(inst), nil
}

func (i *Interpreter) evalMethodCall(n *ast.MethodCall, scope *value.Closure, ctx *Context) (value.Holder, error) {
	objHolder, err := i.Execute(n.Object, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	inst, ok := value.TryAs[*value.ClassInstance](objHolder)
	if !ok {
		return value.Holder{}, fmt.Errorf("method call target is not an object")
	}
	args, err := i.evalArgs(n.Args, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	return i.CallMethod(inst, n.Method, args, ctx)
}

func (i *Interpreter) evalArgs(nodes []ast.Node, scope *value.Closure, ctx *Context) ([]value.Holder, error) {
	args := make([]value.Holder, 0, len(nodes))
	for _, a := range nodes {
		v, err := i.Execute(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// CallMethod implements the method invocation protocol: look up the
// method by name and exact arity, build a fresh frame binding "self" and
// the parameters, and run its body. A missing or arity-mismatched method
// is "not implemented" — HasMethod is the only sanctioned way to check
// first.
func (i *Interpreter) CallMethod(inst *value.ClassInstance, method string, args []value.Holder, ctx *Context) (value.Holder, error) {
	m, ok := inst.Class().Method(method)
	if !ok || len(m.Params) != len(args) {
		return value.Holder{}, fmt.Errorf("not implemented")
	}
	frame := value.NewClosure()
	frame.Set("self", value.Share(inst))
	for idx, param := range m.Params {
		frame.Set(param, args[idx])
	}
	return i.Execute(m.Body, frame, ctx)
}
