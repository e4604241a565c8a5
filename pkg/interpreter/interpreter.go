// Package interpreter walks the AST produced by pkg/parser and evaluates
// it against pkg/value's runtime model. Every node kind is handled by a
// case in Execute's type switch rather than a virtual method on the node
// itself — the node set is closed and known up front, so an exhaustive
// switch documents every case in one place and keeps pkg/ast free of any
// dependency on this package.
package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

// Interpreter holds no per-run state of its own; it exists so evaluation
// can grow instance-level configuration later without changing every
// call site, the same way the teacher keeps a long-lived *Interpreter
// even though many of its methods are effectively stateless today.
type Interpreter struct{}

func New() *Interpreter { return &Interpreter{} }

// Execute evaluates a single node and returns the resulting holder. An
// in-flight non-local return is represented by a returnSignal error and
// is only ever legitimately consumed by evalMethodBody.
func (i *Interpreter) Execute(node ast.Node, scope *value.Closure, ctx *Context) (value.Holder, error) {
	switch n := node.(type) {
	case *ast.NumericConst:
		return value.Own(value.Number{Val: n.Value}), nil
	case *ast.StringConst:
		return value.Own(value.String{Val: n.Value}), nil
	case *ast.BoolConst:
		return value.Own(value.Bool{Val: n.Value}), nil
	case *ast.NoneConst:
		return value.Empty(), nil
	case *ast.VariableValue:
		return i.evalVariableValue(n, scope)
	case *ast.Assignment:
		return i.evalAssignment(n, scope, ctx)
	case *ast.FieldAssignment:
		return i.evalFieldAssignment(n, scope, ctx)
	case *ast.Print:
		return i.evalPrint(n, scope, ctx)
	case *ast.Stringify:
		return i.evalStringify(n, scope, ctx)
	case *ast.Add:
		return i.evalAdd(n, scope, ctx)
	case *ast.Sub:
		return i.evalSub(n, scope, ctx)
	case *ast.Mult:
		return i.evalMult(n, scope, ctx)
	case *ast.Div:
		return i.evalDiv(n, scope, ctx)
	case *ast.And:
		return i.evalAnd(n, scope, ctx)
	case *ast.Or:
		return i.evalOr(n, scope, ctx)
	case *ast.Not:
		return i.evalNot(n, scope, ctx)
	case *ast.Comparison:
		return i.evalComparison(n, scope, ctx)
	case *ast.IfElse:
		return i.evalIfElse(n, scope, ctx)
	case *ast.Compound:
		return i.evalCompound(n, scope, ctx)
	case *ast.MethodBody:
		return i.evalMethodBody(n, scope, ctx)
	case *ast.Return:
		return i.evalReturn(n, scope, ctx)
	case *ast.ClassDef:
		return i.evalClassDef(n, scope)
	case *ast.NewInstance:
		return i.evalNewInstance(n, scope, ctx)
	case *ast.MethodCall:
		return i.evalMethodCall(n, scope, ctx)
	default:
		return value.Holder{}, fmt.Errorf("execute: unsupported node %s", node.NodeType())
	}
}

// Run evaluates a top-level program: a flat sequence of statements
// sharing one module-level Closure. A return reaching this far (outside
// any method body) is a program error, not a valid unwind target.
func (i *Interpreter) Run(program []ast.Node, scope *value.Closure, ctx *Context) error {
	for _, stmt := range program {
		if _, err := i.Execute(stmt, scope, ctx); err != nil {
			if _, ok := err.(returnSignal); ok {
				return fmt.Errorf("return used outside of a method body")
			}
			return err
		}
	}
	return nil
}
