package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

func (i *Interpreter) evalAssignment(n *ast.Assignment, scope *value.Closure, ctx *Context) (value.Holder, error) {
	v, err := i.Execute(n.Value, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	scope.Set(n.Name, v)
	return v, nil
}

func (i *Interpreter) evalFieldAssignment(n *ast.FieldAssignment, scope *value.Closure, ctx *Context) (value.Holder, error) {
	objHolder, err := i.Execute(n.Object, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	inst, ok := value.TryAs[*value.ClassInstance](objHolder)
	if !ok {
		return value.Holder{}, fmt.Errorf("field assignment target is not an object")
	}
	v, err := i.Execute(n.Value, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	inst.Fields().Set(n.Field, v)
	return v, nil
}

// evalCompound runs each statement in sequence on the same Closure; there
// is no child scope, so assignments made inside persist after the block.
func (i *Interpreter) evalCompound(n *ast.Compound, scope *value.Closure, ctx *Context) (value.Holder, error) {
	for _, stmt := range n.Statements {
		if _, err := i.Execute(stmt, scope, ctx); err != nil {
			return value.Holder{}, err
		}
	}
	return value.Empty(), nil
}

func (i *Interpreter) evalIfElse(n *ast.IfElse, scope *value.Closure, ctx *Context) (value.Holder, error) {
	condHolder, err := i.Execute(n.Cond, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	cond, ok := value.TryAs[value.Bool](condHolder)
	if !ok {
		return value.Holder{}, fmt.Errorf("if condition must be a boolean")
	}
	if cond.Val {
		return i.Execute(n.Then, scope, ctx)
	}
	if n.Else != nil {
		return i.Execute(n.Else, scope, ctx)
	}
	return value.Empty(), nil
}

// evalMethodBody is the single legitimate catch point for a returnSignal
// raised anywhere inside it.
func (i *Interpreter) evalMethodBody(n *ast.MethodBody, scope *value.Closure, ctx *Context) (value.Holder, error) {
	_, err := i.Execute(n.Body, scope, ctx)
	if err != nil {
		if rs, ok := err.(returnSignal); ok {
			return rs.value, nil
		}
		return value.Holder{}, err
	}
	return value.Empty(), nil
}

func (i *Interpreter) evalReturn(n *ast.Return, scope *value.Closure, ctx *Context) (value.Holder, error) {
	v, err := i.Execute(n.Value, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	return value.Holder{}, returnSignal{value: v}
}
