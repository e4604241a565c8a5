package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

func (i *Interpreter) evalAdd(n *ast.Add, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, rhs, err := i.evalBinaryOperands(n.BinaryOp, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	if l, ok := value.TryAs[value.Number](lhs); ok {
		if r, ok := value.TryAs[value.Number](rhs); ok {
			return value.Own(value.Number{Val: l.Val + r.Val}), nil
		}
	}
	if l, ok := value.TryAs[value.String](lhs); ok {
		if r, ok := value.TryAs[value.String](rhs); ok {
			return value.Own(value.String{Val: l.Val + r.Val}), nil
		}
	}
	if inst, ok := value.TryAs[*value.ClassInstance](lhs); ok && inst.HasMethod("__add__", 1) {
		return i.CallMethod(inst, "__add__", []value.Holder{rhs}, ctx)
	}
	return value.Holder{}, fmt.Errorf("Add Error")
}

func (i *Interpreter) evalSub(n *ast.Sub, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, rhs, err := i.evalBinaryOperands(n.BinaryOp, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	if l, ok := value.TryAs[value.Number](lhs); ok {
		if r, ok := value.TryAs[value.Number](rhs); ok {
			return value.Own(value.Number{Val: l.Val - r.Val}), nil
		}
	}
	return value.Holder{}, fmt.Errorf("Sub Error")
}

func (i *Interpreter) evalMult(n *ast.Mult, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, rhs, err := i.evalBinaryOperands(n.BinaryOp, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	if l, ok := value.TryAs[value.Number](lhs); ok {
		if r, ok := value.TryAs[value.Number](rhs); ok {
			return value.Own(value.Number{Val: l.Val * r.Val}), nil
		}
	}
	return value.Holder{}, fmt.Errorf("Mult Error")
}

func (i *Interpreter) evalDiv(n *ast.Div, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, rhs, err := i.evalBinaryOperands(n.BinaryOp, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	l, lok := value.TryAs[value.Number](lhs)
	r, rok := value.TryAs[value.Number](rhs)
	if lok && rok {
		if r.Val == 0 {
			return value.Holder{}, fmt.Errorf("Div by 0")
		}
		return value.Own(value.Number{Val: l.Val / r.Val}), nil
	}
	return value.Holder{}, fmt.Errorf("Div Error")
}

func (i *Interpreter) evalBinaryOperands(n ast.BinaryOp, scope *value.Closure, ctx *Context) (value.Holder, value.Holder, error) {
	lhs, err := i.Execute(n.LHS, scope, ctx)
	if err != nil {
		return value.Holder{}, value.Holder{}, err
	}
	rhs, err := i.Execute(n.RHS, scope, ctx)
	if err != nil {
		return value.Holder{}, value.Holder{}, err
	}
	return lhs, rhs, nil
}
