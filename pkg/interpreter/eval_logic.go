package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

// evalAnd short-circuits: a false lhs skips evaluating rhs entirely. The
// source's original And/Or evaluate both operands unconditionally before
// combining them; the design notes call that out as worth correcting, so
// this, like the other redesigned pieces, follows the corrected behavior.
func (i *Interpreter) evalAnd(n *ast.And, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, err := i.Execute(n.LHS, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	l, ok := value.TryAs[value.Bool](lhs)
	if !ok {
		return value.Holder{}, fmt.Errorf("And Error")
	}
	if !l.Val {
		return value.Own(value.Bool{Val: false}), nil
	}
	rhs, err := i.Execute(n.RHS, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	r, ok := value.TryAs[value.Bool](rhs)
	if !ok {
		return value.Holder{}, fmt.Errorf("And Error")
	}
	return value.Own(value.Bool{Val: r.Val}), nil
}

func (i *Interpreter) evalOr(n *ast.Or, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, err := i.Execute(n.LHS, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	l, ok := value.TryAs[value.Bool](lhs)
	if !ok {
		return value.Holder{}, fmt.Errorf("Or Error")
	}
	if l.Val {
		return value.Own(value.Bool{Val: true}), nil
	}
	rhs, err := i.Execute(n.RHS, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	r, ok := value.TryAs[value.Bool](rhs)
	if !ok {
		return value.Holder{}, fmt.Errorf("Or Error")
	}
	return value.Own(value.Bool{Val: r.Val}), nil
}

func (i *Interpreter) evalNot(n *ast.Not, scope *value.Closure, ctx *Context) (value.Holder, error) {
	h, err := i.Execute(n.Arg, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	b, ok := value.TryAs[value.Bool](h)
	if !ok {
		return value.Holder{}, fmt.Errorf("Not Error")
	}
	return value.Own(value.Bool{Val: !b.Val}), nil
}

func (i *Interpreter) evalComparison(n *ast.Comparison, scope *value.Closure, ctx *Context) (value.Holder, error) {
	lhs, rhs, err := i.evalBinaryOperands(n.BinaryOp, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	var result bool
	switch n.Op {
	case ast.CmpEq:
		result, err = i.Equal(lhs, rhs, ctx)
	case ast.CmpNotEq:
		result, err = i.NotEqual(lhs, rhs, ctx)
	case ast.CmpLess:
		result, err = i.Less(lhs, rhs, ctx)
	case ast.CmpLessOrEq:
		result, err = i.LessOrEqual(lhs, rhs, ctx)
	case ast.CmpGreater:
		result, err = i.Greater(lhs, rhs, ctx)
	case ast.CmpGreaterOrEq:
		result, err = i.GreaterOrEqual(lhs, rhs, ctx)
	default:
		return value.Holder{}, fmt.Errorf("unknown comparison operator %q", n.Op)
	}
	if err != nil {
		return value.Holder{}, err
	}
	return value.Own(value.Bool{Val: result}), nil
}
