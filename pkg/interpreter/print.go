package interpreter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

// evalPrint handles both forms: the bare-name form looks the name up
// directly in scope (it does not go through evalVariableValue, so it
// never follows a dotted field chain), and the argument-list form
// evaluates each argument, space-separating them, with an empty holder
// rendered as "None". Zero arguments writes a bare newline.
func (i *Interpreter) evalPrint(n *ast.Print, scope *value.Closure, ctx *Context) (value.Holder, error) {
	if n.Name != "" {
		h, ok := scope.Get(n.Name)
		if !ok {
			return value.Holder{}, fmt.Errorf("Name '%s' is not defined", n.Name)
		}
		if err := i.writeHolder(ctx.Output, h, ctx); err != nil {
			return value.Holder{}, err
		}
		fmt.Fprintln(ctx.Output)
		return value.Empty(), nil
	}
	for idx, arg := range n.Args {
		h, err := i.Execute(arg, scope, ctx)
		if err != nil {
			return value.Holder{}, err
		}
		if err := i.writeHolder(ctx.Output, h, ctx); err != nil {
			return value.Holder{}, err
		}
		if idx < len(n.Args)-1 {
			fmt.Fprint(ctx.Output, " ")
		}
	}
	fmt.Fprintln(ctx.Output)
	return value.Empty(), nil
}

// writeHolder is the print primitive every Value kind but ClassInstance
// renders canonically via value.WriteCanonical; a ClassInstance dispatches
// to __str__ if it defines one, and otherwise produces no output at all.
func (i *Interpreter) writeHolder(w io.Writer, h value.Holder, ctx *Context) error {
	if h.IsEmpty() {
		fmt.Fprint(w, "None")
		return nil
	}
	if inst, ok := value.TryAs[*value.ClassInstance](h); ok {
		if inst.HasMethod("__str__", 0) {
			res, err := i.CallMethod(inst, "__str__", nil, ctx)
			if err != nil {
				return err
			}
			return i.writeHolder(w, res, ctx)
		}
		return nil
	}
	value.WriteCanonical(w, h.Value())
	return nil
}

// evalStringify renders its argument the same way Print would and wraps
// the result in a String. The source's original has a defect here: when
// nothing gets written (a ClassInstance without __str__) it falls back to
// printing the value's raw pointer address into the buffer. The corrected
// behavior, per the redesign notes, is to produce "None" in that case
// instead.
func (i *Interpreter) evalStringify(n *ast.Stringify, scope *value.Closure, ctx *Context) (value.Holder, error) {
	h, err := i.Execute(n.Arg, scope, ctx)
	if err != nil {
		return value.Holder{}, err
	}
	var buf bytes.Buffer
	if err := i.writeHolder(&buf, h, ctx); err != nil {
		return value.Holder{}, err
	}
	if buf.Len() == 0 {
		buf.WriteString("None")
	}
	return value.Own(value.String{Val: buf.String()}), nil
}
