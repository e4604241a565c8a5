package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/value"
)

// sameScalarEqual reports equality when both holders carry the same
// scalar kind, and whether that comparison applied at all.
func sameScalarEqual(lhs, rhs value.Value) (bool, bool) {
	switch l := lhs.(type) {
	case value.Number:
		if r, ok := rhs.(value.Number); ok {
			return l.Val == r.Val, true
		}
	case value.String:
		if r, ok := rhs.(value.String); ok {
			return l.Val == r.Val, true
		}
	case value.Bool:
		if r, ok := rhs.(value.Bool); ok {
			return l.Val == r.Val, true
		}
	}
	return false, false
}

// Equal: same-scalar-kind comparison, then both-empty, then a __eq__
// method dispatch, then reference identity, and finally an error.
func (i *Interpreter) Equal(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	if !lhs.IsEmpty() && !rhs.IsEmpty() {
		if eq, applied := sameScalarEqual(lhs.Value(), rhs.Value()); applied {
			return eq, nil
		}
	}
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	if inst, ok := value.TryAs[*value.ClassInstance](lhs); ok && inst.HasMethod("__eq__", 1) {
		res, err := i.CallMethod(inst, "__eq__", []value.Holder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return res.IsTruthy(), nil
	}
	if !lhs.IsEmpty() && !rhs.IsEmpty() && lhs.Value() == rhs.Value() {
		return true, nil
	}
	return false, fmt.Errorf("Cannot compare objects for equality")
}

// Less: same-scalar-kind comparison, then a __lt__ method dispatch,
// then an error. Unlike Equal there is no empty/identity fallback.
func (i *Interpreter) Less(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	if !lhs.IsEmpty() && !rhs.IsEmpty() {
		switch l := lhs.Value().(type) {
		case value.Number:
			if r, ok := rhs.Value().(value.Number); ok {
				return l.Val < r.Val, nil
			}
		case value.String:
			if r, ok := rhs.Value().(value.String); ok {
				return l.Val < r.Val, nil
			}
		case value.Bool:
			if r, ok := rhs.Value().(value.Bool); ok {
				return !l.Val && r.Val, nil
			}
		}
	}
	if inst, ok := value.TryAs[*value.ClassInstance](lhs); ok && inst.HasMethod("__lt__", 1) {
		res, err := i.CallMethod(inst, "__lt__", []value.Holder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return res.IsTruthy(), nil
	}
	return false, fmt.Errorf("Cannot compare objects for less")
}

// NotEqual is the negation of Equal, propagating any error unchanged.
func (i *Interpreter) NotEqual(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	eq, err := i.Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater is !Less && !Equal; either call's error is reported as one
// "greater" comparison error, matching the original's exception wrapping.
func (i *Interpreter) Greater(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	less, err := i.Less(lhs, rhs, ctx)
	if err != nil {
		return false, fmt.Errorf("Cannot compare objects for greater")
	}
	if less {
		return false, nil
	}
	eq, err := i.Equal(lhs, rhs, ctx)
	if err != nil {
		return false, fmt.Errorf("Cannot compare objects for greater")
	}
	return !eq, nil
}

// LessOrEqual short-circuits true on Less, otherwise defers to Equal,
// propagating whichever call's error.
func (i *Interpreter) LessOrEqual(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	less, err := i.Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return i.Equal(lhs, rhs, ctx)
}

// GreaterOrEqual is exactly !Less — it does not also consult Equal.
func (i *Interpreter) GreaterOrEqual(lhs, rhs value.Holder, ctx *Context) (bool, error) {
	less, err := i.Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
