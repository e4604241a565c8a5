package value

import (
	"fmt"
	"io"
)

// WriteCanonical renders a scalar or Class value the way the language's
// built-in print/stringify machinery does, with no method dispatch
// involved. ClassInstance has no canonical rendering here: printing one
// depends on calling its __str__ method, which requires the evaluator, so
// that case is handled one layer up, in the interpreter package.
func WriteCanonical(w io.Writer, v Value) {
	switch t := v.(type) {
	case Number:
		fmt.Fprintf(w, "%d", t.Val)
	case String:
		fmt.Fprint(w, t.Val)
	case Bool:
		if t.Val {
			fmt.Fprint(w, "True")
		} else {
			fmt.Fprint(w, "False")
		}
	case *Class:
		fmt.Fprintf(w, "Class %s", t.name)
	}
}
