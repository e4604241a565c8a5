package interpreter

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/value"
)

// evalVariableValue resolves a name, then walks any dotted field chain
// that follows it (`obj.a.b`), each step requiring a ClassInstance.
func (i *Interpreter) evalVariableValue(n *ast.VariableValue, scope *value.Closure) (value.Holder, error) {
	cur, ok := scope.Get(n.Names[0])
	if !ok {
		return value.Holder{}, fmt.Errorf("Name '%s' is not defined", n.Names[0])
	}
	for _, field := range n.Names[1:] {
		inst, ok := value.TryAs[*value.ClassInstance](cur)
		if !ok {
			return value.Holder{}, fmt.Errorf("'%s' has no field '%s'", n.Names[0], field)
		}
		next, ok := inst.Fields().Get(field)
		if !ok {
			return value.Holder{}, fmt.Errorf("object has no field '%s'", field)
		}
		cur = next
	}
	return value.Share(cur.Value()), nil
}
