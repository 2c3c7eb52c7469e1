/*
File    : gomix-lite/eval/conditional.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/value"
)

func (ev *Evaluator) evalIf(n *ast.IfConditional) (value.Value, error) {
	cond, err := ev.Eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return ev.evalBlock(n.Then)
	}
	if n.Else != nil {
		return ev.evalBlock(n.Else)
	}
	return value.Empty{}, nil
}

func (ev *Evaluator) evalReturn(n *ast.Return) (value.Value, error) {
	if !ev.Ctx.IsInFunction() {
		return nil, langerr.Newf("Attempting to return outside a function block")
	}
	v, err := ev.Eval(n.Expression)
	if err != nil {
		return nil, err
	}
	ev.Ctx.SetReturnValue(v)
	return v, nil
}
