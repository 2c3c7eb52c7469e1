/*
File    : gomix-lite/eval/binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/value"
)

func (ev *Evaluator) evalUnary(n *ast.UnaryOperation) (value.Value, error) {
	operand, err := ev.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case ast.Not:
		return value.BoolOf(!value.Truthy(operand)), nil
	case ast.Neg:
		return wrapErr(value.Mul(operand, value.Float{Value: -1.0}))
	default:
		return nil, langerr.Newf("unknown unary operator")
	}
}

func (ev *Evaluator) evalBinary(n *ast.BinaryOperation) (value.Value, error) {
	left, err := ev.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case ast.Add:
		return wrapErr(value.Add(left, right))
	case ast.Sub:
		return wrapErr(value.Sub(left, right))
	case ast.Mul:
		return wrapErr(value.Mul(left, right))
	case ast.Div:
		return wrapErr(value.Div(left, right))
	case ast.Pow:
		return wrapErr(value.Pow(left, right))
	case ast.Eq:
		return value.BoolOf(value.Equal(left, right)), nil
	case ast.Neq:
		return value.BoolOf(!value.Equal(left, right)), nil
	case ast.Lt:
		lt, ok := value.Compare(left, right)
		return value.BoolOf(ok && lt), nil
	case ast.Lte:
		lt, ok := value.Compare(left, right)
		eq := value.Equal(left, right)
		return value.BoolOf(ok && (lt || eq)), nil
	case ast.Gt:
		gt, ok := value.Compare(right, left)
		return value.BoolOf(ok && gt), nil
	case ast.Gte:
		gt, ok := value.Compare(right, left)
		eq := value.Equal(left, right)
		return value.BoolOf(ok && (gt || eq)), nil
	default:
		return nil, langerr.Newf("unknown binary operator")
	}
}

// wrapErr adapts a (value.Value, error) pair from the value package's
// plain errors into the evaluator's *langerr.RuntimeError convention.
func wrapErr(v value.Value, err error) (value.Value, error) {
	if err != nil {
		return nil, langerr.Newf("%s", err.Error())
	}
	return v, nil
}
