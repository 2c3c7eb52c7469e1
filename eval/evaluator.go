/*
File    : gomix-lite/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks an *ast.Program and produces value.Value results,
// threading an *execctx.Context through every recursive call to track
// scope, the call stack, and function-return activation state.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/builtins"
	"github.com/akashmaji946/gomix-lite/execctx"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/value"
)

// Evaluator holds the state for evaluating a GoMix-Lite program: the
// execution context (scope arena, call stack, return-value tracking) and
// the native function registry it dispatches unresolved calls to.
type Evaluator struct {
	Ctx      *execctx.Context
	Builtins *builtins.Registry
	Writer   io.Writer
	Reader   *bufio.Reader
}

// NewEvaluator builds an Evaluator with a fresh execution context,
// writing to os.Stdout and reading from os.Stdin by default.
func NewEvaluator() *Evaluator {
	writer := io.Writer(os.Stdout)
	reader := bufio.NewReader(os.Stdin)
	return &Evaluator{
		Ctx:      execctx.New(),
		Builtins: builtins.NewRegistry(writer, reader),
		Writer:   writer,
		Reader:   reader,
	}
}

// Run evaluates a full program, top to bottom, as a block in a fresh
// child of the Evaluator's current scope; its top-level bindings are
// dropped when Run returns. It returns the value of the last top-level
// statement evaluated, or value.Empty{} if the program had none.
func (ev *Evaluator) Run(program *ast.Program) (value.Value, error) {
	return ev.evalBlock(program.Body)
}

// Eval dispatches a single AST node to its evaluation rule. This is the
// heart of the tree-walking interpreter: a type switch over every
// concrete ast.Expression variant.
func (ev *Evaluator) Eval(node ast.Expression) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return ev.evalLiteral(n), nil
	case *ast.Identifier:
		return ev.evalIdentifier(n)
	case *ast.UnaryOperation:
		return ev.evalUnary(n)
	case *ast.BinaryOperation:
		return ev.evalBinary(n)
	case *ast.Declaration:
		return ev.evalDeclaration(n)
	case *ast.FunctionDeclaration:
		return ev.evalFunctionDeclaration(n)
	case *ast.FunctionCall:
		return ev.evalFunctionCall(n)
	case *ast.IfConditional:
		return ev.evalIf(n)
	case *ast.Return:
		return ev.evalReturn(n)
	case *ast.Statement:
		return ev.Eval(n.Expression)
	default:
		return nil, langerr.Newf("cannot evaluate node of type %T", node)
	}
}

func (ev *Evaluator) evalLiteral(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.BooleanLiteral:
		return value.BoolOf(n.BoolValue)
	case ast.IntegerLiteral:
		return value.Integer{Value: n.IntValue}
	case ast.FloatLiteral:
		return value.Float{Value: n.FloatValue}
	case ast.StringLiteral:
		return value.String{Value: n.StrValue}
	default:
		return value.Empty{}
	}
}

func (ev *Evaluator) evalIdentifier(n *ast.Identifier) (value.Value, error) {
	v, ok := ev.Ctx.Arena().LookupVariable(ev.Ctx.CurrentScope(), n.Name)
	if !ok {
		return nil, langerr.Newf("Undefined variable %s", n.Name)
	}
	return v, nil
}

func (ev *Evaluator) evalDeclaration(n *ast.Declaration) (value.Value, error) {
	v, err := ev.Eval(n.Expression)
	if err != nil {
		return nil, err
	}
	ev.Ctx.Arena().DefineVariable(ev.Ctx.CurrentScope(), n.Identifier, v)
	return value.Empty{}, nil
}

func (ev *Evaluator) evalFunctionDeclaration(n *ast.FunctionDeclaration) (value.Value, error) {
	ev.Ctx.Arena().DefineFunction(ev.Ctx.CurrentScope(), n)
	return value.Empty{}, nil
}

// evalBlock evaluates a sequence of statements in a fresh child scope,
// stopping early if a `return` inside it has set a return value for the
// enclosing function. It returns the value of the last statement
// evaluated.
func (ev *Evaluator) evalBlock(body ast.Block) (value.Value, error) {
	previous := ev.Ctx.EnterNewScope()
	defer ev.Ctx.RestoreScope(previous)

	result := value.Value(value.Empty{})
	for _, stmt := range body {
		v, err := ev.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = v
		if _, isReturn := stmt.(*ast.Return); isReturn {
			break
		}
		if ev.returnedInCurrentFunction() {
			break
		}
	}
	return result, nil
}

// returnedInCurrentFunction reports whether the innermost function
// activation already has a return value set, which means any remaining
// statements in the current block must not run.
func (ev *Evaluator) returnedInCurrentFunction() bool {
	if !ev.Ctx.IsInFunction() {
		return false
	}
	_, set := ev.Ctx.PeekReturnValue()
	return set
}
