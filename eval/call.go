/*
File    : gomix-lite/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/value"
)

// evalFunctionCall resolves n.Name against the user-defined function
// table first, then the native registry, and errors if neither has it.
// Arguments are evaluated left to right before the callee is entered.
func (ev *Evaluator) evalFunctionCall(n *ast.FunctionCall) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := ev.Eval(arg)
		if err != nil {
			return nil, attachFrame(err, n.Name, n.SourceLine)
		}
		args[i] = v
	}

	if decl, ok := ev.Ctx.Arena().LookupFunction(ev.Ctx.CurrentScope(), n.Name); ok {
		return ev.callUserFunction(decl, args, n)
	}
	if fn, ok := ev.Builtins.Lookup(n.Name); ok {
		result, err := fn(args)
		if err != nil {
			return nil, attachFrame(err, n.Name, n.SourceLine)
		}
		return result, nil
	}
	return nil, langerr.Newf("Method not found: %s", n.Name)
}

// callUserFunction binds args to decl's parameters in a fresh scope, runs
// its body, and returns the return value it set (or value.Integer{0} if the
// body completed without a `return`).
func (ev *Evaluator) callUserFunction(decl *ast.FunctionDeclaration, args []value.Value, call *ast.FunctionCall) (value.Value, error) {
	if len(args) != len(decl.ParameterNames) {
		return nil, langerr.Newf("Function '%s' expected %d arguments, got %d", decl.Name, len(decl.ParameterNames), len(args))
	}

	ev.Ctx.PushFrame(langerr.Frame{Function: decl.Name, Line: call.SourceLine})
	defer ev.Ctx.PopFrame()

	previous := ev.Ctx.EnterNewScope()
	for i, param := range decl.ParameterNames {
		ev.Ctx.Arena().DefineVariable(ev.Ctx.CurrentScope(), param, args[i])
	}

	ev.Ctx.EnterFunction()
	_, err := ev.evalBlockNoScope(decl.Body)
	ev.Ctx.RestoreScope(previous)
	returned, set := ev.Ctx.ExitFunction()
	if err != nil {
		return nil, attachFrame(err, decl.Name, call.SourceLine)
	}
	if set {
		return returned, nil
	}
	return value.Integer{Value: 0}, nil
}

// evalBlockNoScope evaluates body directly in the current scope, rather
// than allocating a fresh child, since callUserFunction already pushed
// the function's parameter scope.
func (ev *Evaluator) evalBlockNoScope(body ast.Block) (value.Value, error) {
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

// attachFrame converts err into a *langerr.RuntimeError (if it is not
// already one) and prepends a frame for the call currently unwinding.
func attachFrame(err error, function string, line int) error {
	if rerr, ok := err.(*langerr.RuntimeError); ok {
		return rerr.WithFrame(langerr.Frame{Function: function, Line: line})
	}
	return langerr.Newf("%s", err.Error()).WithFrame(langerr.Frame{Function: function, Line: line})
}
