/*
File    : gomix-lite/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/gomix-lite/builtins"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/lexer"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/akashmaji946/gomix-lite/value"
)

func run(t *testing.T, src string) (value.Value, *bytes.Buffer) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.Writer = &out
	ev.Builtins = builtins.NewRegistry(&out, bufio.NewReader(strings.NewReader("")))

	result, err := ev.Run(program)
	require.NoError(t, err)
	return result, &out
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	result, _ := run(t, `let x = 1 + 2 * 3; x;`)
	assert.Equal(t, value.Integer{Value: 7}, result)
}

func TestEval_UnaryMinusAlwaysWidensToFloat(t *testing.T) {
	result, _ := run(t, `-5;`)
	assert.Equal(t, value.Float{Value: -5}, result)

	result, _ = run(t, `-2.5;`)
	assert.Equal(t, value.Float{Value: -2.5}, result)
}

func TestEval_VariableShadowingInBlock(t *testing.T) {
	result, _ := run(t, `
		let x = 1;
		if (true) {
			let x = 2;
		}
		x;
	`)
	assert.Equal(t, value.Integer{Value: 1}, result)
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	result, _ := run(t, `
		func add(a, b) {
			return a + b;
		}
		add(3, 4);
	`)
	assert.Equal(t, value.Integer{Value: 7}, result)
}

func TestEval_IfElseBranching(t *testing.T) {
	result, _ := run(t, `
		func sign(n) {
			if (n < 0) {
				return -1;
			} else {
				return 1;
			}
		}
		sign(-5);
	`)
	// Unary minus always widens through a Float(-1.0) multiply (spec.md
	// §4.5): both sign's argument and its literal -1 come back as Float.
	assert.Equal(t, value.Float{Value: -1}, result)
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`y;`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Undefined variable y")
}

func TestEval_ArityMismatchIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`
		func add(a, b) { return a + b; }
		add(1);
	`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "expected 2 arguments, got 1")
}

func TestEval_ReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`return 1;`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "outside a function")
}

func TestEval_UnknownCallIsMethodNotFound(t *testing.T) {
	tokens, err := lexer.Tokenize(`mystery(1);`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "Method not found")
}

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`let x = 1 / 0; x;`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestEval_StringConcatenationAndPrintln(t *testing.T) {
	_, out := run(t, `println(str_concat("n=", 5));`)
	assert.Equal(t, "n=5\n", out.String())
}

func TestEval_NestedCallStackAttachesFrames(t *testing.T) {
	tokens, err := lexer.Tokenize(`
		func inner() {
			return 1 / 0;
		}
		func outer() {
			return inner();
		}
		outer();
	`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	ev := NewEvaluator()
	_, err = ev.Run(program)
	var rerr *langerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	require.Len(t, rerr.Stack, 2)
	assert.Equal(t, "inner", rerr.Stack[0].Function)
	assert.Equal(t, "outer", rerr.Stack[1].Function)
}
